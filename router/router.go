package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/controllers"
	"github.com/tableside/restaurant-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Per-IP ceiling over the whole API; login and register add a stricter
	// one below.
	r.Use(middlewares.NewRateLimiter(100, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	tableCtrl := controllers.NewTableController(db)
	typeCtrl := controllers.NewFoodTypeController(db)
	foodCtrl := controllers.NewFoodController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderFoodCtrl := controllers.NewOrderFoodController(db)
	commentCtrl := controllers.NewCommentController(db)
	unavailableCtrl := controllers.NewUnavailableController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login and register carry a strict limiter against brute force.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Everything else requires a valid token. Catalog writes additionally
	// check the admin role inside each controller.
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/restaurant", restaurantCtrl.GetAllRestaurants)
		auth.POST("/restaurant", restaurantCtrl.CreateRestaurant)
		auth.GET("/restaurant/:restaurant_id", restaurantCtrl.GetRestaurantByID)
		auth.PUT("/restaurant/:restaurant_id", restaurantCtrl.UpdateRestaurant)
		auth.DELETE("/restaurant/:restaurant_id", restaurantCtrl.DeleteRestaurant)

		auth.GET("/table", tableCtrl.GetAllTables)
		auth.POST("/table", tableCtrl.CreateTable)
		auth.GET("/table/:table_id", tableCtrl.GetTableByID)
		auth.PUT("/table/:table_id", tableCtrl.UpdateTable)
		auth.DELETE("/table/:table_id", tableCtrl.DeleteTable)

		auth.GET("/type", typeCtrl.GetAllTypes)
		auth.POST("/type", typeCtrl.CreateType)
		auth.GET("/type/:type_id", typeCtrl.GetTypeByID)
		auth.PUT("/type/:type_id", typeCtrl.UpdateType)
		auth.DELETE("/type/:type_id", typeCtrl.DeleteType)

		auth.GET("/food", foodCtrl.GetAllFoods)
		auth.POST("/food", foodCtrl.CreateFood)
		auth.GET("/food/:food_id", foodCtrl.GetFoodByID)
		auth.PUT("/food/:food_id", foodCtrl.UpdateFood)
		auth.DELETE("/food/:food_id", foodCtrl.DeleteFood)

		auth.GET("/order", orderCtrl.GetAllOrders)
		auth.POST("/order", orderCtrl.CreateOrder)
		auth.GET("/order/:order_id", orderCtrl.GetOrderByID)
		auth.PUT("/order/:order_id", orderCtrl.CompleteOrder)
		auth.DELETE("/order/:order_id", orderCtrl.DeleteOrder)

		auth.POST("/order-food", orderFoodCtrl.AddLineItem)
		auth.DELETE("/order-food", orderFoodCtrl.RemoveLineItem)

		auth.GET("/comment", commentCtrl.GetAllComments)
		auth.POST("/comment", commentCtrl.CreateComment)
		auth.GET("/comment/:comment_id", commentCtrl.GetCommentByID)
		auth.PUT("/comment/:comment_id", commentCtrl.UpdateComment)
		auth.DELETE("/comment/:comment_id", commentCtrl.DeleteComment)

		auth.GET("/unavailable", unavailableCtrl.GetAllUnavailable)
		auth.POST("/unavailable", unavailableCtrl.CreateUnavailable)
		auth.DELETE("/unavailable/:unavailable_id", unavailableCtrl.DeleteUnavailable)
	}

	return r
}
