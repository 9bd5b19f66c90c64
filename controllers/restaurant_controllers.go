package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// GetAllRestaurants lists restaurants, optionally filtered by name or
// location substring.
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	q := rc.DB.Model(&models.Restaurant{})
	if name := c.Query("name"); name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}
	if loc := c.Query("location"); loc != "" {
		q = q.Where("location LIKE ?", "%"+loc+"%")
	}

	var restaurants []models.Restaurant
	if err := q.Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name     string `json:"name" binding:"required"`
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{Name: req.Name, Location: req.Location}
	if err := rc.DB.Create(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New restaurant created: %s", restaurant.Name)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// GetRestaurantByID returns one restaurant with its tables embedded.
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	id, err := paramID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.Preload("Tables").First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Location *string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name != nil {
		restaurant.Name = *req.Name
	}
	if req.Location != nil {
		restaurant.Location = *req.Location
	}

	if err := rc.DB.Save(&restaurant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

func (rc *RestaurantController) DeleteRestaurant(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := rc.DB.Delete(&models.Restaurant{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted", gin.H{"restaurant_id": id})
}
