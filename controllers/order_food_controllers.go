package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

// OrderFoodController is the line-item surface: POST adds a food to an
// order, DELETE removes a line by its per-order key.
type OrderFoodController struct {
	Orders *services.OrderService
}

func NewOrderFoodController(db *gorm.DB) *OrderFoodController {
	return &OrderFoodController{Orders: services.NewOrderService(db)}
}

func (ofc *OrderFoodController) AddLineItem(c *gin.Context) {
	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
		FoodID  uint `json:"food_id" binding:"required"`
		Number  int  `json:"number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := ofc.Orders.AddLineItem(callerFrom(c), req.OrderID, req.FoodID, req.Number)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Line item added", item)
}

func (ofc *OrderFoodController) RemoveLineItem(c *gin.Context) {
	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
		OrderNo *int `json:"order_no" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ofc.Orders.RemoveLineItem(callerFrom(c), req.OrderID, *req.OrderNo); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusAccepted, "Line item removed", gin.H{
		"order_id": req.OrderID,
		"order_no": *req.OrderNo,
	})
}
