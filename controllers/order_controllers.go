package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: services.NewOrderService(db)}
}

// GetAllOrders lists the caller's orders; admins see everyone's.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Orders.ListOrders(callerFrom(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder seats the caller at a table and opens an order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableID    uint `json:"table_id" binding:"required"`
		NoOfPeople int  `json:"no_of_people" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Seat(callerFrom(c), req.TableID, req.NoOfPeople)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID shows an order with resolved line items. Owner or admin.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.View(callerFrom(c), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// CompleteOrder freezes the order and releases its table. Admin only.
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.Complete(callerFrom(c), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

// DeleteOrder removes an order; an open order's table is freed. Admin only.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := paramID(c, "order_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Orders.Delete(callerFrom(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
