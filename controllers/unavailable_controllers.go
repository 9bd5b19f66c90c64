package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

// UnavailableController manages the (food, restaurant) blacklist the
// order engine consults before accepting a line item.
type UnavailableController struct {
	DB *gorm.DB
}

func NewUnavailableController(db *gorm.DB) *UnavailableController {
	return &UnavailableController{DB: db}
}

func (uc *UnavailableController) GetAllUnavailable(c *gin.Context) {
	q := uc.DB.Preload("Food").Preload("Restaurant").Model(&models.Unavailable{})

	restaurantID, err := queryUint(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	foodID, err := queryUint(c, "food_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if foodID != 0 {
		q = q.Where("food_id = ?", foodID)
	}

	var entries []models.Unavailable
	if err := q.Find(&entries).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of unavailable foods", entries)
}

func (uc *UnavailableController) CreateUnavailable(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		FoodID       uint `json:"food_id" binding:"required"`
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var food models.Food
	if err := uc.DB.First(&food, req.FoodID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("food not found"))
		return
	}
	var restaurant models.Restaurant
	if err := uc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	// Creating an existing pair again is a no-op conflict.
	var count int64
	uc.DB.Model(&models.Unavailable{}).
		Where("food_id = ? AND restaurant_id = ?", req.FoodID, req.RestaurantID).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("food already unavailable at this restaurant"))
		return
	}

	entry := models.Unavailable{FoodID: req.FoodID, RestaurantID: req.RestaurantID}
	if err := uc.DB.Create(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Food %d marked unavailable at restaurant %d", req.FoodID, req.RestaurantID)
	utils.RespondJSON(c, http.StatusCreated, "Unavailable entry created", entry)
}

func (uc *UnavailableController) DeleteUnavailable(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "unavailable_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var entry models.Unavailable
	if err := uc.DB.First(&entry, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := uc.DB.Delete(&entry).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unavailable entry deleted", gin.H{"unavailable_id": id})
}
