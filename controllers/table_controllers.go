package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables lists tables. Filters: available, max_no (minimum seats),
// restaurant_id, location (substring on the owning restaurant). A
// non-numeric max_no or restaurant_id is a 400.
func (tc *TableController) GetAllTables(c *gin.Context) {
	q := tc.DB.Preload("Restaurant").Model(&models.Table{})

	if avail := c.Query("available"); avail != "" {
		v, err := strconv.ParseBool(avail)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid available"))
			return
		}
		q = q.Where("tables.available = ?", v)
	}
	if maxNo := c.Query("max_no"); maxNo != "" {
		v, err := strconv.Atoi(maxNo)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid max_no"))
			return
		}
		q = q.Where("tables.max_no >= ?", v)
	}
	restaurantID, err := queryUint(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if restaurantID != 0 {
		q = q.Where("tables.restaurant_id = ?", restaurantID)
	}
	if loc := c.Query("location"); loc != "" {
		q = q.Joins("JOIN restaurants ON restaurants.id = tables.restaurant_id").
			Where("restaurants.location LIKE ?", "%"+loc+"%")
	}

	var tables []models.Table
	if err := q.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) CreateTable(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
		MaxNo        int  `json:"max_no" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	table := models.Table{
		RestaurantID: req.RestaurantID,
		MaxNo:        req.MaxNo,
		Available:    true,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created for restaurant %d (seats %d)", table.RestaurantID, table.MaxNo)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.Preload("Restaurant").First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable lets an admin change capacity or force the availability
// flag (manual release of a stuck table).
func (tc *TableController) UpdateTable(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		MaxNo     *int  `json:"max_no"`
		Available *bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.MaxNo != nil {
		if *req.MaxNo <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("max_no must be positive"))
			return
		}
		table.MaxNo = *req.MaxNo
	}
	if req.Available != nil {
		table.Available = *req.Available
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "table_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.DB.Delete(&models.Table{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"table_id": id})
}
