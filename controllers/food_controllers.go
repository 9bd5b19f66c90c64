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

type FoodController struct {
	DB *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{DB: db}
}

// GetAllFoods searches the menu. Filters: name (either language),
// min_price/max_price, min_point/max_point, type_id.
func (fc *FoodController) GetAllFoods(c *gin.Context) {
	q := fc.DB.Preload("Type").Model(&models.Food{})

	if name := c.Query("name"); name != "" {
		q = q.Where("english_name LIKE ? OR chinese_name LIKE ?",
			"%"+name+"%", "%"+name+"%")
	}
	for param, column := range map[string]string{
		"min_price": "price >= ?",
		"max_price": "price <= ?",
		"min_point": "ave_point >= ?",
		"max_point": "ave_point <= ?",
	} {
		v, err := queryFloat(c, param)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		if v != nil {
			q = q.Where(column, *v)
		}
	}
	typeID, err := queryUint(c, "type_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if typeID != 0 {
		q = q.Where("type_id = ?", typeID)
	}

	var foods []models.Food
	if err := q.Find(&foods).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of foods", foods)
}

// CreateFood adds a menu entry. The rating aggregate fields are not
// accepted as input; they start at zero.
func (fc *FoodController) CreateFood(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		TypeID      uint    `json:"type_id" binding:"required"`
		ChineseName string  `json:"chinese_name" binding:"required"`
		EnglishName string  `json:"english_name" binding:"required"`
		Price       float64 `json:"price" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var foodType models.FoodType
	if err := fc.DB.First(&foodType, req.TypeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("type not found"))
		return
	}

	food := models.Food{
		TypeID:      req.TypeID,
		ChineseName: req.ChineseName,
		EnglishName: req.EnglishName,
		Price:       utils.Round2(req.Price),
	}
	if err := fc.DB.Create(&food).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New food created: %s (price=%.2f)", food.EnglishName, food.Price)
	utils.RespondJSON(c, http.StatusCreated, "Food created", food)
}

func (fc *FoodController) GetFoodByID(c *gin.Context) {
	id, err := paramID(c, "food_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var food models.Food
	if err := fc.DB.Preload("Type").First(&food, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food detail", food)
}

// UpdateFood edits display fields and price. ave_point and no_of_comment
// stay read-only; existing order lines keep their locked totals.
func (fc *FoodController) UpdateFood(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "food_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var food models.Food
	if err := fc.DB.First(&food, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		TypeID      *uint    `json:"type_id"`
		ChineseName *string  `json:"chinese_name"`
		EnglishName *string  `json:"english_name"`
		Price       *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.TypeID != nil {
		var foodType models.FoodType
		if err := fc.DB.First(&foodType, *req.TypeID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, errors.New("type not found"))
			return
		}
		food.TypeID = *req.TypeID
	}
	if req.ChineseName != nil {
		food.ChineseName = *req.ChineseName
	}
	if req.EnglishName != nil {
		food.EnglishName = *req.EnglishName
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("price must be positive"))
			return
		}
		food.Price = utils.Round2(*req.Price)
	}

	if err := fc.DB.Save(&food).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food updated", food)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "food_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := fc.DB.Delete(&models.Food{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food deleted", gin.H{"food_id": id})
}
