package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

type FoodTypeController struct {
	DB *gorm.DB
}

func NewFoodTypeController(db *gorm.DB) *FoodTypeController {
	return &FoodTypeController{DB: db}
}

// GetAllTypes lists food categories, searchable by either display name.
func (ftc *FoodTypeController) GetAllTypes(c *gin.Context) {
	q := ftc.DB.Model(&models.FoodType{})
	if name := c.Query("name"); name != "" {
		q = q.Where("english_name LIKE ? OR chinese_name LIKE ?",
			"%"+name+"%", "%"+name+"%")
	}

	var types []models.FoodType
	if err := q.Find(&types).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of types", types)
}

func (ftc *FoodTypeController) CreateType(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		ChineseName string `json:"chinese_name" binding:"required"`
		EnglishName string `json:"english_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	foodType := models.FoodType{
		ChineseName: req.ChineseName,
		EnglishName: req.EnglishName,
	}
	if err := ftc.DB.Create(&foodType).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Type created", foodType)
}

// GetTypeByID returns one category with its foods embedded.
func (ftc *FoodTypeController) GetTypeByID(c *gin.Context) {
	id, err := paramID(c, "type_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var foodType models.FoodType
	if err := ftc.DB.Preload("Foods").First(&foodType, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Type detail", foodType)
}

func (ftc *FoodTypeController) UpdateType(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "type_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var foodType models.FoodType
	if err := ftc.DB.First(&foodType, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		ChineseName *string `json:"chinese_name"`
		EnglishName *string `json:"english_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.ChineseName != nil {
		foodType.ChineseName = *req.ChineseName
	}
	if req.EnglishName != nil {
		foodType.EnglishName = *req.EnglishName
	}

	if err := ftc.DB.Save(&foodType).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Type updated", foodType)
}

func (ftc *FoodTypeController) DeleteType(c *gin.Context) {
	if !services.CanWriteCatalog(callerFrom(c)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	id, err := paramID(c, "type_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ftc.DB.Delete(&models.FoodType{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Type deleted", gin.H{"type_id": id})
}
