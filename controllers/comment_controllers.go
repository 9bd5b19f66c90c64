package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/services"
	"github.com/tableside/restaurant-api/utils"
)

type CommentController struct {
	DB      *gorm.DB
	Ratings *services.RatingService
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Ratings: services.NewRatingService(db)}
}

// GetAllComments searches comments by food name, point range, user and
// restaurant.
func (cc *CommentController) GetAllComments(c *gin.Context) {
	minPoint, err := queryFloat(c, "min_point")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	maxPoint, err := queryFloat(c, "max_point")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	userID, err := queryUint(c, "user_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	restaurantID, err := queryUint(c, "restaurant_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	comments, err := cc.Ratings.SearchComments(services.CommentFilter{
		FoodName:     c.Query("food_name"),
		MinPoint:     minPoint,
		MaxPoint:     maxPoint,
		UserID:       userID,
		RestaurantID: restaurantID,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of comments", comments)
}

// CreateComment rates a food at a restaurant and folds the point into the
// food's running mean.
func (cc *CommentController) CreateComment(c *gin.Context) {
	var req struct {
		FoodID       uint     `json:"food_id" binding:"required"`
		RestaurantID uint     `json:"restaurant_id" binding:"required"`
		GivePoint    *float64 `json:"give_point" binding:"required"`
		Comment      string   `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	comment, err := cc.Ratings.AddRating(callerFrom(c), req.FoodID, req.RestaurantID, *req.GivePoint, req.Comment)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Comment created", comment)
}

func (cc *CommentController) GetCommentByID(c *gin.Context) {
	id, err := paramID(c, "comment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var comment models.Comment
	if err := cc.DB.Preload("Food").First(&comment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Comment detail", comment)
}

// UpdateComment edits the comment text (author only); a give_point change
// re-adjusts the food's mean.
func (cc *CommentController) UpdateComment(c *gin.Context) {
	id, err := paramID(c, "comment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Comment   *string  `json:"comment"`
		GivePoint *float64 `json:"give_point"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	comment, err := cc.Ratings.EditComment(callerFrom(c), id, req.Comment, req.GivePoint)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Comment updated", comment)
}

// DeleteComment removes a comment and reverses its rating contribution.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	id, err := paramID(c, "comment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Ratings.DeleteComment(callerFrom(c), id); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Comment deleted", gin.H{"comment_id": id})
}
