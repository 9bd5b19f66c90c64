package services

import (
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/utils"
)

// RatingService creates comments and keeps each food's running mean
// rating consistent with the set of comments referencing it. The mean is
// updated incrementally from its previous value and count, rounded to the
// stored 2-decimal scale on every step.
type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// CommentFilter narrows comment searches.
type CommentFilter struct {
	FoodName     string
	MinPoint     *float64
	MaxPoint     *float64
	UserID       uint
	RestaurantID uint
}

// AddRating stores a comment and folds its point into the food's mean.
// The aggregate update is a single SQL statement so concurrent ratings on
// the same food serialize on the row.
func (s *RatingService) AddRating(caller Caller, foodID, restaurantID uint, point float64, text string) (*models.Comment, error) {
	if point < 0 || point > 5 {
		return nil, utils.InvalidArgument("give_point must be within [0, 5]")
	}
	if !utils.IsOneDecimal(point) {
		return nil, utils.InvalidArgument("give_point allows one decimal place")
	}

	var comment models.Comment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var food models.Food
		if err := tx.First(&food, foodID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("food not found")
			}
			return err
		}
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("restaurant not found")
			}
			return err
		}

		comment = models.Comment{
			UserID:       caller.ID,
			RestaurantID: restaurantID,
			FoodID:       foodID,
			Content:      text,
			GivePoint:    point,
		}
		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Food{}).
			Where("id = ?", foodID).
			Updates(map[string]interface{}{
				"ave_point":     gorm.Expr("ROUND((ave_point * no_of_comment + ?) / (no_of_comment + 1), 2)", point),
				"no_of_comment": gorm.Expr("no_of_comment + 1"),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// EditComment updates a comment's text, and optionally its point. Text
// edits never touch the aggregate; a point edit swaps the old point out
// of the mean and the new one in.
func (s *RatingService) EditComment(caller Caller, commentID uint, newText *string, newPoint *float64) (*models.Comment, error) {
	if newPoint != nil {
		if *newPoint < 0 || *newPoint > 5 {
			return nil, utils.InvalidArgument("give_point must be within [0, 5]")
		}
		if !utils.IsOneDecimal(*newPoint) {
			return nil, utils.InvalidArgument("give_point allows one decimal place")
		}
	}

	var comment models.Comment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&comment, commentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("comment not found")
			}
			return err
		}

		if !CanEditComment(caller, &comment) {
			return utils.Forbidden("only the author may edit a comment")
		}

		if newText != nil {
			comment.Content = *newText
		}

		if newPoint != nil && *newPoint != comment.GivePoint {
			oldPoint := comment.GivePoint
			comment.GivePoint = *newPoint
			if err := tx.Model(&models.Food{}).
				Where("id = ?", comment.FoodID).
				Update("ave_point", gorm.Expr(
					"ROUND((ave_point * no_of_comment - ? + ?) / no_of_comment, 2)",
					oldPoint, *newPoint)).Error; err != nil {
				return err
			}
		}

		return tx.Save(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment and reverses its share of the mean.
// Removing the last comment resets the aggregate to zero instead of
// dividing by zero.
func (s *RatingService) DeleteComment(caller Caller, commentID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("comment not found")
			}
			return err
		}

		if !CanDeleteComment(caller, &comment) {
			return utils.Forbidden("only the author or an admin may delete a comment")
		}

		res := tx.Delete(&comment)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFound("comment not found")
		}

		// One self-consistent statement, like AddRating: the empty-divisor
		// guard reads the live count, not an earlier snapshot.
		return tx.Model(&models.Food{}).
			Where("id = ?", comment.FoodID).
			Updates(map[string]interface{}{
				"ave_point": gorm.Expr(
					"CASE WHEN no_of_comment <= 1 THEN 0 "+
						"ELSE ROUND((ave_point * no_of_comment - ?) / (no_of_comment - 1), 2) END",
					comment.GivePoint),
				"no_of_comment": gorm.Expr("CASE WHEN no_of_comment <= 1 THEN 0 ELSE no_of_comment - 1 END"),
			}).Error
	})
}

// SearchComments lists comments matching the filter, newest first.
func (s *RatingService) SearchComments(f CommentFilter) ([]models.Comment, error) {
	q := s.DB.Preload("Food").Model(&models.Comment{})

	if f.FoodName != "" {
		q = q.Joins("JOIN foods ON foods.id = comments.food_id").
			Where("foods.english_name LIKE ? OR foods.chinese_name LIKE ?",
				"%"+f.FoodName+"%", "%"+f.FoodName+"%")
	}
	if f.MinPoint != nil {
		q = q.Where("give_point >= ?", *f.MinPoint)
	}
	if f.MaxPoint != nil {
		q = q.Where("give_point <= ?", *f.MaxPoint)
	}
	if f.UserID != 0 {
		q = q.Where("comments.user_id = ?", f.UserID)
	}
	if f.RestaurantID != 0 {
		q = q.Where("comments.restaurant_id = ?", f.RestaurantID)
	}

	var comments []models.Comment
	if err := q.Order("comments.created_at desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
