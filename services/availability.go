package services

import (
	"github.com/tableside/restaurant-api/models"
	"gorm.io/gorm"
)

// IsFoodAvailable reports whether a restaurant currently serves a food.
// True unless a blacklist row exists for the pair.
func IsFoodAvailable(db *gorm.DB, foodID, restaurantID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Unavailable{}).
		Where("food_id = ? AND restaurant_id = ?", foodID, restaurantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
