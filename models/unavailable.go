package models

import "time"

// Unavailable marks a (food, restaurant) pair the restaurant does not
// currently serve. The row's existence is the whole signal.
type Unavailable struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	FoodID       uint       `gorm:"not null;index:idx_unavailable_pair" json:"food_id"`
	Food         Food       `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"food,omitempty"`
	RestaurantID uint       `gorm:"not null;index:idx_unavailable_pair" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
