package models

import "time"

type Comment struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"restaurant,omitempty"`
	FoodID       uint       `gorm:"not null;index" json:"food_id"`
	Food         Food       `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"food,omitempty"`
	Content      string     `gorm:"type:text" json:"comment"`
	// GivePoint is a rating in [0,5] with one decimal place.
	GivePoint float64   `gorm:"type:decimal(2,1);not null" json:"give_point"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
