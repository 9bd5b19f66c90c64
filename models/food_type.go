package models

import "time"

type FoodType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChineseName string    `gorm:"type:varchar(100);not null" json:"chinese_name"`
	EnglishName string    `gorm:"type:varchar(100);not null" json:"english_name"`
	Foods       []Food    `gorm:"foreignKey:TypeID" json:"foods,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FoodType) TableName() string {
	return "food_types"
}
