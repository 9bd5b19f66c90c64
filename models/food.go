package models

import "time"

type Food struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	TypeID      uint     `gorm:"not null;index" json:"type_id"`
	Type        FoodType `gorm:"foreignKey:TypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"type,omitempty"`
	ChineseName string   `gorm:"type:varchar(128);not null" json:"chinese_name"`
	EnglishName string   `gorm:"type:varchar(128);not null" json:"english_name"`
	Price       float64  `gorm:"type:decimal(10,2);not null" json:"price"`
	// AvePoint and NoOfComment are maintained by the rating service only;
	// client input for them is ignored on create/update.
	AvePoint    float64   `gorm:"type:decimal(4,2);not null;default:0" json:"ave_point"`
	NoOfComment int       `gorm:"not null;default:0" json:"no_of_comment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
