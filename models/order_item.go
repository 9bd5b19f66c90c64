package models

import "time"

type OrderItem struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null;uniqueIndex:idx_order_line" json:"order_id"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// OrderNo is the line-item key, unique within one order. Allocation is
	// max(existing)+1, or 0 for the first line; keys are never renumbered
	// after a removal.
	OrderNo  int  `gorm:"not null;uniqueIndex:idx_order_line" json:"order_no"`
	FoodID   uint `gorm:"not null" json:"food_id"`
	Food     Food `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"food,omitempty"`
	Quantity int  `gorm:"not null" json:"quantity"`
	// LineTotal locks food.Price * Quantity at add time; later price edits
	// on the food do not flow back into existing lines.
	LineTotal float64   `gorm:"type:decimal(10,2);not null" json:"line_total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
