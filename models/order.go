package models

import "time"

type Order struct {
	ID         uint  `gorm:"primaryKey" json:"id"`
	UserID     uint  `gorm:"not null;index" json:"user_id"`
	User       User  `gorm:"foreignKey:UserID" json:"-"`
	TableID    uint  `gorm:"not null;index" json:"table_id"`
	Table      Table `gorm:"foreignKey:TableID" json:"table,omitempty"`
	NoOfPeople int   `gorm:"not null" json:"no_of_people"`
	// Complete is one-way: once true, line items are frozen.
	Complete   bool        `gorm:"not null;default:false" json:"complete"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	SessionKey string      `gorm:"type:varchar(64)" json:"session_key"`
	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// RestaurantID resolves the restaurant the order is seated at. Valid only
// when Table is preloaded.
func (o *Order) RestaurantID() uint {
	return o.Table.RestaurantID
}
