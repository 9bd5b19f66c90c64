package services

import "github.com/tableside/restaurant-api/models"

// Caller is the authenticated identity the middleware resolved from the JWT.
type Caller struct {
	ID   uint
	Role string
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// Pure authorization predicates. No I/O here; the controllers and services
// feed in already-loaded rows.

// CanWriteCatalog gates restaurant/table/type/food/unavailable writes.
func CanWriteCatalog(caller Caller) bool {
	return caller.IsAdmin()
}

func CanViewOrder(caller Caller, order *models.Order) bool {
	return caller.ID == order.UserID || caller.IsAdmin()
}

// CanModifyOrder covers line-item mutation: the owner, or an admin.
func CanModifyOrder(caller Caller, order *models.Order) bool {
	return caller.ID == order.UserID || caller.IsAdmin()
}

// CanCompleteOrder covers completion and deletion, which are admin-only.
func CanCompleteOrder(caller Caller) bool {
	return caller.IsAdmin()
}

func CanEditComment(caller Caller, comment *models.Comment) bool {
	return caller.ID == comment.UserID
}

func CanDeleteComment(caller Caller, comment *models.Comment) bool {
	return caller.ID == comment.UserID || caller.IsAdmin()
}
