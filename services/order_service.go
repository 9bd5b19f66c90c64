package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/utils"
)

// OrderService owns the order lifecycle: seating a table, composing line
// items, and completing the order. Every mutation runs in one transaction
// so the total-price and table-occupancy invariants cannot be observed
// half-applied.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// Seat reserves a table and opens an order for the caller. The
// availability flip is a conditional update; zero rows affected means a
// concurrent caller won the table, so the check-then-act race cannot
// double-book.
func (s *OrderService) Seat(caller Caller, tableID uint, people int) (*models.Order, error) {
	if people <= 0 {
		return nil, utils.InvalidArgument("no_of_people must be a positive integer")
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("table not found")
			}
			return err
		}

		if people > table.MaxNo {
			return utils.Conflict("party size exceeds table capacity")
		}

		res := tx.Model(&models.Table{}).
			Where("id = ? AND available = ?", tableID, true).
			Update("available", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.Conflict("table is not available")
		}

		order = models.Order{
			UserID:     caller.ID,
			TableID:    tableID,
			NoOfPeople: people,
			Complete:   false,
			TotalPrice: 0,
			SessionKey: uuid.NewString(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d seated at table %d (party of %d)", order.ID, tableID, people)
	return &order, nil
}

// AddLineItem appends a food line to an open order. The line total is
// locked at the food's current price and never re-derived afterwards.
func (s *OrderService) AddLineItem(caller Caller, orderID, foodID uint, quantity int) (*models.OrderItem, error) {
	if quantity <= 0 {
		return nil, utils.InvalidArgument("number must be a positive integer")
	}

	// A concurrent allocation of the same key loses on idx_order_line with
	// a duplicate-key error; a fresh transaction re-reads the max.
	var item models.OrderItem
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		item = models.OrderItem{}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			order, err := loadOrderForMutation(tx, caller, orderID)
			if err != nil {
				return err
			}

			var food models.Food
			if err := tx.First(&food, foodID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return utils.NotFound("food not found")
				}
				return err
			}

			available, err := IsFoodAvailable(tx, foodID, order.RestaurantID())
			if err != nil {
				return err
			}
			if !available {
				return utils.Conflict("food is unavailable at this restaurant")
			}

			// Next line key: max existing + 1, or 0 for an empty order.
			var nextNo int
			row := tx.Model(&models.OrderItem{}).
				Where("order_id = ?", orderID).
				Select("COALESCE(MAX(order_no), -1) + 1")
			if err := row.Scan(&nextNo).Error; err != nil {
				return err
			}

			item = models.OrderItem{
				OrderID:   orderID,
				OrderNo:   nextNo,
				FoodID:    foodID,
				Quantity:  quantity,
				LineTotal: utils.Round2(food.Price * float64(quantity)),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			// Guarded like Seat: the order may have completed since the
			// load, and a line must never land on a completed order.
			res := tx.Model(&models.Order{}).
				Where("id = ? AND complete = ?", orderID, false).
				Update("total_price", gorm.Expr("ROUND(total_price + ?, 2)", item.LineTotal))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.Conflict("order is already complete")
			}
			return nil
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveLineItem drops a line by its key and gives the amount back to the
// order total.
func (s *OrderService) RemoveLineItem(caller Caller, orderID uint, orderNo int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := loadOrderForMutation(tx, caller, orderID); err != nil {
			return err
		}

		var item models.OrderItem
		if err := tx.Where("order_id = ? AND order_no = ?", orderID, orderNo).
			First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("line item not found")
			}
			return err
		}

		// Zero rows affected means another removal already took the line;
		// the decrement must not run for a no-op delete.
		res := tx.Where("order_id = ? AND order_no = ?", orderID, orderNo).
			Delete(&models.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.NotFound("line item not found")
		}

		res = tx.Model(&models.Order{}).
			Where("id = ? AND complete = ?", orderID, false).
			Update("total_price", gorm.Expr("ROUND(total_price - ?, 2)", item.LineTotal))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.Conflict("order is already complete")
		}
		return nil
	})
}

// Complete marks the order paid and releases its table. Idempotent when
// the order is already complete.
func (s *OrderService) Complete(caller Caller, orderID uint) (*models.Order, error) {
	if !CanCompleteOrder(caller) {
		return nil, utils.Forbidden("only admins may complete orders")
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("order not found")
			}
			return err
		}

		if order.Complete {
			return nil
		}

		order.Complete = true
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		return tx.Model(&models.Table{}).
			Where("id = ?", order.TableID).
			Update("available", true).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %d completed, table %d released", order.ID, order.TableID)
	return &order, nil
}

// Delete removes an order entirely. Deleting an open order frees its
// table; items cascade with the order row.
func (s *OrderService) Delete(caller Caller, orderID uint) error {
	if !CanCompleteOrder(caller) {
		return utils.Forbidden("only admins may delete orders")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("order not found")
			}
			return err
		}

		if !order.Complete {
			if err := tx.Model(&models.Table{}).
				Where("id = ?", order.TableID).
				Update("available", true).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("order_id = ?", orderID).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// View returns the order with line items resolved against their foods.
func (s *OrderService) View(caller Caller, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_no asc")
	}).Preload("Items.Food").Preload("Table").Preload("Table.Restaurant").
		First(&order, orderID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("order not found")
		}
		return nil, err
	}

	if !CanViewOrder(caller, &order) {
		return nil, utils.Forbidden("not your order")
	}
	return &order, nil
}

// ListOrders returns every order for admins, the caller's own otherwise.
func (s *OrderService) ListOrders(caller Caller) ([]models.Order, error) {
	q := s.DB.Preload("Items").Preload("Table")
	if !caller.IsAdmin() {
		q = q.Where("user_id = ?", caller.ID)
	}

	var orders []models.Order
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// loadOrderForMutation fetches an order (with its table, for the
// restaurant id) and enforces the guards shared by line-item writes.
func loadOrderForMutation(tx *gorm.DB, caller Caller, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("Table").First(&order, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, utils.NotFound("order not found")
		}
		return nil, err
	}

	if !CanModifyOrder(caller, &order) {
		return nil, utils.Forbidden("not your order")
	}
	if order.Complete {
		return nil, utils.Conflict("order is already complete")
	}
	return &order, nil
}
