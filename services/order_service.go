package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"warung-pos-api/cart"
	"warung-pos-api/models"
	"warung-pos-api/notify"
	"warung-pos-api/statemachine"

	"gorm.io/gorm"
)

// OrderService owns the order lifecycle: submit, kitchen advances,
// cancellation and payment. Every invariant with a race window (table
// uniqueness, single payment) is enforced at the storage boundary —
// unique index or guarded UPDATE — not by check-then-write round-trips.
type OrderService struct {
	DB      *gorm.DB
	Revenue *RevenueService
	Hub     *notify.Hub
}

func NewOrderService(db *gorm.DB, revenue *RevenueService, hub *notify.Hub) *OrderService {
	return &OrderService{DB: db, Revenue: revenue, Hub: hub}
}

func (s *OrderService) publish(ownerID uint, tables ...string) {
	if s.Hub == nil {
		return
	}
	for _, t := range tables {
		s.Hub.Publish(ownerID, t)
	}
}

// isDuplicate detects a unique-constraint violation from the driver.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}

// activeTableKey builds the value whose unique index enforces
// at-most-one-active-order-per-table.
func activeTableKey(ownerID uint, tableNumber int) string {
	return fmt.Sprintf("%d:%d", ownerID, tableNumber)
}

// Submit creates a pending order from submitted cart lines. Lines are
// snapshots: name and price are stored on the order, never referenced
// back to the menu. For dine_in the table-uniqueness check and the
// insert are one atomic unit via the ActiveTableKey unique index, so a
// concurrent submit for the same table fails with ErrTableOccupied.
// A reserved table being seated drops back to available.
func (s *OrderService) Submit(ownerID uint, tableNumber int, orderType models.OrderType, lines []cart.Line) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if l.Name == "" || l.UnitPrice < 0 {
			return nil, fmt.Errorf("%w: malformed cart line", ErrValidation)
		}
	}

	switch orderType {
	case models.OrderDineIn:
		if tableNumber <= models.TakeawayTable {
			return nil, fmt.Errorf("%w: dine_in requires a table number", ErrValidation)
		}
	case models.OrderTakeaway:
		tableNumber = models.TakeawayTable
	default:
		return nil, fmt.Errorf("%w: unknown order type %q", ErrValidation, orderType)
	}

	var total int64
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		total += l.Total()
		items = append(items, models.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice,
			Quantity:   l.Quantity,
			Note:       l.Note,
		})
	}

	order := models.Order{
		OwnerID:     ownerID,
		TableNumber: tableNumber,
		OrderType:   orderType,
		Status:      models.StatusPending,
		TotalAmount: total,
		Items:       items,
	}
	if orderType == models.OrderDineIn {
		key := activeTableKey(ownerID, tableNumber)
		order.ActiveTableKey = &key
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if orderType == models.OrderDineIn {
			var table models.DiningTable
			if err := tx.Where("owner_id = ? AND number = ?", ownerID, tableNumber).
				First(&table).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: table %d", ErrNotFound, tableNumber)
				}
				return err
			}
			// seating a reserved table consumes the reservation
			if table.Status == models.TableReserved {
				if err := tx.Model(&table).
					Update("status", models.TableAvailable).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			if isDuplicate(err) {
				return ErrTableOccupied
			}
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: ownerID,
			Note:      "order submitted",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(ownerID, "orders", "tables")
	return &order, nil
}

// Advance moves an order one step forward in the kitchen sequence.
// The transition itself is a guarded UPDATE (WHERE status = from), so
// two staff racing the same advance get one winner and one clean
// ErrInvalidTransition. Payment is not reachable through Advance.
func (s *OrderService) Advance(ownerID, orderID uint, next models.OrderStatus) (*models.Order, error) {
	if next == models.StatusCompleted {
		return nil, fmt.Errorf("%w: completion goes through payment", ErrInvalidTransition)
	}

	var order models.Order
	if err := s.DB.Where("owner_id = ?", ownerID).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}

	if err := statemachine.CanAdvance(order.Status, next); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	prev := order.Status
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND owner_id = ? AND status = ?", orderID, ownerID, prev).
			Update("status", next)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order already advanced past %s", ErrInvalidTransition, prev)
		}

		history := models.OrderStatusHistory{
			OrderID:    orderID,
			FromStatus: prev,
			ToStatus:   next,
			ChangedBy:  ownerID,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	order.Status = next
	s.publish(ownerID, "orders")
	return &order, nil
}

// Cancel hard-deletes a pending order. Past pending the kitchen has
// started and the order must run to payment. The history row written
// in the same transaction keeps an audit trace of the deletion; the
// row deletion itself frees the table's ActiveTableKey.
func (s *OrderService) Cancel(ownerID, orderID uint) error {
	var order models.Order
	if err := s.DB.Where("owner_id = ?", ownerID).First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return err
	}

	if err := statemachine.CanCancel(order.Status); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND owner_id = ? AND status = ?",
			orderID, ownerID, models.StatusPending).
			Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order already advanced past pending", ErrInvalidTransition)
		}
		if err := tx.Where("order_id = ?", orderID).
			Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:    orderID,
			FromStatus: models.StatusPending,
			ToStatus:   models.StatusCancelled,
			ChangedBy:  ownerID,
			Note:       "order cancelled and deleted",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	s.publish(ownerID, "orders", "tables")
	return nil
}

// Pay marks an order completed and appends its revenue entry in one
// transaction. Payment is lenient: any active order can be paid, so
// takeaway and fast orders may skip kitchen steps. The status flip is
// guarded on status <> completed, which makes a second concurrent pay
// lose the race and surface ErrAlreadyPaid — exactly one revenue entry
// per order, ever.
func (s *OrderService) Pay(ownerID, orderID uint, method string) (*models.RevenueEntry, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	var order models.Order
	if err := s.DB.Preload("Items").Where("owner_id = ?", ownerID).
		First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, err
	}
	if err := statemachine.CanPay(order.Status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyPaid, err)
	}

	snapshot, err := json.Marshal(order.Items)
	if err != nil {
		return nil, err
	}

	var entry *models.RevenueEntry
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND owner_id = ? AND status <> ?",
				orderID, ownerID, models.StatusCompleted).
			Updates(map[string]interface{}{
				"status":           models.StatusCompleted,
				"active_table_key": nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyPaid
		}

		entry = &models.RevenueEntry{
			OwnerID:       ownerID,
			OrderID:       order.ID,
			TableNumber:   order.TableNumber,
			OrderType:     order.OrderType,
			TotalAmount:   order.TotalAmount,
			PaymentMethod: method,
			Items:         string(snapshot),
		}
		if err := s.Revenue.Append(tx, entry); err != nil {
			return err
		}

		history := models.OrderStatusHistory{
			OrderID:    orderID,
			FromStatus: order.Status,
			ToStatus:   models.StatusCompleted,
			ChangedBy:  ownerID,
			Note:       "paid via " + method,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	s.publish(ownerID, "orders", "tables", "revenue")
	return entry, nil
}

// List returns the owner's orders, newest first, optionally filtered
// by status.
func (s *OrderService) List(ownerID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	query := s.DB.Preload("Items").Where("owner_id = ?", ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

// Get returns one order with its items and full status history.
func (s *OrderService) Get(ownerID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.Preload("Items").Preload("StatusHistory").
		Where("owner_id = ?", ownerID).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// KitchenBoard returns all active orders grouped by status, oldest
// first within each group, the way the kitchen display wants them.
func (s *OrderService) KitchenBoard(ownerID uint) (map[models.OrderStatus][]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Preload("Items").
		Where("owner_id = ? AND status IN ?", ownerID, statemachine.ActiveStatuses()).
		Order("created_at asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	board := make(map[models.OrderStatus][]models.Order)
	for _, o := range orders {
		board[o.Status] = append(board[o.Status], o)
	}
	return board, nil
}
