package models

import "time"

// OrderStatus represents the kitchen/cashier lifecycle of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"

	// StatusCancelled is never stored on an order row — cancellation
	// hard-deletes the order. It appears only in the status history
	// entry written alongside the deletion.
	StatusCancelled OrderStatus = "cancelled"
)

// OrderType distinguishes table service from counter orders
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
)

// TakeawayTable is the table-number sentinel for orders with no
// physical table. Any number of takeaway orders may be active at once.
const TakeawayTable = 0

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OwnerID     uint        `json:"owner_id" gorm:"not null;index"`
	TableNumber int         `json:"table_number"`
	OrderType   OrderType   `json:"order_type" gorm:"not null"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	TotalAmount int64       `json:"total_amount" gorm:"not null"`
	// ActiveTableKey is "<ownerID>:<tableNumber>" while a dine_in order
	// is active and NULL otherwise. The unique index makes the
	// table-uniqueness check and the insert one atomic unit, so two
	// cashiers racing to open the same table cannot both win.
	ActiveTableKey *string              `json:"-" gorm:"uniqueIndex"`
	Items          []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory  []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// OrderItem is a snapshot of a cart line at submit time. Name and
// UnitPrice are copied from the MenuItem, never referenced live.
type OrderItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    uint   `json:"order_id" gorm:"not null;index"`
	MenuItemID uint   `json:"menu_item_id" gorm:"not null"`
	Name       string `json:"name" gorm:"not null"`
	UnitPrice  int64  `json:"unit_price" gorm:"not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`
	Note       string `json:"note"`
}

// LineTotal is the snapshot price times quantity.
func (i OrderItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// OrderStatusHistory tracks every status change. Cancellations write a
// history row before the order is hard-deleted, so a trace survives.
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null;index"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
