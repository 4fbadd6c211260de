package models

import "time"

// TableStatus is the stored, staff-controlled state of a dining table.
// "occupied" is deliberately NOT a stored value: occupancy is derived
// from active orders by the floor projection, so the stored status and
// the order set can never drift apart.
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

// DiningTable is a physical table. Number 0 is reserved as the takeaway
// sentinel on orders and must not be used for a real table.
type DiningTable struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OwnerID   uint        `json:"owner_id" gorm:"not null;index"`
	Number    int         `json:"number" gorm:"not null"`
	Capacity  int         `json:"capacity" gorm:"default:4"`
	Status    TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
