package models

import "time"

// ShiftStatus is the cashier-session state
type ShiftStatus string

const (
	ShiftActive ShiftStatus = "active"
	ShiftClosed ShiftStatus = "closed"
)

// ShiftBalanceNote is recorded when the counted drawer matches the
// expected amount exactly; otherwise the note is "SELISIH: <variance>".
const ShiftBalanceNote = "BALANCE"

// Shift is one cashier session: opened with a starting cash float,
// closed with a manually counted drawer amount. All cash figures are
// integer minor currency units. Variance may be negative (shortage) or
// positive (overage); both are recorded, not rejected.
type Shift struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	OwnerID      uint        `json:"owner_id" gorm:"not null;index"`
	PICName      string      `json:"pic_name" gorm:"not null"`
	ShiftName    string      `json:"shift_name"`
	StartingCash int64       `json:"starting_cash" gorm:"not null"`
	StartTime    time.Time   `json:"start_time" gorm:"not null"`
	Status       ShiftStatus `json:"status" gorm:"not null;default:'active'"`
	// ActiveKey is the owner ID as a string while the shift is active,
	// NULL once closed. The unique index rejects a second concurrent
	// open instead of silently creating a duplicate session.
	ActiveKey       *string    `json:"-" gorm:"uniqueIndex"`
	ActualCash      int64      `json:"actual_cash"`
	ExpectedRevenue int64      `json:"expected_revenue"`
	Variance        int64      `json:"variance"`
	EndTime         *time.Time `json:"end_time"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
