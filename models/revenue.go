package models

import "time"

// PaymentMethods lists every accepted tender type.
var PaymentMethods = []string{"cash", "card", "qris", "gopay", "ovo", "dana"}

// ValidPaymentMethod reports whether m is an accepted tender type.
func ValidPaymentMethod(m string) bool {
	for _, p := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

// RevenueEntry is the append-only record of a completed payment —
// exactly one per paid order, created in the same transaction that
// marks the order completed. Items holds the order's line snapshot as
// JSON so reports and receipts survive menu edits and order deletion.
// Entries are never updated; the only delete path is the explicit
// owner-triggered reset.
type RevenueEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ReceiptNo     string    `json:"receipt_no" gorm:"uniqueIndex;not null"`
	OwnerID       uint      `json:"owner_id" gorm:"not null;index"`
	OrderID       uint      `json:"order_id" gorm:"not null"`
	TableNumber   int       `json:"table_number"`
	OrderType     OrderType `json:"order_type"`
	TotalAmount   int64     `json:"total_amount" gorm:"not null"`
	PaymentMethod string    `json:"payment_method" gorm:"not null"`
	Items         string    `json:"items" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"index"`
}
