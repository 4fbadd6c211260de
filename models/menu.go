package models

import "time"

// MenuItem is a sellable catalog entry. UnitPrice is in minor currency
// units (Rupiah has no subunit, so 1 unit = Rp 1). ImageRef holds the
// URL returned by the external blob store; the bytes never touch this
// service. Orders copy Name/UnitPrice at submit time, so editing or
// deleting a MenuItem never alters historical totals.
type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"owner_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	UnitPrice   int64     `json:"unit_price" gorm:"not null"`
	ImageRef    string    `json:"image_ref"`
	Category    string    `json:"category"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
