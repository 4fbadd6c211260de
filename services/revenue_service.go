package services

import (
	"fmt"
	"time"

	"warung-pos-api/models"
	"warung-pos-api/notify"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevenueService is the append-only payment ledger: the source of
// truth for dashboards, profit/loss and shift reconciliation. Entries
// are inserted exactly once, from inside the payment transaction, and
// never mutated. The only delete path is the explicit reset.
type RevenueService struct {
	DB  *gorm.DB
	Hub *notify.Hub
}

func NewRevenueService(db *gorm.DB, hub *notify.Hub) *RevenueService {
	return &RevenueService{DB: db, Hub: hub}
}

// Append inserts a ledger entry inside the caller's transaction and
// stamps its receipt number. Called by OrderService.Pay only.
func (s *RevenueService) Append(tx *gorm.DB, entry *models.RevenueEntry) error {
	entry.ReceiptNo = uuid.NewString()
	return tx.Create(entry).Error
}

// TotalForPeriod sums entries with from <= created_at < to. The
// half-open interval means back-to-back periods never double-count a
// boundary timestamp.
func (s *RevenueService) TotalForPeriod(ownerID uint, from, to time.Time) (int64, error) {
	return totalForPeriod(s.DB, ownerID, from, to)
}

func totalForPeriod(db *gorm.DB, ownerID uint, from, to time.Time) (int64, error) {
	var total int64
	err := db.Model(&models.RevenueEntry{}).
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error
	return total, err
}

// ListForPeriod returns entries in the half-open period, newest first.
func (s *RevenueService) ListForPeriod(ownerID uint, from, to time.Time) ([]models.RevenueEntry, error) {
	var entries []models.RevenueEntry
	err := s.DB.
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to).
		Order("created_at desc").Find(&entries).Error
	return entries, err
}

// Summary aggregates a period for the dashboard and profit/loss views:
// entry count, grand total, and splits by payment method and order
// type. The by-method split is also what exposes the shift math's
// all-cash simplification at a glance.
type Summary struct {
	From        time.Time        `json:"from"`
	To          time.Time        `json:"to"`
	Count       int              `json:"count"`
	Total       int64            `json:"total"`
	ByMethod    map[string]int64 `json:"by_method"`
	ByOrderType map[string]int64 `json:"by_order_type"`
}

func (s *RevenueService) Summarize(ownerID uint, from, to time.Time) (*Summary, error) {
	entries, err := s.ListForPeriod(ownerID, from, to)
	if err != nil {
		return nil, err
	}
	sum := &Summary{
		From:        from,
		To:          to,
		ByMethod:    make(map[string]int64),
		ByOrderType: make(map[string]int64),
	}
	for _, e := range entries {
		sum.Count++
		sum.Total += e.TotalAmount
		sum.ByMethod[e.PaymentMethod] += e.TotalAmount
		sum.ByOrderType[string(e.OrderType)] += e.TotalAmount
	}
	return sum, nil
}

// ResetAll deletes every ledger entry for the owner. Irreversible, and
// a distinct auditable operation — the handler requires an explicit
// confirmation flag before calling it. Returns the number of rows
// removed.
func (s *RevenueService) ResetAll(ownerID uint) (int64, error) {
	res := s.DB.Where("owner_id = ?", ownerID).Delete(&models.RevenueEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("revenue reset: %w", res.Error)
	}
	if s.Hub != nil {
		s.Hub.Publish(ownerID, "revenue")
	}
	return res.RowsAffected, nil
}
