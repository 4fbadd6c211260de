package services

import (
	"time"

	"warung-pos-api/models"
	"warung-pos-api/statemachine"

	"gorm.io/gorm"
)

// TableCard is one entry of the floor view: a real table in its
// effective display state, or a virtual card for an active takeaway
// order. Occupied cards carry the elapsed time and running bill of the
// order holding the table.
type TableCard struct {
	TableID        uint               `json:"table_id,omitempty"`
	TableNumber    int                `json:"table_number"`
	Capacity       int                `json:"capacity,omitempty"`
	Status         string             `json:"status"`
	Takeaway       bool               `json:"takeaway,omitempty"`
	OrderID        uint               `json:"order_id,omitempty"`
	OrderStatus    models.OrderStatus `json:"order_status,omitempty"`
	ElapsedMinutes int                `json:"elapsed_minutes,omitempty"`
	RunningBill    int64              `json:"running_bill,omitempty"`
}

// OccupancyService derives the floor state from tables and active
// orders. It is a pure read path: idempotent, side-effect-free,
// recomputed on every call — "occupied" is never stored anywhere.
type OccupancyService struct {
	DB *gorm.DB
	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

func (s *OccupancyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// FloorState computes each table's effective display state. A table
// referenced by an active dine_in order shows occupied regardless of
// its stored status; otherwise the stored status (available/reserved)
// wins. Active takeaway orders each get a virtual card after the real
// tables; those cards disappear when the order completes.
func (s *OccupancyService) FloorState(ownerID uint) ([]TableCard, error) {
	var tables []models.DiningTable
	if err := s.DB.Where("owner_id = ?", ownerID).
		Order("number asc").Find(&tables).Error; err != nil {
		return nil, err
	}

	var active []models.Order
	if err := s.DB.Preload("Items").
		Where("owner_id = ? AND status IN ?", ownerID, statemachine.ActiveStatuses()).
		Order("created_at asc").Find(&active).Error; err != nil {
		return nil, err
	}

	byTable := make(map[int]*models.Order)
	var takeaway []*models.Order
	for i := range active {
		o := &active[i]
		if o.OrderType == models.OrderDineIn {
			byTable[o.TableNumber] = o
		} else {
			takeaway = append(takeaway, o)
		}
	}

	now := s.now()
	cards := make([]TableCard, 0, len(tables)+len(takeaway))
	for _, t := range tables {
		card := TableCard{
			TableID:     t.ID,
			TableNumber: t.Number,
			Capacity:    t.Capacity,
			Status:      string(t.Status),
		}
		if o, ok := byTable[t.Number]; ok {
			card.Status = "occupied"
			card.OrderID = o.ID
			card.OrderStatus = o.Status
			card.ElapsedMinutes = int(now.Sub(o.CreatedAt).Minutes())
			card.RunningBill = runningBill(o)
		}
		cards = append(cards, card)
	}

	for _, o := range takeaway {
		cards = append(cards, TableCard{
			TableNumber:    models.TakeawayTable,
			Status:         "occupied",
			Takeaway:       true,
			OrderID:        o.ID,
			OrderStatus:    o.Status,
			ElapsedMinutes: int(now.Sub(o.CreatedAt).Minutes()),
			RunningBill:    runningBill(o),
		})
	}
	return cards, nil
}

// runningBill sums the order's line totals. Independent of, and always
// equal to, the stored TotalAmount.
func runningBill(o *models.Order) int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.LineTotal()
	}
	return sum
}
