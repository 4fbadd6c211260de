package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"warung-pos-api/models"
	"warung-pos-api/notify"

	"gorm.io/gorm"
)

// ShiftService opens and closes cashier sessions and computes the
// expected-vs-actual cash reconciliation at close. The at-most-one-
// active-shift invariant is a unique index on Shift.ActiveKey, so two
// simultaneous opens produce exactly one active shift and one clean
// ErrShiftActive.
type ShiftService struct {
	DB  *gorm.DB
	Hub *notify.Hub
	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func NewShiftService(db *gorm.DB, hub *notify.Hub) *ShiftService {
	return &ShiftService{DB: db, Hub: hub}
}

func (s *ShiftService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ShiftService) publish(ownerID uint) {
	if s.Hub != nil {
		s.Hub.Publish(ownerID, "shifts")
	}
}

// shiftName follows the house convention: sessions opened before 15:00
// are the morning shift.
func shiftName(t time.Time) string {
	if t.Hour() < 15 {
		return "PAGI"
	}
	return "SORE"
}

// Open starts a cashier session with a starting cash float. Fails with
// ErrShiftActive if a session is already running for this owner.
func (s *ShiftService) Open(ownerID uint, picName string, startingCash int64) (*models.Shift, error) {
	if picName == "" {
		return nil, fmt.Errorf("%w: PIC name is required", ErrValidation)
	}
	if startingCash <= 0 {
		return nil, fmt.Errorf("%w: starting cash must be positive", ErrValidation)
	}

	start := s.now()
	key := strconv.FormatUint(uint64(ownerID), 10)
	shift := models.Shift{
		OwnerID:      ownerID,
		PICName:      picName,
		ShiftName:    shiftName(start),
		StartingCash: startingCash,
		StartTime:    start,
		Status:       models.ShiftActive,
		ActiveKey:    &key,
	}
	if err := s.DB.Create(&shift).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrShiftActive
		}
		return nil, err
	}

	s.publish(ownerID)
	return &shift, nil
}

// ActiveState is the running session plus its realtime reconciliation
// figures, recomputed from the ledger on every call.
type ActiveState struct {
	Shift           models.Shift `json:"shift"`
	ExpectedRevenue int64        `json:"expected_revenue"`
	ExpectedCash    int64        `json:"expected_cash"`
}

// Active returns the owner's running session with its expected drawer
// so far, or ErrNoActiveShift.
func (s *ShiftService) Active(ownerID uint) (*ActiveState, error) {
	var shift models.Shift
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.ShiftActive).
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveShift
	}
	if err != nil {
		return nil, err
	}

	revenue, err := totalForPeriod(s.DB, ownerID, shift.StartTime, s.now())
	if err != nil {
		return nil, err
	}
	return &ActiveState{
		Shift:           shift,
		ExpectedRevenue: revenue,
		ExpectedCash:    shift.StartingCash + revenue,
	}, nil
}

// Close ends the active session. Expected cash is the starting float
// plus all ledger revenue in [startTime, now) — the house books assume
// all revenue was cash, a simplification the by-method revenue summary
// makes visible. Variance is signed: shortage is negative, overage
// positive, and both are recorded rather than rejected. The notes
// field gets "BALANCE" on an exact match, "SELISIH: <variance>"
// otherwise.
func (s *ShiftService) Close(ownerID uint, actualCash int64) (*models.Shift, error) {
	if actualCash < 0 {
		return nil, fmt.Errorf("%w: counted cash cannot be negative", ErrValidation)
	}

	var shift models.Shift
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ? AND status = ?", ownerID, models.ShiftActive).
			First(&shift).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveShift
			}
			return err
		}

		end := s.now()
		revenue, err := totalForPeriod(tx, ownerID, shift.StartTime, end)
		if err != nil {
			return err
		}

		expectedCash := shift.StartingCash + revenue
		variance := actualCash - expectedCash
		notes := models.ShiftBalanceNote
		if variance != 0 {
			notes = fmt.Sprintf("SELISIH: %d", variance)
		}

		res := tx.Model(&models.Shift{}).
			Where("id = ? AND status = ?", shift.ID, models.ShiftActive).
			Updates(map[string]interface{}{
				"status":           models.ShiftClosed,
				"active_key":       nil,
				"actual_cash":      actualCash,
				"expected_revenue": revenue,
				"variance":         variance,
				"end_time":         end,
				"notes":            notes,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// another cashier closed it between the read and the update
			return ErrNoActiveShift
		}

		shift.Status = models.ShiftClosed
		shift.ActiveKey = nil
		shift.ActualCash = actualCash
		shift.ExpectedRevenue = revenue
		shift.Variance = variance
		shift.EndTime = &end
		shift.Notes = notes
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ownerID)
	return &shift, nil
}

// History returns the owner's most recently closed sessions, newest
// first. Limit defaults to 5, matching the shift screen.
func (s *ShiftService) History(ownerID uint, limit int) ([]models.Shift, error) {
	if limit <= 0 {
		limit = 5
	}
	var shifts []models.Shift
	err := s.DB.Where("owner_id = ? AND status = ?", ownerID, models.ShiftClosed).
		Order("end_time desc").Limit(limit).Find(&shifts).Error
	return shifts, err
}

// DeleteHistory removes one closed session record. Active sessions
// cannot be deleted.
func (s *ShiftService) DeleteHistory(ownerID, shiftID uint) error {
	res := s.DB.Where("id = ? AND owner_id = ? AND status = ?",
		shiftID, ownerID, models.ShiftClosed).
		Delete(&models.Shift{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: closed shift %d", ErrNotFound, shiftID)
	}
	s.publish(ownerID)
	return nil
}
