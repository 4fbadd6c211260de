package services

import (
	"testing"
	"time"

	"warung-pos-api/models"
)

func cardFor(cards []TableCard, number int) *TableCard {
	for i := range cards {
		if !cards[i].Takeaway && cards[i].TableNumber == number {
			return &cards[i]
		}
	}
	return nil
}

// Submit flips the table to occupied, pay or cancel revert it, and
// nothing else touches it.
func TestOccupancyRoundTrip(t *testing.T) {
	db, orders, _, _, floor := newServices(t)
	seedTable(t, db, 1, 5)

	check := func(want string) {
		t.Helper()
		cards, err := floor.FloorState(1)
		if err != nil {
			t.Fatalf("FloorState: %v", err)
		}
		card := cardFor(cards, 5)
		if card == nil {
			t.Fatal("table 5 missing from floor state")
		}
		if card.Status != want {
			t.Errorf("table 5 status = %s, want %s", card.Status, want)
		}
	}

	check("available")

	order, err := orders.Submit(1, 5, models.OrderDineIn, sampleLines())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	check("occupied")

	// kitchen progress does not touch occupancy
	orders.Advance(1, order.ID, models.StatusPreparing)
	check("occupied")

	orders.Pay(1, order.ID, "cash")
	check("available")

	// cancel path
	order2, _ := orders.Submit(1, 5, models.OrderDineIn, sampleLines())
	check("occupied")
	orders.Cancel(1, order2.ID)
	check("available")
}

func TestOccupiedCardCarriesBillAndElapsed(t *testing.T) {
	db, orders, _, _, floor := newServices(t)
	seedTable(t, db, 1, 2)

	order, _ := orders.Submit(1, 2, models.OrderDineIn, sampleLines())
	floor.Now = func() time.Time { return order.CreatedAt.Add(45 * time.Minute) }

	cards, _ := floor.FloorState(1)
	card := cardFor(cards, 2)
	if card == nil {
		t.Fatal("table 2 missing")
	}
	if card.RunningBill != 65000 {
		t.Errorf("running bill = %d, want 65000", card.RunningBill)
	}
	if card.RunningBill != order.TotalAmount {
		t.Errorf("running bill %d diverges from stored total %d", card.RunningBill, order.TotalAmount)
	}
	if card.ElapsedMinutes != 45 {
		t.Errorf("elapsed = %d, want 45", card.ElapsedMinutes)
	}
	if card.OrderID != order.ID {
		t.Errorf("card order = %d, want %d", card.OrderID, order.ID)
	}
}

// Stored status wins only when no active order holds the table.
func TestReservedShownUnlessOrdered(t *testing.T) {
	db, orders, _, _, floor := newServices(t)
	table := seedTable(t, db, 1, 6)
	db.Model(&table).Update("status", models.TableReserved)

	cards, _ := floor.FloorState(1)
	if got := cardFor(cards, 6).Status; got != "reserved" {
		t.Errorf("status = %s, want reserved", got)
	}

	// seating the reserved party consumes the reservation
	order, err := orders.Submit(1, 6, models.OrderDineIn, sampleLines())
	if err != nil {
		t.Fatalf("submit to reserved table: %v", err)
	}
	cards, _ = floor.FloorState(1)
	if got := cardFor(cards, 6).Status; got != "occupied" {
		t.Errorf("status = %s, want occupied", got)
	}

	orders.Pay(1, order.ID, "cash")
	cards, _ = floor.FloorState(1)
	if got := cardFor(cards, 6).Status; got != "available" {
		t.Errorf("status after pay = %s, want available", got)
	}
}

// Each active takeaway order is its own virtual card; cards vanish on
// completion.
func TestTakeawayVirtualCards(t *testing.T) {
	_, orders, _, _, floor := newServices(t)

	first, _ := orders.Submit(1, 0, models.OrderTakeaway, sampleLines())
	orders.Submit(1, 0, models.OrderTakeaway, sampleLines())
	orders.Submit(1, 0, models.OrderTakeaway, sampleLines())

	count := func() int {
		cards, _ := floor.FloorState(1)
		n := 0
		for _, c := range cards {
			if c.Takeaway {
				n++
			}
		}
		return n
	}

	if got := count(); got != 3 {
		t.Fatalf("takeaway cards = %d, want 3", got)
	}

	orders.Pay(1, first.ID, "gopay")
	if got := count(); got != 2 {
		t.Errorf("takeaway cards after pay = %d, want 2", got)
	}
}

// The projection is a pure read: calling it twice changes nothing.
func TestFloorStateIdempotent(t *testing.T) {
	db, orders, _, _, floor := newServices(t)
	seedTable(t, db, 1, 1)
	orders.Submit(1, 1, models.OrderDineIn, sampleLines())

	before, _ := floor.FloorState(1)
	after, _ := floor.FloorState(1)
	if len(before) != len(after) {
		t.Fatalf("card count changed between calls: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i].Status != after[i].Status || before[i].RunningBill != after[i].RunningBill {
			t.Errorf("card %d changed between calls", i)
		}
	}

	var stored models.DiningTable
	db.Where("owner_id = ? AND number = ?", 1, 1).First(&stored)
	if stored.Status != models.TableAvailable {
		t.Errorf("projection wrote occupied into storage: %s", stored.Status)
	}
}
