package cart

import (
	"testing"

	"warung-pos-api/models"
)

var (
	nasiGoreng = models.MenuItem{ID: 1, Name: "Nasi Goreng", UnitPrice: 30000}
	esTeh      = models.MenuItem{ID: 2, Name: "Es Teh", UnitPrice: 5000}
)

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()
	c.AddItem(nasiGoreng)
	c.AddItem(nasiGoreng)
	c.AddItem(esTeh)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("nasi goreng quantity = %d, want 2", lines[0].Quantity)
	}
	if lines[1].Quantity != 1 {
		t.Errorf("es teh quantity = %d, want 1", lines[1].Quantity)
	}
}

func TestSubtotal(t *testing.T) {
	c := New()
	c.AddItem(nasiGoreng)
	c.AddItem(nasiGoreng)
	c.AddItem(esTeh)

	if got := c.Subtotal(); got != 65000 {
		t.Errorf("Subtotal() = %d, want 65000", got)
	}
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	c := New()
	c.AddItem(nasiGoreng)
	c.AddItem(nasiGoreng)

	c.Decrement(nasiGoreng.ID)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Fatalf("quantity after decrement = %d, want 1", got)
	}

	c.Decrement(nasiGoreng.ID)
	if c.Len() != 0 {
		t.Errorf("cart has %d lines after removing last unit, want 0", c.Len())
	}

	// unknown IDs are a no-op
	c.Decrement(99)
}

func TestQuantityNeverBelowOne(t *testing.T) {
	c := New()
	c.AddItem(esTeh)
	c.Decrement(esTeh.ID)
	c.Decrement(esTeh.ID)
	for _, l := range c.Lines() {
		if l.Quantity < 1 {
			t.Errorf("line %q has quantity %d", l.Name, l.Quantity)
		}
	}
}

func TestSetNote(t *testing.T) {
	c := New()
	c.AddItem(nasiGoreng)
	c.SetNote(nasiGoreng.ID, "pedas, tanpa bawang")
	if got := c.Lines()[0].Note; got != "pedas, tanpa bawang" {
		t.Errorf("note = %q", got)
	}
	c.SetNote(nasiGoreng.ID, "tidak pedas")
	if got := c.Lines()[0].Note; got != "tidak pedas" {
		t.Errorf("note after overwrite = %q", got)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(nasiGoreng)
	c.AddItem(esTeh)
	c.Clear()
	if c.Len() != 0 || c.Subtotal() != 0 {
		t.Errorf("cart not empty after Clear: %d lines, subtotal %d", c.Len(), c.Subtotal())
	}
}

func TestSnapshotUnaffectedByMenuEdit(t *testing.T) {
	item := models.MenuItem{ID: 7, Name: "Ayam Bakar", UnitPrice: 35000}
	c := New()
	c.AddItem(item)

	item.UnitPrice = 99999
	item.Name = "renamed"

	l := c.Lines()[0]
	if l.UnitPrice != 35000 || l.Name != "Ayam Bakar" {
		t.Errorf("cart line follows menu edits: %+v", l)
	}
}
