package statemachine

import (
	"testing"

	"warung-pos-api/models"
)

func TestNext(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		want models.OrderStatus
	}{
		{models.StatusPending, models.StatusPreparing},
		{models.StatusPreparing, models.StatusReady},
		{models.StatusReady, models.StatusServed},
		{models.StatusServed, models.StatusCompleted},
		{models.StatusCompleted, ""},
		{"bogus", ""},
	}
	for _, tt := range tests {
		if got := Next(tt.from); got != tt.want {
			t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestCanAdvance(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{"pending to preparing", models.StatusPending, models.StatusPreparing, false},
		{"preparing to ready", models.StatusPreparing, models.StatusReady, false},
		{"ready to served", models.StatusReady, models.StatusServed, false},
		{"served to completed", models.StatusServed, models.StatusCompleted, false},
		{"skip a step", models.StatusPending, models.StatusReady, true},
		{"skip to terminal", models.StatusPending, models.StatusCompleted, true},
		{"backward", models.StatusReady, models.StatusPreparing, true},
		{"same state", models.StatusPreparing, models.StatusPreparing, true},
		{"from terminal", models.StatusCompleted, models.StatusPending, true},
		{"unknown status", "bogus", models.StatusPreparing, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAdvance(tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("CanAdvance(%s, %s) error = %v, wantErr %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestCanPay(t *testing.T) {
	for _, s := range ActiveStatuses() {
		if err := CanPay(s); err != nil {
			t.Errorf("CanPay(%s) = %v, want nil (payment is lenient)", s, err)
		}
	}
	if err := CanPay(models.StatusCompleted); err == nil {
		t.Error("CanPay(completed) = nil, want error")
	}
	if err := CanPay("bogus"); err == nil {
		t.Error("CanPay(bogus) = nil, want error")
	}
}

func TestCanCancel(t *testing.T) {
	if err := CanCancel(models.StatusPending); err != nil {
		t.Errorf("CanCancel(pending) = %v, want nil", err)
	}
	for _, s := range []models.OrderStatus{
		models.StatusPreparing, models.StatusReady, models.StatusServed, models.StatusCompleted,
	} {
		if err := CanCancel(s); err == nil {
			t.Errorf("CanCancel(%s) = nil, want error", s)
		}
	}
}

func TestMonotonicSequence(t *testing.T) {
	// the only legal path is the full forward walk
	seq := Sequence()
	for i := 0; i < len(seq)-1; i++ {
		if err := CanAdvance(seq[i], seq[i+1]); err != nil {
			t.Fatalf("forward step %s → %s rejected: %v", seq[i], seq[i+1], err)
		}
		for j := 0; j <= i; j++ {
			if err := CanAdvance(seq[i], seq[j]); err == nil {
				t.Errorf("backward step %s → %s allowed", seq[i], seq[j])
			}
		}
	}
}
