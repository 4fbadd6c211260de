// Package notify is the in-process change-notification channel. A
// Change carries only the name of the table that changed; subscribers
// re-query authoritative state on receipt, so dropped or duplicated
// signals are harmless.
package notify

import "sync"

// Change signals that rows in the named DB table changed for an owner.
type Change struct {
	Table string `json:"table"`
}

type subscriber struct {
	ownerID uint
	ch      chan Change
}

// Hub fans Change signals out to per-owner subscribers. Sends are
// non-blocking: a subscriber that cannot keep up loses signals rather
// than stalling publishers, which is fine under the re-query contract.
type Hub struct {
	mu   sync.Mutex
	subs map[*subscriber]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]bool)}
}

// Subscribe registers a listener for one owner's changes. The returned
// cancel func must be called when the listener goes away.
func (h *Hub) Subscribe(ownerID uint) (<-chan Change, func()) {
	sub := &subscriber{ownerID: ownerID, ch: make(chan Change, 16)}
	h.mu.Lock()
	h.subs[sub] = true
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if h.subs[sub] {
			delete(h.subs, sub)
			close(sub.ch)
		}
		h.mu.Unlock()
	}
	return sub.ch, cancel
}

// Publish notifies every subscriber of ownerID that table changed.
func (h *Hub) Publish(ownerID uint, table string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subs {
		if sub.ownerID != ownerID {
			continue
		}
		select {
		case sub.ch <- Change{Table: table}:
		default:
		}
	}
}
