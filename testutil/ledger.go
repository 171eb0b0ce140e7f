package testutil

import (
	"errors"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrInjected is the error returned by element operations that were armed
// to fail.
var ErrInjected = errors.New("injected failure")

// Fault selects the element operations a failure is armed for.
type Fault uint8

const (
	// FaultConstruct arms default construction (Init).
	FaultConstruct Fault = 1 << iota
	// FaultCopy arms copy construction (Clone).
	FaultCopy
	// FaultMove arms move construction (MoveOut).
	FaultMove

	// FaultAny arms every element operation.
	FaultAny = FaultConstruct | FaultCopy | FaultMove
)

// Ledger tracks live element instances by ID and injects failures.
// It is safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	live    *roaring.Bitmap
	nextID  uint32
	created int
	doubles int

	kinds  Fault
	seen   int
	failAt int
	sticky bool
}

// Default is the ledger used by the element types of this package.
var Default = NewLedger()

// NewLedger creates an empty ledger without armed failures.
func NewLedger() *Ledger {
	return &Ledger{live: roaring.New()}
}

// Reset forgets all instances and disarms failures.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.live.Clear()
	l.nextID = 0
	l.created = 0
	l.doubles = 0
	l.disarmLocked()
}

// FailOn arms the n-th following operation of the given kinds to fail once.
func (l *Ledger) FailOn(n int, kinds Fault) {
	l.arm(n, kinds, false)
}

// FailFrom arms the n-th following operation of the given kinds and every
// later one to fail.
func (l *Ledger) FailFrom(n int, kinds Fault) {
	l.arm(n, kinds, true)
}

// ClearFaults disarms failures.
func (l *Ledger) ClearFaults() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disarmLocked()
}

// Live returns the number of instances constructed and not yet destroyed.
func (l *Ledger) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return int(l.live.GetCardinality())
}

// IsLive reports whether the instance with the given ID is live.
func (l *Ledger) IsLive(id uint32) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live.Contains(id)
}

// Created returns the number of instances constructed since the last Reset.
func (l *Ledger) Created() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created
}

// DoubleDestroys returns how often an instance that was not live was
// destroyed.
func (l *Ledger) DoubleDestroys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.doubles
}

func (l *Ledger) arm(n int, kinds Fault, sticky bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.kinds = kinds
	l.seen = 0
	l.failAt = n
	l.sticky = sticky
}

func (l *Ledger) disarmLocked() {
	l.kinds = 0
	l.seen = 0
	l.failAt = 0
	l.sticky = false
}

// acquire registers a new instance unless an armed failure fires.
func (l *Ledger) acquire(kind Fault) (uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.kinds&kind != 0 && l.failAt > 0 {
		l.seen++
		if l.seen >= l.failAt {
			if !l.sticky {
				l.disarmLocked()
			}
			return 0, ErrInjected
		}
	}

	l.nextID++
	l.live.Add(l.nextID)
	l.created++
	return l.nextID, nil
}

func (l *Ledger) release(id uint32) {
	if id == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.live.Contains(id) {
		l.doubles++
		return
	}
	l.live.Remove(id)
}
