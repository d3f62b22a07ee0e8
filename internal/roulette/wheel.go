package roulette

import (
	"math/rand"
	"sync"
	"time"
)

type Color string

const (
	Red   Color = "red"
	Black Color = "black"
	Green Color = "green"
)

// Slots is the number of wheel positions (0..36).
const Slots = 37

// European wheel layout.
var redSlots = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// SlotColor returns the color of a wheel slot. Slot 0 is the green house
// slot and loses every color bet.
func SlotColor(slot int) Color {
	switch {
	case slot == 0:
		return Green
	case redSlots[slot]:
		return Red
	default:
		return Black
	}
}

// Spinner draws wheel outcomes. Injected so tests can force specific slots.
type Spinner interface {
	// Spin returns a uniformly random slot in [0, Slots).
	Spin() int
}

type randSpinner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSpinner() Spinner {
	return &randSpinner{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *randSpinner) Spin() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(Slots)
}
