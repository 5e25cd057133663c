package array

import (
	"fmt"

	"dynarray"

	"github.com/rs/zerolog"
)

var _ dynarray.Container = (*Array)(nil)

// noCopy makes `go vet` flag Array values copied by assignment.
// Deep copies go through Copy and AssignCopy.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is a growable run of integers owning the storage it lives in.
// It must be handled through a pointer and released with Close once its
// owning scope ends. The zero value is an inert array using DefaultConfig().
type Array struct {
	noCopy noCopy

	config *Config

	// nil when the array is inert (moved-from or closed)
	storage Storage

	// every allocated slot, len(data) is the capacity
	data []int

	// number of slots holding appended values
	length int

	// cosmetic, not unique
	label string
}

// New creates an array with DefaultCapacity slots and the default config
func New(label string) *Array {
	return NewArray(label, DefaultCapacity, nil)
}

// NewArray creates an empty array with initialCapacity slots allocated from
// config's allocator. A nil config means DefaultConfig(). A capacity of zero
// is legal, the first Append then grows it.
func NewArray(label string, initialCapacity int, config *Config) *Array {
	if config == nil {
		config = DefaultConfig()
	}
	if initialCapacity < 0 {
		initialCapacity = 0
	}

	a := &Array{
		config: config,
		label:  label,
	}
	a.acquire(initialCapacity)
	a.event().Msg("constructed")
	return a
}

// Append places value after the last element, growing the storage first if
// every slot is taken. Existing values keep their positions.
func (a *Array) Append(value int) {
	if a.length == len(a.data) {
		a.grow()
	}
	a.data[a.length] = value
	a.length++
}

// Get returns the element at index, or a *RangeError matching ErrOutOfRange
// when index is outside [0, Len()).
func (a *Array) Get(index int) (int, error) {
	if index < 0 || index >= a.length {
		return 0, &RangeError{Index: index, Length: a.length}
	}
	return a.data[index], nil
}

func (a *Array) Len() int {
	return a.length
}

func (a *Array) Cap() int {
	return len(a.data)
}

func (a *Array) Label() string {
	return a.label
}

// Values returns a fresh slice holding the elements in order
func (a *Array) Values() []int {
	values := make([]int, a.length)
	copy(values, a.data[:a.length])
	return values
}

// Allocates capacity slots from the config's allocator. Allocation failure is
// fatal, like make running out of memory.
func (a *Array) acquire(capacity int) {
	allocator := a.settings().Allocator
	if allocator == nil {
		allocator = HeapAllocator{}
	}
	storage, err := allocator.NewStorage(capacity)
	if err != nil {
		panic(fmt.Sprintf("array %q: allocating %d slots: %v", a.label, capacity, err))
	}
	a.storage = storage
	a.data = storage.Ints()
}

func (a *Array) grow() {
	next := nextCapacity(len(a.data), a.settings().GrowthFactor)

	if a.storage == nil {
		// inert arrays own nothing to enlarge
		a.acquire(next)
	} else {
		data, err := a.storage.Enlarge(next, a.length)
		if err != nil {
			panic(fmt.Sprintf("array %q: growing to %d slots: %v", a.label, next, err))
		}
		a.data = data
	}

	a.event().Msg("resized")
}

// event starts a debug log entry describing the current state of the array
func (a *Array) event() *zerolog.Event {
	kind := "none"
	if a.storage != nil {
		kind = a.storage.String()
	}
	return a.settings().Logger.Debug().
		Str("label", a.label).
		Int("length", a.length).
		Int("capacity", len(a.data)).
		Int("bytes", len(a.data)*ElementSize).
		Str("storage", kind)
}

// settings returns the array's config, adopting DefaultConfig() for zero values
func (a *Array) settings() *Config {
	if a.config == nil {
		a.config = DefaultConfig()
	}
	return a.config
}
