package array

import (
	"unsafe"

	"github.com/rs/zerolog"
)

const (
	// Number of slots allocated by New
	DefaultCapacity = 10

	// Factor applied to the capacity when an append finds the array full
	DefaultGrowthFactor = 2

	// Size (in bytes) of one slot, used for allocation accounting
	ElementSize = int(unsafe.Sizeof(int(0)))

	// Suffix appended to the label of an array produced by Copy
	CopySuffix = "_copy"

	// Suffix appended to the label of an array produced by Move
	MoveSuffix = "_moved"
)

// Storage owns a contiguous run of integer slots. The slots returned by Ints
// are only valid until the next call to Enlarge or Close.
type Storage interface {
	// Ints returns every allocated slot; its length is the capacity
	Ints() []int

	// Enlarge replaces the slots with nextCapacity slots, keeping the first keep values
	Enlarge(nextCapacity, keep int) ([]int, error)

	// Close releases the slots
	Close() error

	String() string
}

// Allocator creates Storage handles
type Allocator interface {
	NewStorage(capacity int) (Storage, error)
}

// Config holds the parameters shared by all arrays created from it.
// Arrays produced by Copy and Move share the config of their source.
type Config struct {
	// where the slots come from
	Allocator Allocator

	// receives one debug event per lifecycle transition
	Logger zerolog.Logger

	// capacity multiplier on growth, values below 2 fall back to DefaultGrowthFactor
	GrowthFactor int
}

// DefaultConfig returns a config backed by the Go heap with logging disabled
func DefaultConfig() *Config {
	return &Config{
		Allocator:    HeapAllocator{},
		Logger:       zerolog.Nop(),
		GrowthFactor: DefaultGrowthFactor,
	}
}
