package array

import (
	"errors"
	"fmt"
	"unsafe"

	"modernc.org/memory"
)

// ErrAllocatorInUse is returned when closing a ManualAllocator that still has
// blocks owned by live storage
var ErrAllocatorInUse = errors.New("allocator still owns live blocks")

// ManualAllocator hands out storage allocated outside the Go heap. Every
// block is freed explicitly when its Storage is enlarged or closed. The
// allocator can only be closed once all of its blocks have been freed.
type ManualAllocator struct {
	allocator memory.Allocator
	live      int
}

func NewManualAllocator() *ManualAllocator {
	return &ManualAllocator{}
}

func (a *ManualAllocator) NewStorage(capacity int) (Storage, error) {
	s := &manualStorage{owner: a}
	block, slots, err := s.alloc(capacity)
	if err != nil {
		return nil, err
	}
	s.block, s.slots = block, slots
	return s, nil
}

// Live returns the number of blocks allocated and not yet freed
func (a *ManualAllocator) Live() int {
	return a.live
}

// Close returns all memory held by the allocator to the operating system.
// It fails with ErrAllocatorInUse, leaving every block intact, while storage
// created by the allocator has not been closed.
func (a *ManualAllocator) Close() error {
	if a.live > 0 {
		return fmt.Errorf("closing manual allocator: %w (%d blocks)", ErrAllocatorInUse, a.live)
	}
	return a.allocator.Close()
}

type manualStorage struct {
	owner *ManualAllocator

	// block is what Calloc returned and what Free expects back
	block []byte
	// slots views block as integers
	slots []int
}

func (s *manualStorage) alloc(capacity int) ([]byte, []int, error) {
	if capacity == 0 {
		return nil, nil, nil
	}
	block, err := s.owner.allocator.Calloc(capacity * ElementSize)
	if err != nil {
		return nil, nil, err
	}
	s.owner.live++
	return block, unsafe.Slice((*int)(unsafe.Pointer(&block[0])), capacity), nil
}

func (s *manualStorage) free(block []byte) error {
	if block == nil {
		return nil
	}
	if err := s.owner.allocator.Free(block); err != nil {
		return err
	}
	s.owner.live--
	return nil
}

func (s *manualStorage) Ints() []int {
	return s.slots
}

func (s *manualStorage) Enlarge(nextCapacity, keep int) ([]int, error) {
	block, slots, err := s.alloc(nextCapacity)
	if err != nil {
		return nil, err
	}
	copy(slots, s.slots[:keep])

	old := s.block
	s.block, s.slots = block, slots
	return slots, s.free(old)
}

func (s *manualStorage) Close() error {
	err := s.free(s.block)
	s.block, s.slots = nil, nil
	return err
}

func (s *manualStorage) String() string {
	return "manual"
}
