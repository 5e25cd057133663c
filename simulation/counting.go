package simul

import "dynarray/array"

// Wraps an allocator to count the work growth does
type countingAllocator struct {
	inner array.Allocator

	// number of Enlarge calls
	reallocations int
	// number of values copied by those calls
	copied int
}

func (c *countingAllocator) NewStorage(capacity int) (array.Storage, error) {
	s, err := c.inner.NewStorage(capacity)
	if err != nil {
		return nil, err
	}
	return &countingStorage{Storage: s, owner: c}, nil
}

type countingStorage struct {
	array.Storage
	owner *countingAllocator
}

func (s *countingStorage) Enlarge(nextCapacity, keep int) ([]int, error) {
	s.owner.reallocations++
	s.owner.copied += keep
	return s.Storage.Enlarge(nextCapacity, keep)
}
