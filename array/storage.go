package array

// A plain []int living on the Go heap
type heapStorage struct {
	slots []int
}

func (s *heapStorage) Ints() []int {
	return s.slots
}

// Enlarge allocates the next slice and copies the first keep values into it.
// The old slice is left to the garbage collector.
func (s *heapStorage) Enlarge(nextCapacity, keep int) ([]int, error) {
	next := make([]int, nextCapacity)
	copy(next, s.slots[:keep])
	s.slots = next
	return next, nil
}

func (s *heapStorage) Close() error {
	s.slots = nil
	return nil
}

func (s *heapStorage) String() string {
	return "heap"
}

// HeapAllocator hands out storage allocated with make
type HeapAllocator struct{}

func (HeapAllocator) NewStorage(capacity int) (Storage, error) {
	return &heapStorage{
		slots: make([]int, capacity),
	}, nil
}
