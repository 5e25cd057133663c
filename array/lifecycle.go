package array

import "fmt"

// Close releases the storage exactly once and leaves the array inert:
// length and capacity zero, no storage. Closing an inert array is a no-op,
// so `defer a.Close()` is safe after a Move.
func (a *Array) Close() error {
	if a.storage == nil {
		return nil
	}
	a.event().Msg("destroyed")
	return a.release()
}

func (a *Array) release() error {
	var err error
	if a.storage != nil {
		err = a.storage.Close()
	}
	a.storage, a.data, a.length = nil, nil, 0
	return err
}

// Copy returns an independent array with its own storage of src.Cap() slots
// holding the same elements. src is not modified.
func Copy(src *Array) *Array {
	dst := &Array{
		config: src.config,
		label:  src.label + CopySuffix,
	}
	dst.copyFrom(src)
	dst.event().Str("source", src.label).Msg("copied")
	return dst
}

// Move returns an array that takes over src's storage without copying any
// element. src is left inert.
func Move(src *Array) *Array {
	dst := &Array{
		config: src.config,
		label:  src.label + MoveSuffix,
	}
	dst.take(src)
	dst.event().Str("source", src.label).Msg("moved")
	return dst
}

// AssignCopy releases the receiver's storage and replaces its content with a
// deep copy of src. The receiver keeps its label and config.
func (a *Array) AssignCopy(src *Array) {
	if a == src {
		return
	}
	a.mustRelease()
	a.copyFrom(src)
	a.event().Str("source", src.label).Msg("copy-assigned")
}

// AssignMove releases the receiver's storage and takes over src's, leaving
// src inert. The receiver keeps its label and config.
func (a *Array) AssignMove(src *Array) {
	if a == src {
		return
	}
	a.mustRelease()
	a.take(src)
	a.event().Str("source", src.label).Msg("move-assigned")
}

func (a *Array) copyFrom(src *Array) {
	a.acquire(len(src.data))
	copy(a.data, src.data[:src.length])
	a.length = src.length
}

// take moves the ownership in one step: src never observes a state where it
// still references storage that a also owns.
func (a *Array) take(src *Array) {
	a.storage, a.data, a.length = src.storage, src.data, src.length
	src.storage, src.data, src.length = nil, nil, 0
}

// Only corrupted allocator state makes releasing our own storage fail
func (a *Array) mustRelease() {
	if err := a.release(); err != nil {
		panic(fmt.Sprintf("array %q: releasing storage: %v", a.label, err))
	}
}
