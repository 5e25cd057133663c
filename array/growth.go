package array

// Computes the capacity an array grows to once its current slots are full.
// The result is always strictly greater than current, so an empty array
// grows to a single slot.
func nextCapacity(current, factor int) int {
	if factor < 2 {
		factor = DefaultGrowthFactor
	}
	next := current * factor
	if next <= current {
		next = current + 1
	}
	return next
}
