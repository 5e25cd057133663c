package simul

import (
	"fmt"
	"strings"
)

// ResultRow contains data about one sample of one experiment
type ResultRow struct {
	size int

	nRepeat      int
	totalNRepeat int

	value float64
}

// Results is a collection of ResultRow's
type Results struct {
	rows []*ResultRow
}

func (results *Results) add(size, nRepeat, totalNRepeat int, value float64) {
	results.rows = append(results.rows, &ResultRow{
		size:         size,
		nRepeat:      nRepeat,
		totalNRepeat: totalNRepeat,
		value:        value,
	})
}

// Len returns the number of samples
func (results *Results) Len() int {
	return len(results.rows)
}

// Mean averages the samples taken for the given size
func (results *Results) Mean(size int) float64 {
	sum, n := 0.0, 0
	for _, r := range results.rows {
		if r.size == size {
			sum += r.value
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (results Results) String() string {
	rows := make([]string, 0, len(results.rows))
	for _, r := range results.rows {
		rows = append(rows, r.String())
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func (r ResultRow) String() string {
	return fmt.Sprintf("{\"size\": \"%d\", \"nRepeat\": \"%d\", \"totalNRepeat\": \"%d\", \"value\": \"%f\"}",
		r.size, r.nRepeat, r.totalNRepeat, r.value)
}
