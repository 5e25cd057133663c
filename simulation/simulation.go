package simul

import (
	"fmt"
	"math/big"
	"strings"

	"dynarray/array"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/kyber/v3/util/random"
)

// Upper bound (exclusive) of the random values appended during simulations
const simulationValueRange = 1 << 30

// GrowthSample describes the cost of filling one array
type GrowthSample struct {
	Size   int
	Repeat int

	// number of times the storage was enlarged
	Reallocations int
	// number of values copied from old storage into new storage
	Copied int
	// milliseconds of CPU time
	CPUTime float64
}

// CopiesPerAppend is the amortised number of values moved per Append
func (s GrowthSample) CopiesPerAppend() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.Copied) / float64(s.Size)
}

// GrowthReport is the outcome of MeasureGrowth
type GrowthReport struct {
	InitialCapacity int
	Samples         []GrowthSample
}

// MaxCopiesPerAppend returns the worst amortised cost over all samples
func (r *GrowthReport) MaxCopiesPerAppend() float64 {
	max := 0.0
	for _, s := range r.Samples {
		if c := s.CopiesPerAppend(); c > max {
			max = c
		}
	}
	return max
}

func (r *GrowthReport) String() string {
	lines := make([]string, 0, len(r.Samples)+1)
	lines = append(lines, fmt.Sprintf("growth from capacity %d: size, repeat, reallocations, copied, copies/append, cpu ms",
		r.InitialCapacity))
	for _, s := range r.Samples {
		lines = append(lines, fmt.Sprintf("%d, %d, %d, %d, %.3f, %.3f",
			s.Size, s.Repeat, s.Reallocations, s.Copied, s.CopiesPerAppend(), s.CPUTime))
	}
	return strings.Join(lines, "\n")
}

// MeasureGrowth appends size random values to a fresh array for every size,
// nRepeat times, and records how much copying the growth policy caused.
// A nil allocator means the Go heap.
func MeasureGrowth(nRepeat int, sizes []int, initialCapacity int, allocator array.Allocator) *GrowthReport {
	if allocator == nil {
		allocator = array.HeapAllocator{}
	}
	report := &GrowthReport{InitialCapacity: initialCapacity}

	m := NewMonitor()
	for _, size := range sizes {
		for k := 0; k < nRepeat; k++ {
			log.Debug().Int("size", size).Int("repeat", k).Int("total", nRepeat).Msg("simulating growth")

			values := simulGetRandomValues(size)
			counter := &countingAllocator{inner: allocator}
			config := array.DefaultConfig()
			config.Allocator = counter

			m.Reset()
			a := array.NewArray("growth", initialCapacity, config)
			for _, v := range values {
				a.Append(v)
			}
			elapsed := m.Record()

			if a.Len() != size {
				panic("array lost values while growing")
			}
			if err := a.Close(); err != nil {
				panic(err.Error())
			}

			report.Samples = append(report.Samples, GrowthSample{
				Size:          size,
				Repeat:        k,
				Reallocations: counter.reallocations,
				Copied:        counter.copied,
				CPUTime:       elapsed,
			})
		}
	}
	return report
}

// MeasureCopyVsMove times Copy and Move of arrays holding size values.
// A nil allocator means the Go heap.
func MeasureCopyVsMove(nRepeat int, sizes []int, allocator array.Allocator) (copies, moves *Results) {
	if allocator == nil {
		allocator = array.HeapAllocator{}
	}
	copies, moves = new(Results), new(Results)
	config := array.DefaultConfig()
	config.Allocator = allocator

	m := NewMonitor()
	for _, size := range sizes {
		for k := 0; k < nRepeat; k++ {
			log.Debug().Int("size", size).Int("repeat", k).Int("total", nRepeat).Msg("simulating copy and move")

			a := array.NewArray("source", size, config)
			for _, v := range simulGetRandomValues(size) {
				a.Append(v)
			}

			m.Reset()
			b := array.Copy(a)
			copies.add(size, k, nRepeat, m.Record())

			m.Reset()
			c := array.Move(a)
			moves.add(size, k, nRepeat, m.Record())

			if b.Len() != size || c.Len() != size || a.Len() != 0 {
				panic("copy or move did not preserve the values")
			}
			for _, x := range []*array.Array{a, b, c} {
				if err := x.Close(); err != nil {
					panic(err.Error())
				}
			}
		}
	}
	return copies, moves
}

func simulGetRandomValues(length int) []int {
	stream := random.New()
	mod := big.NewInt(simulationValueRange)
	values := make([]int, length)
	for i := range values {
		values[i] = int(random.Int(mod, stream).Int64())
	}
	return values
}
