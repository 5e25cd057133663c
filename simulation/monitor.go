package simul

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// Monitor measures the CPU time (user + system) the process spends between
// a reset and a record. Values are reported in milliseconds.
type Monitor struct {
	CPUtime float64

	start time.Duration
}

func NewMonitor() *Monitor {
	m := &Monitor{}
	m.Reset()
	return m
}

func (m *Monitor) Reset() {
	m.start = processCPUTime()
	m.CPUtime = milliseconds(m.start)
}

// Record returns the CPU time spent since the last reset
func (m *Monitor) Record() float64 {
	return milliseconds(processCPUTime() - m.start)
}

func (m *Monitor) RecordAndReset() float64 {
	elapsed := m.Record()
	m.Reset()
	return elapsed
}

func processCPUTime() time.Duration {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		log.Fatal().Err(err).Msg("reading process resource usage")
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
