package array

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render lists the label, length, capacity and the elements in order
func (a *Array) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Array '%s' [length=%d, capacity=%d]:", a.label, a.length, len(a.data))
	for _, v := range a.data[:a.length] {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

func (a *Array) String() string {
	return a.Render()
}

// detail is one "Name: value" line of VisualRepresentation
type detail struct {
	name  string
	value string
}

func (a *Array) details() []detail {
	storage := "none (inert)"
	if a.storage != nil {
		storage = fmt.Sprintf("%v, %v slots (%v bytes)", a.storage, len(a.data), len(a.data)*ElementSize)
	}
	capacity := len(a.data)

	return []detail{
		{"Label", a.label},
		{"Storage", storage},
		{"Elements", fmt.Sprintf("%v (len %v)", a.data[:a.length], a.length)},
		{"Free slots", strconv.Itoa(capacity - a.length)},
		{"Next growth", fmt.Sprintf("%v -> %v slots", capacity, nextCapacity(capacity, a.settings().GrowthFactor))},
	}
}

// VisualRepresentation returns the internal details of the array, one per
// line, optionally framed in a box.
func (a *Array) VisualRepresentation(withBoundaries bool) string {
	lines := []string{"*** Array Details ***"}
	for _, d := range a.details() {
		lines = append(lines, d.name+": "+d.value)
	}

	if !withBoundaries {
		return strings.Join(lines, "\n")
	}
	return frame(lines)
}

// frame pads every line to the widest one and draws a border around them
func frame(lines []string) string {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	var b strings.Builder
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("_", width+4))
	b.WriteByte('\n')
	for _, line := range lines {
		fmt.Fprintf(&b, "| %-*s |\n", width, line)
	}
	b.WriteString(strings.Repeat("-", width+4))
	b.WriteByte('\n')
	return b.String()
}
