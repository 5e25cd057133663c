package array

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	a := fill(NewArray("arr1", 5, nil), 10, 20, 30)
	defer a.Close()

	require.Equal(t, "Array 'arr1' [length=3, capacity=5]: 10 20 30", a.Render())
	require.Equal(t, a.Render(), a.String())

	empty := New("empty")
	defer empty.Close()
	require.Equal(t, "Array 'empty' [length=0, capacity=10]:", empty.Render())
}

func TestVisualRepresentation(t *testing.T) {
	a := fill(NewArray("arr", 4, nil), 1, 2)
	defer a.Close()

	plain := a.VisualRepresentation(false)
	require.Contains(t, plain, "Label: arr")
	require.Contains(t, plain, "Storage: heap, 4 slots")
	require.Contains(t, plain, "Elements: [1 2] (len 2)")
	require.Contains(t, plain, "Free slots: 2")
	require.Contains(t, plain, "Next growth: 4 -> 8 slots")

	boxed := a.VisualRepresentation(true)
	lines := strings.Split(strings.Trim(boxed, "\n"), "\n")
	// top border, one line per detail, bottom border
	require.Len(t, lines, len(strings.Split(plain, "\n"))+2)
	for _, line := range lines[1 : len(lines)-1] {
		require.True(t, strings.HasPrefix(line, "| "))
	}

	b := Move(a)
	defer b.Close()
	require.Contains(t, a.VisualRepresentation(false), "Storage: none (inert)")
}

func TestFrame(t *testing.T) {
	boxed := frame([]string{"ab", "abcd"})
	require.Equal(t, "\n________\n| ab   |\n| abcd |\n--------\n", boxed)
}
