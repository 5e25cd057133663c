package array

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.dedis.ch/kyber/v3/util/random"
)

func TestNew(t *testing.T) {
	a := New("arr")
	defer a.Close()

	require.Equal(t, "arr", a.Label())
	require.Equal(t, 0, a.Len())
	require.Equal(t, DefaultCapacity, a.Cap())
}

func TestAppendGrows(t *testing.T) {
	a := NewArray("arr", 2, nil)
	defer a.Close()

	a.Append(10)
	a.Append(20)
	require.Equal(t, 2, a.Cap())

	a.Append(30)
	require.GreaterOrEqual(t, a.Cap(), 3)
	require.Equal(t, 3, a.Len())
	require.Equal(t, []int{10, 20, 30}, a.Values())
}

func TestAppendFromZeroCapacity(t *testing.T) {
	a := NewArray("empty", 0, nil)
	defer a.Close()

	require.Equal(t, 0, a.Cap())
	a.Append(7)
	require.Equal(t, 1, a.Cap())
	require.Equal(t, 1, a.Len())

	v, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestAppendPreservesContent(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 10} {
		values := randomValues(200)
		a := NewArray("arr", capacity, nil)

		previousCap := a.Cap()
		for i, v := range values {
			a.Append(v)
			require.GreaterOrEqual(t, a.Cap(), previousCap)
			previousCap = a.Cap()

			require.Equal(t, i+1, a.Len())
			require.LessOrEqual(t, a.Len(), a.Cap())
		}
		for i, v := range values {
			got, err := a.Get(i)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		require.NoError(t, a.Close())
	}
}

func TestGetOutOfRange(t *testing.T) {
	a := New("arr")
	defer a.Close()

	_, err := a.Get(0)
	require.True(t, errors.Is(err, ErrOutOfRange))

	a.Append(1)
	a.Append(2)
	for _, index := range []int{-1, 2, 3, 100} {
		_, err := a.Get(index)
		require.ErrorIs(t, err, ErrOutOfRange)

		var rangeErr *RangeError
		require.True(t, errors.As(err, &rangeErr))
		require.Equal(t, index, rangeErr.Index)
		require.Equal(t, 2, rangeErr.Length)
	}

	// a failed read changes nothing
	require.Equal(t, []int{1, 2}, a.Values())
}

func TestValuesDoesNotAlias(t *testing.T) {
	a := New("arr")
	defer a.Close()
	a.Append(1)

	values := a.Values()
	values[0] = 42

	v, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestGrowthFactor(t *testing.T) {
	config := DefaultConfig()
	config.GrowthFactor = 3
	a := NewArray("arr", 2, config)
	defer a.Close()

	for i := 0; i < 3; i++ {
		a.Append(i)
	}
	require.Equal(t, 6, a.Cap())
}

func TestNextCapacity(t *testing.T) {
	require.Equal(t, 1, nextCapacity(0, 2))
	require.Equal(t, 2, nextCapacity(1, 2))
	require.Equal(t, 20, nextCapacity(10, 2))
	require.Equal(t, 20, nextCapacity(10, 0))
	require.Equal(t, 1, nextCapacity(0, 5))
	require.Equal(t, 15, nextCapacity(5, 3))
}

func TestLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	config := DefaultConfig()
	config.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	a := NewArray("logged", 1, config)
	a.Append(1)
	a.Append(2)
	b := Copy(a)
	c := Move(b)
	require.NoError(t, a.Close())
	require.NoError(t, b.Close())
	require.NoError(t, c.Close())

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, `"message":"constructed"`))
	require.Equal(t, 1, strings.Count(out, `"message":"resized"`))
	require.Equal(t, 1, strings.Count(out, `"message":"copied"`))
	require.Equal(t, 1, strings.Count(out, `"message":"moved"`))
	// b was moved from, so only a and c release storage
	require.Equal(t, 2, strings.Count(out, `"message":"destroyed"`))
	require.Contains(t, out, `"label":"logged_copy_moved"`)
}

// randomValues draws n integers from a kyber random stream
func randomValues(n int) []int {
	stream := random.New()
	mod := big.NewInt(1 << 30)
	values := make([]int, n)
	for i := range values {
		values[i] = int(random.Int(mod, stream).Int64())
	}
	return values
}

func TestZeroValueArray(t *testing.T) {
	a := &Array{}

	_, err := a.Get(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, 0, a.Len())
	require.Equal(t, 0, a.Cap())
	require.Contains(t, a.VisualRepresentation(false), "Storage: none (inert)")

	a.Append(1)
	a.Append(2)
	require.Equal(t, []int{1, 2}, a.Values())
	require.Equal(t, 2, a.Cap())

	b := Copy(a)
	defer b.Close()
	require.Equal(t, []int{1, 2}, b.Values())

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestConfigWithoutAllocator(t *testing.T) {
	a := NewArray("bare", 2, &Config{})
	defer a.Close()

	for i := 0; i < 5; i++ {
		a.Append(i)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, a.Values())
}
