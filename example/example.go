package main

import (
	"errors"
	"fmt"
	"os"

	"dynarray"
	"dynarray/array"
	simul "dynarray/simulation"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type args struct {
	Capacity int    `arg:"--capacity" default:"5" help:"initial capacity of the demonstration arrays"`
	Values   string `arg:"--values" help:"JSON array of integers to seed an extra array with, e.g. '[1,2,3]'"`
	Manual   bool   `arg:"--manual" help:"allocate storage outside the Go heap"`
	Quiet    bool   `arg:"-q,--quiet" help:"do not log lifecycle events"`
	Simulate bool   `arg:"--simulate" help:"measure growth and copy/move cost"`
}

func (args) Description() string {
	return "Walks a growable integer array through construction, destruction, copy and move."
}

func main() {
	var a args
	arg.MustParse(&a)

	level := zerolog.DebugLevel
	if a.Quiet {
		level = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	config := array.DefaultConfig()
	config.Logger = log.Logger
	if a.Manual {
		allocator := array.NewManualAllocator()
		defer func() {
			if err := allocator.Close(); err != nil {
				log.Error().Err(err).Msg("closing allocator")
			}
		}()
		config.Allocator = allocator
	}

	demonstrateConstructor(config, a.Capacity)
	demonstrateDestructor(config, a.Capacity)
	demonstrateCopy(config, a.Capacity)
	demonstrateMove(config, a.Capacity)
	demonstrateAssignment(config, a.Capacity)
	if err := demonstrateEncapsulation(config, a.Capacity); err != nil {
		log.Error().Err(err).Msg("encapsulation")
	}

	if a.Values != "" {
		section("SEEDED ARRAY")
		seeded, err := array.FromJSON("seeded", []byte(a.Values), config)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding array")
		}
		describe(seeded)
		closeArray(seeded)
	}

	if a.Simulate {
		section("SIMULATION")
		report := simul.MeasureGrowth(3, []int{10, 100, 1000, 10000}, a.Capacity, config.Allocator)
		fmt.Println(report)
		copies, moves := simul.MeasureCopyVsMove(3, []int{10, 1000, 100000}, config.Allocator)
		fmt.Println("copy:", copies)
		fmt.Println("move:", moves)
	}

	section("DONE")
}

func demonstrateConstructor(config *array.Config, capacity int) {
	section("CONSTRUCTOR")
	arr1 := array.NewArray("arr1", capacity, config)
	defer closeArray(arr1)

	arr1.Append(10)
	arr1.Append(20)
	arr1.Append(30)
	fmt.Println(arr1)
}

func demonstrateDestructor(config *array.Config, capacity int) {
	section("DESTRUCTOR")
	func() {
		arr2 := array.NewArray("arr2_local", capacity, config)
		defer closeArray(arr2)

		arr2.Append(1)
		arr2.Append(2)
		fmt.Println(arr2)
		fmt.Println("-> leaving the scope releases arr2's storage")
	}()
	fmt.Println("-> arr2 is gone")
}

func demonstrateCopy(config *array.Config, capacity int) {
	section("COPY")
	original := array.NewArray("original", capacity, config)
	defer closeArray(original)
	original.Append(10)
	original.Append(20)
	original.Append(30)
	fmt.Println(original)

	copied := array.Copy(original)
	defer closeArray(copied)
	fmt.Println(copied)

	fmt.Println("-> appending 99 to the copy")
	copied.Append(99)
	fmt.Println(original)
	fmt.Println(copied)
	fmt.Println("-> the original is untouched, each array owns its storage")
}

// Builds an array in a local scope and hands its storage to the caller
func createTempArray(label string, config *array.Config) *array.Array {
	temp := array.NewArray(label, 5, config)
	defer closeArray(temp)

	temp.Append(100)
	temp.Append(200)
	return array.Move(temp)
}

func demonstrateMove(config *array.Config, capacity int) {
	section("MOVE")
	moved := createTempArray("temp", config)
	defer closeArray(moved)
	fmt.Println(moved)

	arr3 := array.NewArray("arr3", capacity, config)
	defer closeArray(arr3)
	arr3.Append(111)
	arr3.Append(222)
	fmt.Println(arr3)

	arr4 := array.Move(arr3)
	defer closeArray(arr4)
	fmt.Println(arr4)
	fmt.Println(arr3)
	fmt.Println("-> arr3 is inert, its storage now belongs to arr4")
}

func demonstrateAssignment(config *array.Config, capacity int) {
	section("ASSIGNMENT")
	source := array.NewArray("source", capacity, config)
	defer closeArray(source)
	source.Append(7)
	source.Append(8)

	target := array.NewArray("target", capacity, config)
	defer closeArray(target)
	target.Append(1)

	target.AssignCopy(source)
	fmt.Println(target)

	target.AssignMove(source)
	fmt.Println(target)
	fmt.Println(source)

	target.AssignMove(target)
	fmt.Println(target)
}

func demonstrateEncapsulation(config *array.Config, capacity int) error {
	section("ENCAPSULATION")
	arr := array.NewArray("arr_encapsulation", capacity, config)
	defer closeArray(arr)

	arr.Append(5)
	arr.Append(10)
	arr.Append(15)

	v, err := arr.Get(1)
	if err != nil {
		return err
	}
	fmt.Printf("  Get(1) = %d, Len() = %d, Cap() = %d\n", v, arr.Len(), arr.Cap())

	_, err = arr.Get(arr.Len())
	if !errors.Is(err, array.ErrOutOfRange) {
		return fmt.Errorf("reading past the end: expected out of range, got %v", err)
	}
	fmt.Printf("  Get(%d) failed: %v\n", arr.Len(), err)

	describe(arr)
	return nil
}

func describe(c dynarray.Container) {
	fmt.Println(c.VisualRepresentation(true))
}

func closeArray(a *array.Array) {
	if err := a.Close(); err != nil {
		log.Error().Err(err).Str("label", a.Label()).Msg("releasing storage")
	}
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
