package dynarray

// Container is the public contract of a growable integer array that owns
// its storage and releases it explicitly.
type Container interface {
	Append(value int)

	Get(
		index int,
	) (int, error)

	Len() int

	Cap() int

	Label() string

	Render() string

	VisualRepresentation(withBoundaries bool) string

	Close() error
}
