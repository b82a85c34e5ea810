package sorting

// Sequence is a mutable, indexable collection with a known length. Its length
// must not change while a sort is running.
type Sequence[T any] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Swap(i, j int)
}

// Buffer is a fixed-size view over caller memory. Sorting a Buffer rearranges
// the backing array directly; the Buffer itself can never grow or shrink.
//
//	var readings [8]float64
//	sorting.InsertionSort[float64](sorting.NewBuffer(readings[:]), sorting.Descending)
type Buffer[T any] struct {
	data []T
}

var _ Sequence[int] = Buffer[int]{}

// NewBuffer returns a Buffer viewing data. No copy is made.
func NewBuffer[T any](data []T) Buffer[T] {
	return Buffer[T]{data: data}
}

func (b Buffer[T]) Len() int { return len(b.data) }

func (b Buffer[T]) At(i int) T { return b.data[i] } //nolint:ireturn

func (b Buffer[T]) Set(i int, v T) { b.data[i] = v }

func (b Buffer[T]) Swap(i, j int) { b.data[i], b.data[j] = b.data[j], b.data[i] }

// Values returns the viewed memory.
func (b Buffer[T]) Values() []T {
	return b.data
}

// Vector is a resizable sequence that owns its elements. It may be grown or
// truncated between sort calls.
type Vector[T any] struct {
	data []T
}

var _ Sequence[int] = (*Vector[int])(nil)

// NewVector returns a Vector holding a copy of values.
func NewVector[T any](values ...T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{data: data}
}

// NewVectorWithCapacity returns an empty Vector that can hold capacity
// elements before reallocating.
func NewVectorWithCapacity[T any](capacity int) *Vector[T] {
	return &Vector[T]{data: make([]T, 0, capacity)}
}

func (v *Vector[T]) Len() int { return len(v.data) }

func (v *Vector[T]) At(i int) T { return v.data[i] } //nolint:ireturn

func (v *Vector[T]) Set(i int, val T) { v.data[i] = val }

func (v *Vector[T]) Swap(i, j int) { v.data[i], v.data[j] = v.data[j], v.data[i] }

// Cap returns the number of elements the Vector can hold without reallocating.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// Append adds values to the end of the Vector.
func (v *Vector[T]) Append(values ...T) {
	v.data = append(v.data, values...)
}

// Truncate shortens the Vector to n elements. It is a no-op when n is not
// smaller than the current length, and clears the Vector when n <= 0.
func (v *Vector[T]) Truncate(n int) {
	if n >= len(v.data) {
		return
	}

	clear(v.data[max(n, 0):])
	v.data = v.data[:max(n, 0)]
}

// Values returns the elements. The slice aliases the Vector's storage until
// the next Append.
func (v *Vector[T]) Values() []T {
	return v.data
}

// Clone copies the elements of any Sequence into a new Vector.
func Clone[T any](seq Sequence[T]) *Vector[T] {
	out := NewVectorWithCapacity[T](seq.Len())

	for i := range seq.Len() {
		out.data = append(out.data, seq.At(i))
	}

	return out
}
