package ptrarray

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-ptrarray/ptrarray/log"
	"github.com/LerianStudio/lib-ptrarray/ptrarray/telemetry"
)

// ErrNilPointer is returned when an operation would register ownership of a
// nil element.
var ErrNilPointer = errors.New("nil pointer")

// ErrIndexOutOfBounds is returned by bounds-checked access when an index is
// outside [0, Len()).
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// noCopy triggers go vet's copylocks check when embedded in a struct that
// must not be copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array is an ordered sequence of exclusively-owned heap elements.
//
// The zero value is NOT ready to use; construct arrays with New. Array is
// move-only: transfer contents with Move or MoveFrom, never by value copy.
type Array[T any] struct {
	noCopy noCopy //nolint:unused // vet guard, never read

	elements []*T
	finalize func(*T)
	logger   log.Logger
	recorder *telemetry.Recorder
}

// Option configures an Array at construction time.
type Option[T any] func(*Array[T])

// WithCapacity pre-reserves backing storage for n elements. The logical
// size stays zero.
func WithCapacity[T any](n int) Option[T] {
	return func(arr *Array[T]) {
		if n > 0 {
			arr.elements = make([]*T, 0, n)
		}
	}
}

// WithFinalizer registers fn to run exactly once per element when the array
// releases ownership (Clear, Close, or move-assignment overwrite).
func WithFinalizer[T any](fn func(*T)) Option[T] {
	return func(arr *Array[T]) {
		arr.finalize = fn
	}
}

// WithLogger enables debug logging of lifecycle events.
func WithLogger[T any](logger log.Logger) Option[T] {
	return func(arr *Array[T]) {
		if logger != nil {
			arr.logger = logger
		}
	}
}

// WithTelemetry records lifecycle metrics on recorder. A nil recorder
// leaves telemetry disabled.
func WithTelemetry[T any](recorder *telemetry.Recorder) Option[T] {
	return func(arr *Array[T]) {
		arr.recorder = recorder
	}
}

// New creates an empty array.
//
// Example:
//
//	arr := ptrarray.New(ptrarray.WithCapacity[widget](8))
//	defer arr.Close()
func New[T any](opts ...Option[T]) *Array[T] {
	arr := &Array[T]{logger: log.NewNop()}

	for _, opt := range opts {
		opt(arr)
	}

	return arr
}

// Add transfers ownership of an already-allocated element into the array,
// appending it at the end. The array allocates nothing on this path.
//
// Returns an error wrapping ErrNilPointer when ptr is nil; the array is
// left unchanged.
func (arr *Array[T]) Add(ptr *T) error {
	if ptr == nil {
		return fmt.Errorf("%w: cannot take ownership of a nil element", ErrNilPointer)
	}

	arr.elements = append(arr.elements, ptr)
	arr.recorder.ElementAdded()

	return nil
}

// Emplace allocates a new element holding value, appends it, and returns
// the owned element. The returned pointer stays valid until the array
// releases it.
func (arr *Array[T]) Emplace(value T) *T {
	ptr := &value
	arr.elements = append(arr.elements, ptr)
	arr.recorder.ElementEmplaced()

	return ptr
}

// EmplaceFunc runs construct and appends its result, coupling construction
// and insertion into one step: when construct fails, nothing is appended
// and the array owns nothing from the attempt.
//
// A nil construct function or a nil constructed element is rejected with an
// error wrapping ErrNilPointer.
func (arr *Array[T]) EmplaceFunc(construct func() (*T, error)) (*T, error) {
	if construct == nil {
		return nil, fmt.Errorf("%w: construct function", ErrNilPointer)
	}

	ptr, err := construct()
	if err != nil {
		return nil, fmt.Errorf("construct element: %w", err)
	}

	if ptr == nil {
		return nil, fmt.Errorf("%w: constructor produced no element", ErrNilPointer)
	}

	arr.elements = append(arr.elements, ptr)
	arr.recorder.ElementEmplaced()

	return ptr, nil
}

// At returns the element at index. The returned pointer aliases the owned
// element, so mutations through it are visible to later reads; ownership
// stays with the array.
//
// Returns an error wrapping ErrIndexOutOfBounds, carrying the requested
// index and the current size, when index is outside [0, Len()).
func (arr *Array[T]) At(index int) (*T, error) {
	if index < 0 || index >= len(arr.elements) {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, len(arr.elements))
	}

	return arr.elements[index], nil
}

// Value returns a copy of the element at index. Same error contract as At.
func (arr *Array[T]) Value(index int) (T, error) {
	ptr, err := arr.At(index)
	if err != nil {
		var zero T

		return zero, err
	}

	return *ptr, nil
}

// Get is the non-erroring lookup: it returns the element at index, or nil
// when index is outside [0, Len()). Callers that need the failure surfaced
// should use At instead.
func (arr *Array[T]) Get(index int) *T {
	if index < 0 || index >= len(arr.elements) {
		return nil
	}

	return arr.elements[index]
}

// Len returns the current element count.
func (arr *Array[T]) Len() int {
	return len(arr.elements)
}

// IsEmpty reports whether the array owns no elements.
func (arr *Array[T]) IsEmpty() bool {
	return len(arr.elements) == 0
}

// Clear releases every owned element exactly once and resets the logical
// size to zero. Backing capacity is retained. Clearing an empty array is a
// no-op.
func (arr *Array[T]) Clear() {
	released := len(arr.elements)
	if released == 0 {
		return
	}

	if arr.finalize != nil {
		for _, ptr := range arr.elements {
			arr.finalize(ptr)
		}
	}

	// Drop the references so released elements become collectable even
	// while the backing slice is retained for reuse.
	clear(arr.elements)
	arr.elements = arr.elements[:0]

	arr.recorder.ElementsReleased(released)

	if arr.logger.Enabled(log.LevelDebug) {
		arr.logger.Log(context.Background(), log.LevelDebug, "released owned elements",
			log.Int("count", released))
	}
}

// Close releases all owned elements. It implements io.Closer so arrays can
// be scheduled for cleanup with defer; the returned error is always nil.
func (arr *Array[T]) Close() error {
	arr.Clear()

	return nil
}

// Move transfers the entire backing sequence into a freshly constructed
// array, preserving element identities and order. The receiver stays valid
// and empty, and releases nothing for the moved elements. Options
// (finalizer, logger, telemetry) carry over to the destination.
func (arr *Array[T]) Move() *Array[T] {
	dst := &Array[T]{
		elements: arr.elements,
		finalize: arr.finalize,
		logger:   arr.logger,
		recorder: arr.recorder,
	}

	arr.elements = nil

	return dst
}

// MoveFrom releases the receiver's current elements, then takes ownership
// of src's entire backing sequence. The finalizer travels with the
// elements: the receiver adopts src's finalizer so the moved elements are
// released the way their origin prescribed. src stays valid and empty.
// Self-moves and nil sources are no-ops.
func (arr *Array[T]) MoveFrom(src *Array[T]) {
	if src == nil || src == arr {
		return
	}

	arr.Clear()

	arr.elements = src.elements
	arr.finalize = src.finalize
	src.elements = nil
}
