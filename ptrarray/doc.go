// Package ptrarray provides a move-only array that exclusively owns a set
// of separately heap-allocated elements.
//
// Array[T] holds owning *T references: every slot is non-nil for as long
// as the array owns it, no ownership is ever shared, and each element is
// released exactly once — by Clear, by Close, or when a move assignment
// overwrites the destination's contents. An optional finalizer configured
// with WithFinalizer runs once per element at that moment.
//
// # Access
//
// Two lookup policies coexist deliberately. At and Value are bounds-checked
// and return an error wrapping ErrIndexOutOfBounds that carries both the
// requested index and the current size. Get is the non-erroring variant and
// reports absence with a nil sentinel instead.
//
// # Ownership transfer
//
//	arr := ptrarray.New[widget]()
//	defer arr.Close()
//
//	w := arr.Emplace(widget{Name: "Object 1", Value: 10}) // array allocates and owns
//	err := arr.Add(pointers.New(widget{Name: "Object 2"})) // caller allocates, array takes over
//
// Move and MoveFrom transfer the whole backing sequence; the source stays
// valid and empty. There is no copy API: duplicating owned elements would
// need a cloning policy the container does not define, and the embedded
// noCopy guard makes `go vet` reject value copies of Array.
//
// Array is not goroutine-safe. Callers must guarantee exclusive access
// during mutation and reads.
package ptrarray
