package relation

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrIllegalState           = errors.New("illegal state")
	ErrDetached               = fmt.Errorf("%w: partners detached from relation", ErrIllegalState)
	ErrReadOnly               = fmt.Errorf("read-only relation: %w", errors.ErrUnsupported)
	ErrConcurrentModification = errors.New("relation modified during iteration")
	ErrCorrupted              = errors.New("relation indices out of sync")
)

// OpError describes an operation that was rejected before it could modify a relation.
// Rejected operations panic with an *OpError, so recovered values may be matched with [errors.Is] against the sentinel errors of this package.
type OpError struct {
	Op  string // Op is the name of the rejected operation.
	Key any    // Key is the key the operation was addressed to, if there is one.
	Err error
}

func (e *OpError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("relation: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("relation: %s(%v): %v", e.Op, e.Key, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func reject(op string, key any, err error) {
	panic(&OpError{Op: op, Key: key, Err: err})
}

// canBeNil reports whether values of T have a nil state that must be screened at the API boundary.
func canBeNil[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
