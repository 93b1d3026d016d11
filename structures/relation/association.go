package relation

import (
	"fmt"
	"log/slog"
)

// Association is a single link between a left key and a right key.
// Plain relations use struct{} as the value type, so associations compare equal on Left and Right alone.
type Association[L, R comparable, V any] struct {
	Left  L
	Right R
	Value V
}

// Inverse swaps Left and Right.
func (a Association[L, R, V]) Inverse() Association[R, L, V] {
	return Association[R, L, V]{Left: a.Right, Right: a.Left, Value: a.Value}
}

func (a Association[L, R, V]) plain() bool {
	_, ok := any(a.Value).(struct{})
	return ok
}

func (a Association[L, R, V]) String() string {
	if a.plain() {
		return fmt.Sprintf("(%v, %v)", a.Left, a.Right)
	}
	return fmt.Sprintf("(%v, %v, %v)", a.Left, a.Right, a.Value)
}

func (a Association[L, R, V]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Any("left", a.Left),
		slog.Any("right", a.Right),
	}
	if !a.plain() {
		attrs = append(attrs, slog.Any("value", a.Value))
	}
	return slog.GroupValue(attrs...)
}
