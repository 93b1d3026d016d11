package relation

import (
	"fmt"
	"strings"
)

// formatIndex renders one side as {key:[partner ...] ...} for plain relations, or {key:{partner:value ...} ...} for value relations.
func formatIndex[K, P comparable, V any](x *index[K, P, V]) string {
	var buf strings.Builder
	buf.WriteByte('{')
	first := true
	for key, b := range x.buckets.All() {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&buf, "%v:", key)
		writeBucket(&buf, b)
	}
	buf.WriteByte('}')
	return buf.String()
}

func formatBucket[K, P comparable, V any](b *bucket[K, P, V]) string {
	var buf strings.Builder
	writeBucket(&buf, b)
	return buf.String()
}

func writeBucket[K, P comparable, V any](buf *strings.Builder, b *bucket[K, P, V]) {
	begin, end := byte('['), byte(']')
	if b.index.shared.valued {
		begin, end = '{', '}'
	}
	buf.WriteByte(begin)
	first := true
	for partner, val := range b.items.All() {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		if b.index.shared.valued {
			fmt.Fprintf(buf, "%v:%v", partner, val)
		} else {
			fmt.Fprintf(buf, "%v", partner)
		}
	}
	buf.WriteByte(end)
}
