/*
Package relation provides a bidirectional many-to-many relation between two sets of keys.

A relation is indexed from both sides. Every left key maps to the right keys it's associated with, and every right key maps back to its left keys.
The two indices are kept in sync by every operation, so a lookup from either side costs the same.

[Mappings] stores plain associations. [ValueMappings] also stores a value with each association, and keeps that value identical on both sides.

# Containers

Each side of a relation is configured with a [Factory], which decides the container used for everything keyed by that side.
[Hash] uses built-in maps, while [Ordered] and [OrderedFunc] use red-black trees that iterate in key order.

	m := relation.NewWith(relation.Ordered[string](), relation.Hash[int]())

# Views and partners

[Mappings.LeftView] and [Mappings.RightView] project one side of the relation as a map from key to partners.
The [PartnerSet] and [PartnerMap] values obtained from views are live, and writes through them are mirrored like any other write.

A key exists on a side only while it has partners. When a key loses its last partner it's removed, and any [PartnerSet] or [PartnerMap] held for it is detached.
Detached partners panic with [ErrDetached] on writes.

# Errors

Operations that are called incorrectly panic with an [*OpError], rather than returning an error.
That includes nil keys or values, writes to detached partners, writes through a read-only relation, and structural changes during iteration.
Recovered values can be matched with [errors.Is] against [ErrInvalidArgument], [ErrIllegalState], [ErrDetached], [ErrReadOnly], and [ErrConcurrentModification].
No relation state is changed by a rejected operation.
*/
package relation
