// Package iterator provides random-access iterators over address strategies.
//
// Iter walks any address.Address; Contiguous walks an address.Plain directly
// and is what contiguous views hand out. Reverse wraps either and ReadOnly
// strips write access. All of them satisfy RandomAccess, so generic
// algorithms can be written once against the constraint.
//
// Iterators are values. Advancing returns a new iterator:
//
//	for it := seq.Begin(); !it.Equal(seq.End()); it = it.Next() {
//		*it.Ptr() *= 2
//	}
//
// Inc and Dec are the in-place equivalents.
//
// Equality is defined by the raw element address only. Two iterators taken
// from different views compare equal when they denote the same element.
package iterator
