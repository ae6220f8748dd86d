// Package view provides non-owning sequence and matrix views over memory
// addressed by an address strategy.
//
// A view is a small value: an address strategy plus shape. It never
// allocates, frees or resizes the storage it describes. Views may alias; a
// write through one view is visible through every other view of the same
// storage, exactly as with raw pointers. Nothing in this package locks,
// fences or orders concurrent access.
//
// # Kinds
//
//   - Sequence: length elements reached through any address strategy.
//   - Fixed: a contiguous sequence whose length is part of its type.
//   - ContiguousSequence: a Sequence over a plain address that hands out
//     contiguous iterators.
//   - Matrix: a Sequence split into rows. Rows reuse the parent's strategy;
//     columns use a striding strategy over it.
//   - RowMatrix: a Matrix whose rows are each contiguous, so rows are
//     ContiguousSequence values and At indexes directly.
//
// # Indexing
//
// Indexing is unchecked. Reading or writing past Len, or building a matrix
// whose length is not a multiple of its row count, is undefined. Owners that
// want validation call CheckShape before constructing a matrix.
//
// # Swap
//
// Swap has two implementations chosen at compile time. The host build
// (default) exchanges the views' address and shape fields. The device build
// (-tags device) exchanges the elements themselves through iterators,
// because parallel threads each hold their own copy of the view fields.
// Either way, after a.Swap(&b) reading a yields what b held before.
package view
