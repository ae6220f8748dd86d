// Package address provides the address strategies that views are built on.
//
// An address strategy is a small value that knows how to compute and
// dereference element addresses inside storage owned by someone else. Views
// and iterators are generic over the strategy type, so every call site
// compiles to direct arithmetic and a load or store; no interface value or
// function pointer sits between a view and its memory.
//
// # Strategies
//
//   - Plain: a base pointer plus an element offset. Consecutive logical
//     elements are consecutive in memory.
//   - Striding: wraps another strategy and advances it by a fixed number of
//     elements per logical step (a matrix column).
//   - Padded: row-contiguous storage whose rows are separated by a pitch that
//     may exceed the row width.
//
// The device package adds a fourth strategy that addresses WebAssembly
// linear memory.
//
// # Read-only addresses
//
// Go has no const qualifier. AsConst wraps any strategy in a Const value that
// only exposes loads; Const.Mutable recovers the original strategy.
//
// # Null addresses
//
// The zero value of every strategy is the null address. Apart from IsNil and
// comparison with another null address, using it is undefined. Views of
// length zero never dereference their address.
//
// # Aliasing
//
// Strategies never own memory. Two strategies may address the same storage
// and writes through one are visible through the other; nothing here
// synchronizes access.
package address
