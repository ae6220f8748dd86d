// Package launch runs a kernel body once per logical thread, the way an
// accelerator evaluates the same function over many threads.
//
// A launch is described by a Grid of Blocks x Threads. Blocks are handed to
// a bounded pool of goroutines; the threads of one block run sequentially on
// the goroutine that claimed it. No ordering between threads is guaranteed,
// so bodies that touch overlapping data must partition it themselves,
// typically by Thread.Global.
//
//	err := launch.Launch(ctx, launch.Grid{Blocks: 4, Threads: 256}, func(th launch.Thread) {
//		if th.Global < seq.Len() {
//			seq.Set(th.Global, seq.At(th.Global)*2)
//		}
//	})
package launch
