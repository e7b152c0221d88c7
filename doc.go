// package futures provides a Future type which can be used
// to model the result of an ongoing computation which could fail.
//
// Futures are not the idiomatic way to deal with concurrency in Go.
// Go APIs should be synchronous not asynchronous.
// If your API returns a Future: you are doing it wrong.
// That being said, the network *is* asynchronous; futures provide a way to
// build synchronous APIs on top of the asynchronous network.
//
// A Future is completed exactly once, by a single producer calling SetResult
// or SetError, and read any number of times by consumers calling Await or
// attaching callbacks with AddCallback and Then.  Callbacks fire in
// registration order, including callbacks attached after completion.
//
// Futures cannot be cancelled.  The ctx passed to Await cancels that wait,
// nothing else; a consumer which no longer cares simply stops waiting.
// Calling Await on a future which the same goroutine was supposed to
// complete deadlocks; the package cannot detect this.
package futures
