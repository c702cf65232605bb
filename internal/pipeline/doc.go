// Package pipeline composes the binarization run: decode the input bitmap,
// drive the threshold operator with the configured concurrency strategy, and
// encode the result.
//
// All configuration travels in an Options value constructed once at startup;
// there is no package-level state. The grid is owned by exactly one stage at
// a time: the codec produces it, the executor mutates it in place, and the
// codec consumes it for the single encode. The one deliberate exception is
// the legacy process strategy, where child processes write the output file
// themselves and the parent encodes nothing.
//
// Worker is the entry point executed inside a spawned child process; it is
// reached through the hidden worker command of the CLI and never called in
// the parent.
package pipeline
