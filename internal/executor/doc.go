// Package executor drives the threshold operator over a pixel grid using one
// of three interchangeable concurrency strategies.
//
// # Strategies
//
// StrategyLoop distributes the collapsed (row, col) index space across a
// persistent worker pool sized to the available parallelism. There are no
// explicit partition objects; the pool's work distribution is the contract.
//
// StrategyThreads computes explicit row partitions and spawns one goroutine
// per partition. All goroutines share the one grid, but each receives a
// sub-slice covering only its own rows, so the absence of overlap is
// enforced by construction rather than by documentation. The call does not
// return until every goroutine has finished.
//
// StrategyProcesses spawns one child process per partition by re-executing
// this binary with a hidden worker command. Each child decodes its own
// private copy of the input file and thresholds only its assigned rows. In
// the default gather design the child streams its processed rows back over
// stdout and the parent patches them into a single grid for one encode. In
// legacy mode every child instead re-encodes its entire private grid to the
// shared output path and the parent only waits; the file content is then
// whichever child wrote last, and the strategy is excluded from the
// byte-identical-output guarantee the other two carry.
//
// Given the same grid and cutoff, StrategyLoop, StrategyThreads, and the
// default gather form of StrategyProcesses produce identical results.
//
// # Failure model
//
// Goroutines cannot fail to spawn, so only the process strategy can report
// ErrSpawn. No strategy has timeouts or cancellation of its own beyond the
// context passed to process spawning; a stuck worker blocks the pipeline.
package executor
