// Package ledger is the booking ledger engine: the status state machine, the
// per-booking billing figures and the portfolio folds built on top of them.
//
// Every function here is pure. Records go in, new records or derived values
// come out, and side effects are returned as Intents for the caller to run.
package ledger
