// Package statemachine holds the declarative order state machine: the set of
// valid statuses, the initial and terminal statuses, and the transition table
// mapping (status, event type) pairs to their successor status.
//
// A Definition is built once during process startup from an external JSON
// document and is immutable afterwards. It is passed by injection to the
// command handlers so tests can substitute alternate definitions; it is never
// exposed as mutable global state.
package statemachine
