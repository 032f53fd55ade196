// Package order contains the Order aggregate: the order itself, its item
// lines, and its append-only event history. The aggregate is loaded and
// persisted as a single unit; status transitions happen only through
// ApplyEvent against an injected state machine definition, and item lines
// are replaceable only through the reconciliation path while the definition
// still marks the current status as items-mutable.
package order
