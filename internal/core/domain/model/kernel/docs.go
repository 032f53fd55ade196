// Package kernel contains shared value objects used across aggregates.
// These types are immutable, validated at construction, and carry no
// behavior beyond what their invariants require.
package kernel
