// Package idempotency holds the stored outcome of an idempotent operation.
package idempotency

import (
	"encoding/json"
	"time"

	"wms/internal/pkg/errs"
)

// Record is the durable outcome of one idempotent operation, keyed by
// (scope, key). The request hash detects key reuse with a different payload;
// the response snapshot is what a replay returns verbatim.
type Record struct {
	scope            string
	key              string
	requestHash      string
	responseSnapshot json.RawMessage
	createdAt        time.Time

	isConstructed bool
}

// NewRecord creates a record for a freshly executed operation.
func NewRecord(scope, key, requestHash string, responseSnapshot json.RawMessage, createdAt time.Time) (*Record, error) {
	if scope == "" {
		return nil, errs.NewValueIsRequiredError("scope")
	}
	if key == "" {
		return nil, errs.NewValueIsRequiredError("key")
	}
	if requestHash == "" {
		return nil, errs.NewValueIsRequiredError("requestHash")
	}

	return &Record{
		scope:            scope,
		key:              key,
		requestHash:      requestHash,
		responseSnapshot: responseSnapshot,
		createdAt:        createdAt,
		isConstructed:    true,
	}, nil
}

// RestoreRecord rebuilds a record from persistence.
func RestoreRecord(scope, key, requestHash string, responseSnapshot json.RawMessage, createdAt time.Time) (*Record, error) {
	return NewRecord(scope, key, requestHash, responseSnapshot, createdAt)
}

// Scope returns the operation namespace, for example ORDER_CREATE.
func (r *Record) Scope() string { return r.scope }

// Key returns the caller-supplied idempotency key.
func (r *Record) Key() string { return r.key }

// RequestHash returns the canonical hash of the original request payload.
func (r *Record) RequestHash() string { return r.requestHash }

// ResponseSnapshot returns the stored response body for replays.
func (r *Record) ResponseSnapshot() json.RawMessage { return r.responseSnapshot }

// CreatedAt returns when the original operation executed.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// MatchesRequest reports whether a retry carries the same payload as the
// original request. A mismatch means key reuse, which must be rejected.
func (r *Record) MatchesRequest(requestHash string) bool {
	return r.requestHash == requestHash
}
