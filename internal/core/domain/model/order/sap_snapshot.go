package order

// SapSnapshot carries the lightweight external-document fields mirrored onto
// an order by reconciliation. It is an overlay, not lifecycle state: syncing
// a snapshot never records an order event and never touches the status.
type SapSnapshot struct {
	DocEntry   *int64
	DocNum     *int64
	DocStatus  string
	UpdateDate string
	UpdateTime string
}

// HasDocEntry reports whether the snapshot carries the external system's
// immutable document-entry identifier.
func (s SapSnapshot) HasDocEntry() bool {
	return s.DocEntry != nil
}
