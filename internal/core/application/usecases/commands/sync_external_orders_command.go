package commands

import (
	"errors"
	"fmt"

	"wms/internal/core/ports"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	ErrSyncExternalOrdersCommandIsNotConstructed = errors.New(
		"SyncExternalOrdersCommand must be created via NewSyncExternalOrdersCommand constructor",
	)
)

// SyncExternalOrdersCommand carries one reconciliation batch of open external
// sales orders, plus the shared secret presented by the caller.
type SyncExternalOrdersCommand struct { //nolint:recvcheck //using for validation
	sharedSecret string
	orders       []ports.SapOrder

	guard guard.ConstructorGuard
}

// NewSyncExternalOrdersCommand creates a reconciliation command.
// An empty batch is valid and reconciles nothing.
//
// Every record must carry a positive DocEntry. The document entry is the
// primary match key of the merge; letting a zero value through would store it
// and make every later zero-entry record match that same unrelated order.
func NewSyncExternalOrdersCommand(sharedSecret string, orders []ports.SapOrder) (SyncExternalOrdersCommand, error) {
	for _, o := range orders {
		if o.DocEntry <= 0 {
			return SyncExternalOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("docEntry",
				fmt.Errorf("external order with DocNum %d has DocEntry %d", o.DocNum, o.DocEntry))
		}
	}

	return SyncExternalOrdersCommand{
		sharedSecret: sharedSecret,
		orders:       append([]ports.SapOrder(nil), orders...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncExternalOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSyncExternalOrdersCommandIsNotConstructed)
}

// SharedSecret returns the secret presented by the caller.
func (c SyncExternalOrdersCommand) SharedSecret() string {
	return c.sharedSecret
}

// Orders returns the batch to reconcile.
func (c SyncExternalOrdersCommand) Orders() []ports.SapOrder {
	return append([]ports.SapOrder(nil), c.orders...)
}
