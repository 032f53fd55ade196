package commands_test

import (
	"testing"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/statemachine"

	"github.com/stretchr/testify/require"
)

func testDefinition(t *testing.T) *statemachine.Definition {
	t.Helper()
	def, err := statemachine.NewDefinition(statemachine.Document{
		InitialState: "A",
		FinalStates:  []string{"C"},
		Transitions: []statemachine.Transition{
			{From: "A", EventType: "START", To: "B"},
			{From: "B", EventType: "FINISH", To: "C"},
		},
	})
	require.NoError(t, err)
	return def
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("X1", 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testActor(t *testing.T) order.Actor {
	t.Helper()
	actor, err := order.NewActor(order.ActorKindUser, "picker-1")
	require.NoError(t, err)
	return actor
}

func restoredOrder(t *testing.T, status string, version int) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "7001", "CUST-1", status, version,
		testItems(t), now, now, order.SapSnapshot{}, nil,
	)
	require.NoError(t, err)
	return o
}
