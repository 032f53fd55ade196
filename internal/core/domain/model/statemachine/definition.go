package statemachine

import (
	"encoding/json"
	"fmt"
	"os"

	"wms/internal/pkg/errs"
)

// Transition is one row of the declarative transition table.
type Transition struct {
	From      string `json:"from"`
	EventType string `json:"eventType"`
	To        string `json:"to"`
}

// Document is the external JSON representation of a state machine.
//
// ItemsMutableIn lists the statuses in which reconciliation may still replace
// an order's item lines. When absent it defaults to the initial state, which
// matches the business rule that lines freeze once picking has begun.
type Document struct {
	Name           string       `json:"name"`
	InitialState   string       `json:"initialState"`
	FinalStates    []string     `json:"finalStates"`
	ItemsMutableIn []string     `json:"itemsMutableIn"`
	Transitions    []Transition `json:"transitions"`
}

type transitionKey struct {
	from      string
	eventType string
}

// Definition is the immutable, validated form of a Document.
// All lookups are O(1) map reads and safe for concurrent use.
type Definition struct {
	name         string
	initialState string
	states       map[string]struct{}
	finalStates  map[string]struct{}
	itemsMutable map[string]struct{}
	next         map[transitionKey]string
}

// Load reads and validates a state machine document from a JSON file.
// Any failure here is a fatal startup error, never a runtime condition.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state machine file: %w", err)
	}

	var doc Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse state machine file %s: %w", path, err)
	}

	return NewDefinition(doc)
}

// NewDefinition validates the document and builds the immutable definition.
//
// Rejected documents: empty initial state, empty transition table, duplicate
// (from, eventType) pairs, and initial/final/items-mutable states that do not
// appear anywhere in the transition graph.
func NewDefinition(doc Document) (*Definition, error) {
	if doc.InitialState == "" {
		return nil, errs.NewValueIsRequiredError("initialState")
	}
	if len(doc.Transitions) == 0 {
		return nil, errs.NewValueIsRequiredError("transitions")
	}

	states := make(map[string]struct{}, len(doc.Transitions)*2)
	next := make(map[transitionKey]string, len(doc.Transitions))
	for _, t := range doc.Transitions {
		if t.From == "" || t.EventType == "" || t.To == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("transitions",
				fmt.Errorf("transition %+v has empty fields", t))
		}
		key := transitionKey{from: t.From, eventType: t.EventType}
		if _, dup := next[key]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("transitions",
				fmt.Errorf("duplicate transition for (%s, %s)", t.From, t.EventType))
		}
		next[key] = t.To
		states[t.From] = struct{}{}
		states[t.To] = struct{}{}
	}

	if _, ok := states[doc.InitialState]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("initialState",
			fmt.Errorf("%s does not appear in the transition graph", doc.InitialState))
	}

	finals := make(map[string]struct{}, len(doc.FinalStates))
	for _, s := range doc.FinalStates {
		if _, ok := states[s]; !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("finalStates",
				fmt.Errorf("%s does not appear in the transition graph", s))
		}
		finals[s] = struct{}{}
	}

	mutable := make(map[string]struct{}, len(doc.ItemsMutableIn))
	if len(doc.ItemsMutableIn) == 0 {
		mutable[doc.InitialState] = struct{}{}
	} else {
		for _, s := range doc.ItemsMutableIn {
			if _, ok := states[s]; !ok {
				return nil, errs.NewValueIsInvalidErrorWithCause("itemsMutableIn",
					fmt.Errorf("%s does not appear in the transition graph", s))
			}
			mutable[s] = struct{}{}
		}
	}

	return &Definition{
		name:         doc.Name,
		initialState: doc.InitialState,
		states:       states,
		finalStates:  finals,
		itemsMutable: mutable,
		next:         next,
	}, nil
}

// Name returns the optional document name, used only for logging.
func (d *Definition) Name() string {
	return d.name
}

// InitialState returns the status assigned to newly created orders.
func (d *Definition) InitialState() string {
	return d.initialState
}

// IsFinal reports whether the status is terminal. Orders in a terminal
// status reject all further events.
func (d *Definition) IsFinal(status string) bool {
	_, ok := d.finalStates[status]
	return ok
}

// NextState returns the successor status for (status, eventType), or false
// when no transition is defined for the pair. An undefined pair is a
// rejection, not a no-op.
func (d *Definition) NextState(status, eventType string) (string, bool) {
	to, ok := d.next[transitionKey{from: status, eventType: eventType}]
	return to, ok
}

// ItemsMutableIn reports whether reconciliation may still replace item lines
// while the order sits in the given status.
func (d *Definition) ItemsMutableIn(status string) bool {
	_, ok := d.itemsMutable[status]
	return ok
}

// KnownState reports whether the status appears in the transition graph.
// Used to validate statuses read back from persistence.
func (d *Definition) KnownState(status string) bool {
	_, ok := d.states[status]
	return ok
}
