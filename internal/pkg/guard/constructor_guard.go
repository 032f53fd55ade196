// Package guard implements the constructor-guard pattern used by commands and
// value objects to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its designated
// constructor. Embedding a guard lets Validate distinguish properly constructed
// values from zero values.
//
// Example:
//
//	type Item struct {
//	    sku      string
//	    quantity float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewItem(sku string, quantity float64) (Item, error) {
//	    if quantity <= 0 {
//	        return Item{}, errors.New("quantity must be positive")
//	    }
//	    return Item{sku: sku, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (i Item) Validate() error {
//	    return i.guard.Validate(ErrItemNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed; otherwise it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
