package order

import (
	"fmt"

	"wms/internal/pkg/errs"
)

// Item is one order line: a SKU and the quantity to pick.
// Items are value objects owned exclusively by their order.
type Item struct {
	sku      string
	quantity float64
}

// NewItem creates a validated item line. SKU must be non-empty and the
// quantity strictly positive.
func NewItem(sku string, quantity float64) (Item, error) {
	if sku == "" {
		return Item{}, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	return Item{sku: sku, quantity: quantity}, nil
}

// SKU returns the stock keeping unit of the line.
func (i Item) SKU() string {
	return i.sku
}

// Quantity returns the quantity to pick.
func (i Item) Quantity() float64 {
	return i.quantity
}
