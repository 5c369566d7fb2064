// Package tool implements the four order-lookup query tools and their
// static catalog. Each tool is a pure function of the record store plus its
// explicit arguments, and returns plain text for the model to narrate.
package tool

import (
	"fmt"
	"strings"

	contractx "github.com/tleroux/orderagent/agent/contract"
	recordsx "github.com/tleroux/orderagent/agent/records"
)

// Catalog binds the query tools to one immutable record store.
type Catalog struct {
	store *recordsx.Store
}

func NewCatalog(store *recordsx.Store) *Catalog {
	return &Catalog{store: store}
}

// IsCustomer reports whether the number exactly matches a customer key.
func (c *Catalog) IsCustomer(customerNumber string) bool {
	return c.store.HasCustomer(customerNumber)
}

// CustomerName formats the customer's first and last name for greeting.
// The display name must split into exactly two whitespace-separated tokens;
// anything else is a malformed record, not something to truncate silently.
func (c *Catalog) CustomerName(customerNumber string) (string, error) {
	name, ok := c.store.CustomerName(customerNumber)
	if !ok {
		return "", fmt.Errorf("%w: customer %s", contractx.ErrNotFound, customerNumber)
	}
	parts := strings.Fields(name)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", contractx.ErrMalformedName, name)
	}
	return fmt.Sprintf("Prénom : %s, Nom : %s", parts[0], parts[1]), nil
}

// CustomerOrders lists the customer's order history, oldest first, one line
// per order. Empty string when the customer has no orders.
func (c *Catalog) CustomerOrders(customerNumber string) string {
	orders := c.store.OrdersOf(customerNumber)
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, fmt.Sprintf(
			"order_number : %s, order_date : %s, amount : %s, order_status : %s, status_date : %s",
			o.Number, o.DateString(), o.AmountString(), o.Status, o.StatusDateString(),
		))
	}
	return strings.Join(lines, "\n")
}

// OrderInfos details one order of one customer. Both keys must match.
// A miss returns the sentinel string, never an error, so the model can
// tell the user the order was not found.
func (c *Catalog) OrderInfos(orderNumber, customerNumber string) string {
	o, ok := c.store.FindOrder(orderNumber, customerNumber)
	if !ok {
		return contractx.OrderNotFound
	}
	return fmt.Sprintf(
		"date : %s, amount : %s, status : %s, status changed on : %s",
		o.DateString(), o.AmountString(), o.Status, o.StatusDateString(),
	)
}
