// Package records loads the customer and order datasets into immutable
// in-memory tables. The tables are read-only after Load, so concurrent
// readers need no locking.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"
)

// ErrDataLoad wraps every failure while reading the input tables: missing
// file, missing column, unparsable date or amount. Fatal at startup.
var ErrDataLoad = errors.New("data load failed")

const dateLayout = "2006-01-02"

type Customer struct {
	Number string
	Name   string
}

type Order struct {
	Number     string
	Customer   string
	Date       time.Time
	Amount     float64
	Status     string
	StatusDate time.Time
}

// DateString renders the order date the way it appeared in the dataset.
func (o Order) DateString() string {
	return o.Date.Format(dateLayout)
}

func (o Order) StatusDateString() string {
	return o.StatusDate.Format(dateLayout)
}

// AmountString renders the amount without trailing zeros, so an integer
// amount stays an integer in tool output.
func (o Order) AmountString() string {
	return strconv.FormatFloat(o.Amount, 'f', -1, 64)
}

// Store holds both tables. Orders keep their file order so the
// chronological sort stays stable for equal dates.
type Store struct {
	customers map[string]Customer
	ordered   []Customer
	orders    []Order
}

// Load reads both CSV files and builds the store. Any structural problem in
// either file fails the whole load with a wrapped ErrDataLoad.
func Load(customersPath, ordersPath string) (*Store, error) {
	customers, ordered, err := loadCustomers(customersPath)
	if err != nil {
		return nil, err
	}
	orders, err := loadOrders(ordersPath)
	if err != nil {
		return nil, err
	}
	return &Store{customers: customers, ordered: ordered, orders: orders}, nil
}

// HasCustomer reports whether the number exactly matches a customer key.
// No partial or case-insensitive matching.
func (s *Store) HasCustomer(number string) bool {
	_, ok := s.customers[number]
	return ok
}

// CustomerName returns the raw display name for a customer number.
func (s *Store) CustomerName(number string) (string, bool) {
	c, ok := s.customers[number]
	return c.Name, ok
}

// Customers returns the customer table in file order.
func (s *Store) Customers() []Customer {
	out := make([]Customer, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// OrdersOf returns the customer's orders sorted ascending by order date.
// The sort is stable: equal dates keep their file order. Empty slice when
// nothing matches; an unknown customer is not an error here.
func (s *Store) OrdersOf(customerNumber string) []Order {
	var out []Order
	for _, o := range s.orders {
		if o.Customer == customerNumber {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// FindOrder returns the order matching both the order number and the
// customer number.
func (s *Store) FindOrder(orderNumber, customerNumber string) (Order, bool) {
	for _, o := range s.orders {
		if o.Number == orderNumber && o.Customer == customerNumber {
			return o, true
		}
	}
	return Order{}, false
}

func loadCustomers(path string) (map[string]Customer, []Customer, error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, nil, err
	}
	numberCol, ok := header["customer_number"]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: missing column customer_number", ErrDataLoad, path)
	}
	nameCol, ok := header["name"]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: missing column name", ErrDataLoad, path)
	}

	byNumber := make(map[string]Customer, len(rows))
	ordered := make([]Customer, 0, len(rows))
	for _, row := range rows {
		c := Customer{Number: row[numberCol], Name: row[nameCol]}
		byNumber[c.Number] = c
		ordered = append(ordered, c)
	}
	return byNumber, ordered, nil
}

func loadOrders(path string) ([]Order, error) {
	rows, header, err := readTable(path)
	if err != nil {
		return nil, err
	}
	cols := []string{"customer_number", "order_number", "order_date", "amount", "order_status", "status_date"}
	idx := make(map[string]int, len(cols))
	for _, col := range cols {
		i, ok := header[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing column %s", ErrDataLoad, path, col)
		}
		idx[col] = i
	}

	orders := make([]Order, 0, len(rows))
	for n, row := range rows {
		date, err := time.Parse(dateLayout, row[idx["order_date"]])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad order_date %q", ErrDataLoad, path, n+2, row[idx["order_date"]])
		}
		statusDate, err := time.Parse(dateLayout, row[idx["status_date"]])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad status_date %q", ErrDataLoad, path, n+2, row[idx["status_date"]])
		}
		amount, err := strconv.ParseFloat(row[idx["amount"]], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad amount %q", ErrDataLoad, path, n+2, row[idx["amount"]])
		}
		orders = append(orders, Order{
			Number:     row[idx["order_number"]],
			Customer:   row[idx["customer_number"]],
			Date:       date,
			Amount:     amount,
			Status:     row[idx["order_status"]],
			StatusDate: statusDate,
		})
	}
	return orders, nil
}

func readTable(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: %s is empty", ErrDataLoad, path)
		}
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrDataLoad, path, err)
	}
	byName := make(map[string]int, len(header))
	for i, col := range header {
		byName[col] = i
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrDataLoad, path, err)
	}
	return rows, byName, nil
}
