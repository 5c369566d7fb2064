package tool

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	contractx "github.com/tleroux/orderagent/agent/contract"
	recordsx "github.com/tleroux/orderagent/agent/records"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()

	customers := `customer_number,name
AXIKB,Kimberly Fischer
QPLMZ,Daniel Moreau
SOLO1,Cher
`
	orders := `customer_number,order_number,order_date,amount,order_status,status_date
AXIKB,BTCA5,2025-01-11,243,shipped,2025-01-12
AXIKB,GWUA2,2024-12-28,954,shipped,2025-01-06
`
	cPath := filepath.Join(dir, "customers.csv")
	oPath := filepath.Join(dir, "orders.csv")
	if err := os.WriteFile(cPath, []byte(customers), 0o644); err != nil {
		t.Fatalf("write customers: %v", err)
	}
	if err := os.WriteFile(oPath, []byte(orders), 0o644); err != nil {
		t.Fatalf("write orders: %v", err)
	}

	store, err := recordsx.Load(cPath, oPath)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return NewCatalog(store)
}

func TestIsCustomer(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	if !c.IsCustomer("AXIKB") {
		t.Fatal("AXIKB must be a customer")
	}
	if c.IsCustomer("ACBTP") {
		t.Fatal("ACBTP must not be a customer")
	}
}

func TestCustomerName(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	got, err := c.CustomerName("AXIKB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Prénom : Kimberly, Nom : Fischer"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCustomerNameNotFound(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	_, err := c.CustomerName("ACBTP")
	if !errors.Is(err, contractx.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerNameMalformed(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	_, err := c.CustomerName("SOLO1")
	if !errors.Is(err, contractx.ErrMalformedName) {
		t.Fatalf("expected ErrMalformedName, got %v", err)
	}
}

func TestCustomerOrdersSortedAndFormatted(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	got := c.CustomerOrders("AXIKB")
	want := "order_number : GWUA2, order_date : 2024-12-28, amount : 954, order_status : shipped, status_date : 2025-01-06\n" +
		"order_number : BTCA5, order_date : 2025-01-11, amount : 243, order_status : shipped, status_date : 2025-01-12"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCustomerOrdersEmpty(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	if got := c.CustomerOrders("QPLMZ"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOrderInfos(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	got := c.OrderInfos("GWUA2", "AXIKB")
	want := "date : 2024-12-28, amount : 954, status : shipped, status changed on : 2025-01-06"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOrderInfosSentinel(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	if got := c.OrderInfos("GWUA2", "QPLMZ"); got != contractx.OrderNotFound {
		t.Fatalf("expected sentinel, got %q", got)
	}
	if got := c.OrderInfos("NOPE", "AXIKB"); got != contractx.OrderNotFound {
		t.Fatalf("expected sentinel, got %q", got)
	}
}

func TestQueryToolsAreIdempotent(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	first := c.CustomerOrders("AXIKB")
	second := c.CustomerOrders("AXIKB")
	if first != second {
		t.Fatal("repeated call must yield identical output")
	}
	if c.OrderInfos("GWUA2", "AXIKB") != c.OrderInfos("GWUA2", "AXIKB") {
		t.Fatal("repeated call must yield identical output")
	}
}

func TestToolsCatalog(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	tools := c.Tools()
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}

	names := make([]string, 0, len(tools))
	for _, tl := range tools {
		info, err := tl.Info(context.Background())
		if err != nil {
			t.Fatalf("tool info: %v", err)
		}
		names = append(names, info.Name)
		if info.Desc == "" {
			t.Fatalf("tool %s has no description", info.Name)
		}
	}

	want := []string{ToolIsCustomer, ToolCustomerName, ToolCustomerOrders, ToolOrderInfos}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("tool %d: got %s, want %s", i, names[i], name)
		}
	}
}
