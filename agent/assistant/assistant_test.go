package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tleroux/orderagent/agent/contract"
	recordsx "github.com/tleroux/orderagent/agent/records"
	toolx "github.com/tleroux/orderagent/agent/tool"
)

// scriptedModel drives the react loop deterministically: it answers the
// first user turn directly, plans a get_customer_orders call on the second
// turn using whatever customer number appeared earlier in the
// conversation, and narrates the tool result afterwards.
type scriptedModel struct {
	toolCallArgs []string
	failures     int
}

func (m *scriptedModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if m.failures > 0 {
		m.failures--
		return nil, errors.New("upstream unavailable")
	}

	last := input[len(input)-1]
	if last.Role == schema.Tool {
		return schema.AssistantMessage("Voici vos commandes :\n"+last.Content, nil), nil
	}

	if strings.Contains(last.Content, "commandes") {
		number := ""
		for _, msg := range input {
			if msg.Role == schema.User && strings.Contains(msg.Content, "AXIKB") {
				number = "AXIKB"
			}
		}
		args, _ := json.Marshal(map[string]string{"customer_number": number})
		m.toolCallArgs = append(m.toolCallArgs, string(args))
		return schema.AssistantMessage("", []schema.ToolCall{{
			ID:   "call-1",
			Type: "function",
			Function: schema.FunctionCall{
				Name:      toolx.ToolCustomerOrders,
				Arguments: string(args),
			},
		}}), nil
	}

	return schema.AssistantMessage("Merci, votre numéro de client est bien noté.", nil), nil
}

func (m *scriptedModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	out, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{out}), nil
}

func (m *scriptedModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

func newTestAssistant(t *testing.T, chatModel model.ToolCallingChatModel, cfg Config) *Assistant {
	t.Helper()
	dir := t.TempDir()

	customers := "customer_number,name\nAXIKB,Kimberly Fischer\n"
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
	tools := toolx.NewCatalog(store).Tools()

	a, err := New(context.Background(), chatModel, tools, "Tu es un agent de gestion des commandes.", cfg)
	if err != nil {
		t.Fatalf("build assistant: %v", err)
	}
	return a
}

func TestReplyRetainsCustomerNumberAcrossTurns(t *testing.T) {
	t.Parallel()

	chatModel := &scriptedModel{}
	a := newTestAssistant(t, chatModel, Config{TurnTimeout: 5 * time.Second})
	mem := NewMemory()

	first, err := a.Reply(context.Background(), mem, "mon numéro est AXIKB")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	if first == "" {
		t.Fatal("first reply must not be empty")
	}

	second, err := a.Reply(context.Background(), mem, "quelles sont mes commandes ?")
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}

	// The runtime must have reused AXIKB from the first turn without the
	// user repeating it.
	if len(chatModel.toolCallArgs) == 0 {
		t.Fatal("expected a tool call on the second turn")
	}
	if !strings.Contains(chatModel.toolCallArgs[0], "AXIKB") {
		t.Fatalf("tool call lost the customer number: %s", chatModel.toolCallArgs[0])
	}

	// Oldest order first in the narrated history.
	gwua := strings.Index(second, "GWUA2")
	btca := strings.Index(second, "BTCA5")
	if gwua == -1 || btca == -1 {
		t.Fatalf("reply missing orders: %s", second)
	}
	if gwua > btca {
		t.Fatalf("orders not in chronological order: %s", second)
	}

	if mem.Len() != 4 {
		t.Fatalf("memory should hold 2 turns (4 messages), got %d", mem.Len())
	}
}

func TestReplyFailureLeavesMemoryUntouched(t *testing.T) {
	t.Parallel()

	chatModel := &scriptedModel{failures: 10}
	a := newTestAssistant(t, chatModel, Config{
		TurnTimeout:   time.Second,
		RetryAttempts: 1,
		RetryBackoff:  time.Millisecond,
	})
	mem := NewMemory()

	_, err := a.Reply(context.Background(), mem, "bonjour")
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}
	if mem.Len() != 0 {
		t.Fatalf("failed turn must not extend memory, got %d messages", mem.Len())
	}
}

func TestReplyRetriesTransientFailure(t *testing.T) {
	t.Parallel()

	chatModel := &scriptedModel{failures: 1}
	a := newTestAssistant(t, chatModel, Config{
		TurnTimeout:   time.Second,
		RetryAttempts: 2,
		RetryBackoff:  time.Millisecond,
	})
	mem := NewMemory()

	reply, err := a.Reply(context.Background(), mem, "bonjour")
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if reply == "" {
		t.Fatal("reply must not be empty")
	}
	if mem.Len() != 2 {
		t.Fatalf("memory should hold the recovered turn, got %d", mem.Len())
	}
}

func TestReplyRejectsEmptyUtterance(t *testing.T) {
	t.Parallel()

	a := newTestAssistant(t, &scriptedModel{}, Config{})
	_, err := a.Reply(context.Background(), NewMemory(), "   ")
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
