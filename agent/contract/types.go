package contract

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry of a conversation session.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// OrderNotFound is the sentinel returned by the order-detail tool when no
// order matches. It is a plain string, not an error: the model narrates it
// to the user as a negative result.
const OrderNotFound = "Order not found"
