package assistant

import "github.com/cloudwego/eino/schema"

// Memory is the opaque per-session context handle threaded through every
// turn. It accumulates the user/assistant exchange so the model can recall
// facts established earlier, such as an already-supplied customer number.
// One Memory belongs to exactly one session and is never shared; the
// session serializes turns, so Memory needs no lock of its own.
type Memory struct {
	messages []*schema.Message
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Len() int {
	return len(m.messages)
}

// History returns a copy of the accumulated messages.
func (m *Memory) History() []*schema.Message {
	out := make([]*schema.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// extend records one completed turn. Called only after the runtime
// invocation succeeded, so a failed turn leaves memory untouched.
func (m *Memory) extend(user, reply *schema.Message) {
	m.messages = append(m.messages, user, reply)
}
