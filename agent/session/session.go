// Package session owns per-conversation state: the transcript and the
// opaque agent memory handle. One session per chat client; sessions are
// ephemeral and never persisted.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tleroux/orderagent/agent/assistant"
	contractx "github.com/tleroux/orderagent/agent/contract"
)

// Responder is the agent runtime seen from a session. *assistant.Assistant
// satisfies it.
type Responder interface {
	Reply(ctx context.Context, mem *assistant.Memory, text string) (string, error)
}

type Session struct {
	ID string

	mu         sync.Mutex
	memory     *assistant.Memory
	transcript []contractx.Message
	createdAt  time.Time
	updatedAt  time.Time
}

func New(id string) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		memory:    assistant.NewMemory(),
		createdAt: now,
		updatedAt: now,
	}
}

// Turn runs one conversation turn. The mutex serializes turns: the memory
// handle must never see two in-flight invocations. The user entry is
// appended before the runtime call, so a failed turn keeps the utterance in
// the transcript and only the assistant entry is missing; the session stays
// usable for the next turn.
func (s *Session) Turn(ctx context.Context, r Responder, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.transcript = append(s.transcript, contractx.Message{
		Role:    contractx.RoleUser,
		Content: text,
		At:      now,
	})
	s.updatedAt = now

	reply, err := r.Reply(ctx, s.memory, text)
	if err != nil {
		return "", err
	}

	s.transcript = append(s.transcript, contractx.Message{
		Role:    contractx.RoleAssistant,
		Content: reply,
		At:      time.Now().UTC(),
	})
	s.updatedAt = time.Now().UTC()
	return reply, nil
}

// Transcript returns a copy of the message history.
func (s *Session) Transcript() []contractx.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]contractx.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
