// Package assistant wraps the agent runtime: a react-style tool-calling
// agent built once from the chat model, the tool catalog and the system
// instructions, then invoked once per conversation turn.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/tleroux/orderagent/agent/contract"
)

type Config struct {
	// MaxSteps bounds the model/tool loop within one turn.
	MaxSteps int `envconfig:"MAX_STEPS" split_words:"true" default:"12"`
	// TurnTimeout bounds one runtime invocation. Timeout is a per-turn
	// failure, not a session failure.
	TurnTimeout time.Duration `envconfig:"TURN_TIMEOUT" split_words:"true" default:"60s"`
	// RetryAttempts is the number of retries after a failed invocation.
	// Only runtime failures are retried; lookup misses never reach here.
	RetryAttempts int           `envconfig:"RETRY_ATTEMPTS" split_words:"true" default:"1"`
	RetryBackoff  time.Duration `envconfig:"RETRY_BACKOFF" split_words:"true" default:"2s"`
}

type Assistant struct {
	agent        *react.Agent
	systemPrompt string
	cfg          Config
}

func New(
	ctx context.Context,
	chatModel model.ToolCallingChatModel,
	tools []einotool.BaseTool,
	systemPrompt string,
	cfg Config,
) (*Assistant, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	if len(tools) == 0 {
		return nil, fmt.Errorf("%w: tool catalog is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: system prompt is required", contractx.ErrValidation)
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 12
	}

	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: chatModel,
		ToolsConfig: compose.ToolsNodeConfig{
			Tools: tools,
		},
		MaxStep: cfg.MaxSteps,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: build react agent: %v", contractx.ErrModelInvoke, err)
	}

	return &Assistant{
		agent:        agent,
		systemPrompt: strings.TrimSpace(systemPrompt),
		cfg:          cfg,
	}, nil
}

// Reply runs one conversation turn: system prompt + session memory + the
// new utterance go to the runtime, which may call tools before answering.
// Memory is extended only on success, so a failed turn can simply be
// retried by the user on the next one.
func (a *Assistant) Reply(ctx context.Context, mem *Memory, text string) (string, error) {
	utterance := strings.TrimSpace(text)
	if utterance == "" {
		return "", fmt.Errorf("%w: empty utterance", contractx.ErrValidation)
	}
	if mem == nil {
		return "", fmt.Errorf("%w: session memory is required", contractx.ErrValidation)
	}

	history := mem.History()
	input := make([]*schema.Message, 0, len(history)+2)
	input = append(input, schema.SystemMessage(a.systemPrompt))
	input = append(input, history...)
	userMsg := schema.UserMessage(utterance)
	input = append(input, userMsg)

	out, err := a.generate(ctx, input)
	if err != nil {
		return "", err
	}

	reply := strings.TrimSpace(out.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: runtime returned an empty reply", contractx.ErrModelInvoke)
	}

	mem.extend(userMsg, schema.AssistantMessage(reply, nil))
	return reply, nil
}

func (a *Assistant) generate(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
	backoff := a.cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	var lastErr error
	for attempt := 0; attempt <= a.cfg.RetryAttempts; attempt++ {
		if attempt > 0 {
			log.Warn().Err(lastErr).Int("attempt", attempt).Msg("retrying runtime invocation")
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, ctx.Err())
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		turnCtx := ctx
		cancel := func() {}
		if a.cfg.TurnTimeout > 0 {
			turnCtx, cancel = context.WithTimeout(ctx, a.cfg.TurnTimeout)
		}
		out, err := a.agent.Generate(turnCtx, input)
		cancel()
		if err == nil {
			return out, nil
		}
		lastErr = err

		// the caller is gone, retrying is pointless
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, lastErr)
}
