package cmd

import (
	"context"

	"github.com/tleroux/orderagent/agent/assistant"
	promptx "github.com/tleroux/orderagent/agent/prompt"
	recordsx "github.com/tleroux/orderagent/agent/records"
	toolx "github.com/tleroux/orderagent/agent/tool"
	configx "github.com/tleroux/orderagent/pkg/config"
	openrouterx "github.com/tleroux/orderagent/pkg/openrouter"
)

type appConfig struct {
	CustomersPath string `envconfig:"CUSTOMERS_PATH" split_words:"true" default:"data/customers.csv"`
	OrdersPath    string `envconfig:"ORDERS_PATH" split_words:"true" default:"data/orders.csv"`
}

type app struct {
	store     *recordsx.Store
	assistant *assistant.Assistant
}

// wireApp loads the datasets and builds the agent. Configuration problems
// (including a missing API key) fail here, before the first chat turn.
func wireApp(ctx context.Context) (*app, error) {
	appCfg, err := configx.New[appConfig]("")
	if err != nil {
		return nil, err
	}

	store, err := recordsx.Load(appCfg.CustomersPath, appCfg.OrdersPath)
	if err != nil {
		return nil, err
	}

	tools := toolx.NewCatalog(store).Tools()

	routerCfg, err := configx.New[openrouterx.Config]("OPENROUTER")
	if err != nil {
		return nil, err
	}
	chatModel, err := routerCfg.New(ctx)
	if err != nil {
		return nil, err
	}

	agentCfg, err := configx.New[assistant.Config]("AGENT")
	if err != nil {
		return nil, err
	}

	asst, err := assistant.New(ctx, chatModel, tools, promptx.System(), *agentCfg)
	if err != nil {
		return nil, err
	}

	return &app{store: store, assistant: asst}, nil
}
