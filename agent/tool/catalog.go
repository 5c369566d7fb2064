package tool

import (
	"context"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

const (
	ToolIsCustomer     = "is_customer"
	ToolCustomerName   = "get_customer_name"
	ToolCustomerOrders = "get_customer_orders"
	ToolOrderInfos     = "get_order_infos"
)

type customerArgs struct {
	CustomerNumber string `json:"customer_number"`
}

type orderArgs struct {
	OrderNumber    string `json:"order_number"`
	CustomerNumber string `json:"customer_number"`
}

// Tools builds the static tool descriptors handed to the agent runtime.
// The descriptions are part of the contract: the model decides when to call
// a tool from this text alone, so each one carries a literal example.
func (c *Catalog) Tools() []einotool.BaseTool {
	customerParams := schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
		"customer_number": {Type: schema.String, Desc: "The customer number", Required: true},
	})

	isCustomer := utils.NewTool(
		&schema.ToolInfo{
			Name: ToolIsCustomer,
			Desc: "Test whether a customer number is valid. " +
				`Example: is_customer("AXIKB") -> true, is_customer("ACBTP") -> false.`,
			ParamsOneOf: customerParams,
		},
		func(ctx context.Context, in customerArgs) (bool, error) {
			return c.IsCustomer(in.CustomerNumber), nil
		},
	)

	customerName := utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCustomerName,
			Desc: "Get the first and last name of the customer to greet him or her. " +
				`Example: get_customer_name("AXIKB") -> "Prénom : Kimberly, Nom : Fischer".`,
			ParamsOneOf: customerParams,
		},
		func(ctx context.Context, in customerArgs) (string, error) {
			return c.CustomerName(in.CustomerNumber)
		},
	)

	customerOrders := utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCustomerOrders,
			Desc: "Get the customer's order history, oldest first. Use it to find an " +
				"order number from a date or an amount, or to list orders by status. " +
				"Each line gives order_number, order_date, amount in euros, order_status " +
				"and status_date (when the status last changed). " +
				`Example: get_customer_orders("AXIKB") -> ` +
				`"order_number : GWUA2, order_date : 2024-12-28, amount : 954, order_status : shipped, status_date : 2025-01-06".`,
			ParamsOneOf: customerParams,
		},
		func(ctx context.Context, in customerArgs) (string, error) {
			return c.CustomerOrders(in.CustomerNumber), nil
		},
	)

	orderInfos := utils.NewTool(
		&schema.ToolInfo{
			Name: ToolOrderInfos,
			Desc: "Get the details of one order of one customer: order date, amount, " +
				"status and the date the status last changed (such as the shipping date). " +
				`Returns the literal string "Order not found" when the pair does not match. ` +
				`Example: get_order_infos("GWUA2", "AXIKB") -> ` +
				`"date : 2024-12-28, amount : 954, status : shipped, status changed on : 2025-01-06".`,
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"order_number":    {Type: schema.String, Desc: "The order number", Required: true},
				"customer_number": {Type: schema.String, Desc: "The customer number", Required: true},
			}),
		},
		func(ctx context.Context, in orderArgs) (string, error) {
			return c.OrderInfos(in.OrderNumber, in.CustomerNumber), nil
		},
	)

	return []einotool.BaseTool{isCustomer, customerName, customerOrders, orderInfos}
}
