package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type errorResponse struct {
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error"`
}

// chat runs one turn for the caller's session. An empty or unknown
// session_id starts a fresh session; a runtime failure is reported for this
// turn only and the session stays usable.
func (s *Server) chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
	}

	sess := s.sessions.GetOrCreate(req.SessionID)
	reply, err := sess.Turn(c.Request().Context(), s.responder, req.Message)
	if err != nil {
		log.Error().Err(err).Str("session_id", sess.ID).Msg("turn failed")
		return c.JSON(http.StatusBadGateway, errorResponse{
			SessionID: sess.ID,
			Error:     "le traitement de votre message a échoué, veuillez réessayer",
		})
	}

	return c.JSON(http.StatusOK, chatResponse{SessionID: sess.ID, Reply: reply})
}

type customerRow struct {
	CustomerNumber string `json:"customer_number"`
	Name           string `json:"name"`
}

type orderRow struct {
	OrderNumber    string `json:"order_number"`
	CustomerNumber string `json:"customer_number"`
	OrderDate      string `json:"order_date"`
	Amount         string `json:"amount"`
	OrderStatus    string `json:"order_status"`
	StatusDate     string `json:"status_date"`
}

// listCustomers backs the diagnostic side panel. Read-only, independent of
// any chat session.
func (s *Server) listCustomers(c echo.Context) error {
	customers := s.store.Customers()
	rows := make([]customerRow, 0, len(customers))
	for _, cust := range customers {
		rows = append(rows, customerRow{CustomerNumber: cust.Number, Name: cust.Name})
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) customerOrders(c echo.Context) error {
	number := c.Param("number")
	orders := s.store.OrdersOf(number)
	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderRow{
			OrderNumber:    o.Number,
			CustomerNumber: o.Customer,
			OrderDate:      o.DateString(),
			Amount:         o.AmountString(),
			OrderStatus:    o.Status,
			StatusDate:     o.StatusDateString(),
		})
	}
	return c.JSON(http.StatusOK, rows)
}
