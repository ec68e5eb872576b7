package main

// OrderPlacedMessage is the payload sent from API -> SQS -> Worker when an
// order is placed. It mirrors the event body published by the order workflow.
type OrderPlacedMessage struct {
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	Total   float64 `json:"total"`
}
