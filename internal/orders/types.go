package orders

import "time"

// Order statuses. Placed is the initial state; delivered and cancelled are
// terminal for the customer cancellation path. The admin status update is
// deliberately unconstrained.
const (
	StatusPlaced     = "placed"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Payment methods and statuses. No gateway is called: cod starts pending,
// every other method is granted paid immediately.
const (
	MethodCard   = "card"
	MethodPaypal = "paypal"
	MethodCOD    = "cod"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// MaxCartItems is the coarse anti-abuse ceiling on distinct line items a
// cart may hold at placement time.
const MaxCartItems = 20

// LineItem is a snapshot captured at placement: name and price are copied
// from the product so later edits never alter historical orders.
type LineItem struct {
	ProductID string  `dynamodbav:"product_id" json:"productId"`
	Name      string  `dynamodbav:"name" json:"name"`
	Price     float64 `dynamodbav:"price" json:"price"`
	Quantity  int     `dynamodbav:"quantity" json:"quantity"`
}

// Payment is the opaque method/status/transaction-id tuple on an order.
type Payment struct {
	Method        string `dynamodbav:"method" json:"method"`
	Status        string `dynamodbav:"status" json:"status"`
	TransactionID string `dynamodbav:"transaction_id,omitempty" json:"transactionId,omitempty"`
}

// Shipping is the destination captured at placement.
type Shipping struct {
	Address string `dynamodbav:"address" json:"address"`
	City    string `dynamodbav:"city" json:"city"`
	Zip     string `dynamodbav:"zip" json:"zip"`
	Country string `dynamodbav:"country" json:"country"`
}

// Order is the immutable receipt stored in the orders table. Orders are
// never deleted, only status-transitioned.
type Order struct {
	OrderID  string     `dynamodbav:"order_id" json:"id"` // PK
	UserID   string     `dynamodbav:"user_id" json:"userId"`
	Items    []LineItem `dynamodbav:"items" json:"items"`
	Total    float64    `dynamodbav:"total" json:"total"`
	Status   string     `dynamodbav:"status" json:"status"`
	Payment  Payment    `dynamodbav:"payment" json:"payment"`
	Shipping Shipping   `dynamodbav:"shipping" json:"shipping"`
	PlacedAt time.Time  `dynamodbav:"placed_at" json:"placedAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// ValidStatus reports whether s is one of the five enumerated statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPlaced, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
