package carts

import "time"

// CartItem is a live line item: the product reference must resolve to an
// active product at mutation time.
type CartItem struct {
	ProductID string `dynamodbav:"product_id" json:"productId"`
	Quantity  int    `dynamodbav:"quantity" json:"quantity"`
}

// Cart is the single active cart per user, keyed by user_id. It is created
// lazily and never hard-deleted; clearing empties the item list only.
type Cart struct {
	UserID    string     `dynamodbav:"user_id" json:"userId"` // PK
	Items     []CartItem `dynamodbav:"items" json:"items"`
	CreatedAt time.Time  `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `dynamodbav:"updated_at" json:"updatedAt"`
}
