package reviews

import "time"

// Review is the document stored in the reviews table. A user may review a
// given product at most once.
type Review struct {
	ReviewID  string    `dynamodbav:"review_id" json:"id"` // PK
	ProductID string    `dynamodbav:"product_id" json:"productId"`
	UserID    string    `dynamodbav:"user_id" json:"userId"`
	Rating    int       `dynamodbav:"rating" json:"rating"` // 1..5
	Comment   string    `dynamodbav:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}
