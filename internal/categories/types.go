package categories

import "time"

// Category is the document stored in the categories table. Removal is a
// soft-delete: is_active flips, the document stays.
type Category struct {
	CategoryID string    `dynamodbav:"category_id" json:"id"` // PK
	Name       string    `dynamodbav:"name" json:"name"`
	Slug       string    `dynamodbav:"slug" json:"slug"`
	IsActive   bool      `dynamodbav:"is_active" json:"isActive"`
	CreatedAt  time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}
