package products

import "time"

// Product is the item stored in the products table. Orders copy name and
// price out of it at placement time; they never reference it live.
type Product struct {
	ProductID     string    `dynamodbav:"product_id" json:"id"` // PK
	Name          string    `dynamodbav:"name" json:"name"`
	Slug          string    `dynamodbav:"slug" json:"slug"`
	Description   string    `dynamodbav:"description" json:"description"`
	Price         float64   `dynamodbav:"price" json:"price"`
	Stock         int       `dynamodbav:"stock" json:"stock"`
	CategoryID    string    `dynamodbav:"category_id" json:"categoryId"`
	Images        []string  `dynamodbav:"images,omitempty" json:"images,omitempty"`
	IsActive      bool      `dynamodbav:"is_active" json:"isActive"`
	AverageRating float64   `dynamodbav:"average_rating" json:"averageRating"`
	CreatedAt     time.Time `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `dynamodbav:"updated_at" json:"updatedAt"`
}

// Filter narrows and pages a product listing.
type Filter struct {
	Search     string
	CategoryID string
	MinPrice   float64
	MaxPrice   float64
	Offset     int
	Limit      int
}
