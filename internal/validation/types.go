package validation

// ShippingInput carries the destination for an order. Bounds mirror the
// placement schema: all fields required strings with minimum lengths.
type ShippingInput struct {
	Address string `json:"address" validate:"required,min=5,max=255"`
	City    string `json:"city" validate:"required,min=2"`
	Zip     string `json:"zip" validate:"required,min=3"`
	Country string `json:"country" validate:"required,min=2"`
}

// PlaceOrderRequest is the payload for POST /orders.
type PlaceOrderRequest struct {
	ItemProductIDs []string      `json:"itemProductIds" validate:"omitempty,dive,uuid4"` // optional working-set filter
	PaymentMethod  string        `json:"paymentMethod" validate:"required,oneof=card paypal cod"`
	Shipping       ShippingInput `json:"shipping" validate:"required"`
}

// UpdateOrderStatusRequest is the payload for PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=placed processing shipped delivered cancelled"`
}

// AddToCartRequest is the payload for POST /cart/items. The id format is
// checked by the cart service so the failure message matches the contract.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// UpdateCartItemRequest is the payload for PUT /cart/items/:productId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CreateProductRequest is the admin payload for POST /products.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"required,min=10"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"min=0"`
	CategoryID  string   `json:"categoryId" validate:"required,uuid4"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// UpdateProductRequest is the admin payload for PUT /products/:id. All fields
// optional; zero values mean "leave unchanged".
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,min=0"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,uuid4"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
}

// CategoryRequest is the admin payload for category create/update.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// AddReviewRequest is the payload for POST /reviews.
type AddReviewRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"omitempty,max=1000"`
}

// UpdateReviewRequest is the payload for PUT /reviews/:id.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
