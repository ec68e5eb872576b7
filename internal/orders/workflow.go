package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/carts"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/products"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// OrderStore is the persistence surface the workflow needs.
// Consumers define this interface, not the DynamoDB implementation.
type OrderStore interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID, newStatus string) error
}

// CartAccess reads and shrinks the caller's cart around placement.
type CartAccess interface {
	Get(ctx context.Context, userID string) (*carts.Cart, error)
	Put(ctx context.Context, c *carts.Cart) error
}

// ProductFinder resolves live products for snapshotting.
type ProductFinder interface {
	Get(ctx context.Context, productID string) (*products.Product, error)
}

// EventPublisher carries the order-placed event to the fulfilment queue.
type EventPublisher interface {
	Publish(ctx context.Context, messageBody string, attributes map[string]string) error
}

// PlacedEvent is the message published after a successful placement.
type PlacedEvent struct {
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	Total   float64 `json:"total"`
}

// Workflow composes cart, catalog and order store into the placement,
// cancellation and status-transition operations. The cart read, product
// lookups, order create and cart shrink are separate persistence calls with
// no cross-operation atomicity; a crash between create and shrink leaves the
// ordered items in the cart. That gap is inherited from the contract and is
// not compensated here.
type Workflow struct {
	store    OrderStore
	carts    CartAccess
	products ProductFinder
	events   EventPublisher // optional
	validate *validatorv10.Validate

	nowFunc func() time.Time
	newID   func() string
	randInt func(n int) int
}

// NewWorkflow creates the order workflow. events may be nil when no queue is
// configured.
func NewWorkflow(store OrderStore, cartAccess CartAccess, finder ProductFinder, events EventPublisher) *Workflow {
	return &Workflow{
		store:    store,
		carts:    cartAccess,
		products: finder,
		events:   events,
		validate: validation.New(),
		nowFunc:  time.Now,
		newID:    uuid.NewString,
		randInt:  rand.Intn,
	}
}

// Place runs the order placement sequence and returns the created order.
func (w *Workflow) Place(ctx context.Context, p identity.Principal, req validation.PlaceOrderRequest) (*Order, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if err := validation.Struct(w.validate, req); err != nil {
		return nil, err
	}

	cart, err := w.carts.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, apperr.Validation("Cart is empty")
	}
	if len(cart.Items) > MaxCartItems {
		return nil, apperr.Validation("Exceeded maximum cart items")
	}

	// Working set: the selected subset when ids were supplied, else the
	// whole cart.
	selected := cart.Items
	if len(req.ItemProductIDs) > 0 {
		wanted := make(map[string]bool, len(req.ItemProductIDs))
		for _, id := range req.ItemProductIDs {
			wanted[id] = true
		}
		selected = nil
		for _, item := range cart.Items {
			if wanted[item.ProductID] {
				selected = append(selected, item)
			}
		}
	}
	if len(selected) == 0 {
		return nil, apperr.Validation("Selected items not found in cart")
	}

	// Snapshot each line in cart order, accumulating the total.
	items := make([]LineItem, 0, len(selected))
	var total float64
	for _, item := range selected {
		product, err := w.products.Get(ctx, item.ProductID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if product == nil {
			return nil, apperr.NotFoundf("Product %s not found", item.ProductID)
		}
		items = append(items, LineItem{
			ProductID: product.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
		total += product.Price * float64(item.Quantity)
	}

	payment := Payment{Method: req.PaymentMethod, Status: PaymentPaid}
	if req.PaymentMethod == MethodCOD {
		payment.Status = PaymentPending
	} else {
		payment.TransactionID = fmt.Sprintf("TXN-%d-%d", w.nowFunc().UnixMilli(), w.randInt(1000))
	}

	order := &Order{
		OrderID: w.newID(),
		UserID:  p.ID,
		Items:   items,
		Total:   total,
		Status:  StatusPlaced,
		Payment: payment,
		Shipping: Shipping{
			Address: req.Shipping.Address,
			City:    req.Shipping.City,
			Zip:     req.Shipping.Zip,
			Country: req.Shipping.Country,
		},
	}
	if err := w.store.Create(ctx, order); err != nil {
		return nil, apperr.Internal(err)
	}

	// Evict the ordered items from the cart. Separate write, no rollback of
	// the order above if this fails.
	ordered := make(map[string]bool, len(selected))
	for _, item := range selected {
		ordered[item.ProductID] = true
	}
	remaining := make([]carts.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if !ordered[item.ProductID] {
			remaining = append(remaining, item)
		}
	}
	cart.Items = remaining
	if err := w.carts.Put(ctx, cart); err != nil {
		return nil, apperr.Internal(err)
	}

	w.publishPlaced(ctx, order)
	return order, nil
}

// publishPlaced emits the order-placed event. Best effort: placement already
// succeeded, so failures are logged and swallowed.
func (w *Workflow) publishPlaced(ctx context.Context, order *Order) {
	if w.events == nil {
		return
	}
	body, err := json.Marshal(PlacedEvent{
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Total:   order.Total,
	})
	if err != nil {
		log.Printf("marshal placed event for order=%s: %v", order.OrderID, err)
		return
	}
	attrs := map[string]string{
		"order_id": order.OrderID,
		"user_id":  order.UserID,
	}
	if err := w.events.Publish(ctx, string(body), attrs); err != nil {
		log.Printf("publish placed event for order=%s: %v", order.OrderID, err)
	}
}

// ListForUser returns the caller's orders, newest placement first.
func (w *Workflow) ListForUser(ctx context.Context, p identity.Principal) ([]Order, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	list, err := w.store.ListByUser(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return list, nil
}

// Get returns one order, readable by its owner or an admin.
func (w *Workflow) Get(ctx context.Context, p identity.Principal, orderID string) (*Order, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(orderID) {
		return nil, apperr.Validation("Invalid order ID")
	}

	order, err := w.store.Get(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}
	if !p.CanAccess(order.UserID) {
		return nil, apperr.Unauthorized("You are not authorized to access this order")
	}
	return order, nil
}

// UpdateStatus overwrites an order's status. Admin only, checked before any
// lookup. The transition graph is deliberately not enforced on this path.
func (w *Workflow) UpdateStatus(ctx context.Context, p identity.Principal, orderID, status string) (*Order, error) {
	if !p.IsAdmin() {
		return nil, apperr.Unauthorized("Only admin can update order status")
	}
	if err := validation.Struct(w.validate, validation.UpdateOrderStatusRequest{Status: status}); err != nil {
		return nil, err
	}
	if !validation.IsValidID(orderID) {
		return nil, apperr.Validation("Invalid order ID")
	}

	order, err := w.store.Get(ctx, orderID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}

	// Belt and suspenders on top of the schema check.
	if !ValidStatus(status) {
		return nil, apperr.Validation("Invalid order status")
	}

	if err := w.store.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, apperr.Internal(err)
	}
	order.Status = status
	order.UpdatedAt = w.nowFunc()
	return order, nil
}

// Cancel transitions an order to cancelled. Owner only: admins must use
// UpdateStatus instead. Blocked once the order is shipped or delivered;
// cancelling an already-cancelled order is a no-op success.
func (w *Workflow) Cancel(ctx context.Context, p identity.Principal, orderID string) (bool, error) {
	if !p.Authenticated() {
		return false, apperr.NotAuthenticated()
	}
	if !validation.IsValidID(orderID) {
		return false, apperr.Validation("Invalid order ID")
	}

	order, err := w.store.Get(ctx, orderID)
	if err != nil {
		return false, apperr.Internal(err)
	}
	if order == nil {
		return false, apperr.NotFound("Order not found")
	}
	if !p.Owns(order.UserID) {
		return false, apperr.Unauthorized("You are not authorized to cancel this order")
	}
	if order.Status == StatusShipped || order.Status == StatusDelivered {
		return false, apperr.Validation("Cannot cancel an order that is already shipped or delivered")
	}

	if err := w.store.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return false, apperr.Internal(err)
	}
	return true, nil
}
