package order

import (
	"errors"
	"time"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer's food order. It is the aggregate root that
// manages the order lifecycle from creation through preparation to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty title
//   - The total amount equals the sum over items of quantity times product
//     price at validation time; it is recomputed only when items are replaced
//   - The received-at timestamp is set exactly once, when the status first
//     becomes Received
//   - Status transitions follow the workflow defined by Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// title names the order; description is optional free text
	title       string
	description string

	// status is the current state in the kitchen workflow
	status Status

	// customerTaxID is the client's CPF, empty when the order is anonymous
	customerTaxID string

	// items are owned by the order; non-empty after validation
	items []Item

	// totalAmount is computed by the validator, never client-supplied
	totalAmount kernel.Money

	// receivedAt marks entry into the active kitchen workflow (nil until
	// the order becomes Received)
	receivedAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a candidate Order in Created status. The order carries a
// zero total until it passes through the validator, which prices it.
//
// customerTaxID may be empty for anonymous orders; when present it is
// resolved against the client directory during validation.
func NewOrder(
	id kernel.UUID,
	title string,
	description string,
	customerTaxID string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Created,
		description:   description,
		customerTaxID: customerTaxID,
		items:         items,
		totalAmount:   kernel.ZeroMoney(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. All invariants are
// assumed to have been enforced when the order was first stored, except the
// status, which is re-validated against the legal set.
func RestoreOrder(
	id kernel.UUID,
	title string,
	description string,
	status Status,
	customerTaxID string,
	items []Item,
	totalAmount kernel.Money,
	receivedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		description:   description,
		customerTaxID: customerTaxID,
		items:         items,
		totalAmount:   totalAmount,
		receivedAt:    receivedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setStatusValidated(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was created through a factory method.
// Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Title returns the order title.
func (o *Order) Title() string {
	return o.title
}

// Description returns the optional order description.
func (o *Order) Description() string {
	return o.description
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CustomerTaxID returns the client's CPF, or "" for anonymous orders.
func (o *Order) CustomerTaxID() string {
	return o.customerTaxID
}

// Items returns the order's items. The returned slice is a copy; items are
// replaced only through ReplaceItems.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the computed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ReceivedAt returns the moment the order entered the kitchen workflow,
// or nil if it has not been received yet.
func (o *Order) ReceivedAt() *time.Time {
	return o.receivedAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetTotalAmount records the total computed by the order validator.
// The total is never accepted from callers directly.
func (o *Order) SetTotalAmount(total kernel.Money) {
	o.totalAmount = total
}

// SetStatus overwrites the order status without checking the transition
// table. It exists for administrative corrections; Advance is the workflow
// path. Entering Received for the first time stamps receivedAt.
func (o *Order) SetStatus(newStatus Status, now time.Time) error {
	if err := o.setStatusValidated(newStatus); err != nil {
		return err
	}

	o.markReceived(now)
	o.updatedAt = now
	return nil
}

// Advance moves the order to the single next status in the workflow.
//
// Failure modes mirror Status.Next: a Finished order and an order without a
// status both fail with an IllegalStateError carrying the contract message.
func (o *Order) Advance(now time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.status = next
	o.markReceived(now)
	o.updatedAt = now
	return nil
}

// UpdateDetails replaces title, description, and customer tax-id as part of
// a full order update. Items are handled separately by ReplaceItems.
func (o *Order) UpdateDetails(title, description, customerTaxID string, now time.Time) error {
	if err := o.setTitle(title); err != nil {
		return err
	}

	o.description = description
	o.customerTaxID = customerTaxID
	o.updatedAt = now
	return nil
}

// ReplaceItems swaps the order's items and resets the total so the validator
// can reprice the order. This is the only operation after which the total
// amount is recomputed.
func (o *Order) ReplaceItems(items []Item, now time.Time) {
	o.items = items
	o.totalAmount = kernel.ZeroMoney()
	o.updatedAt = now
}

// markReceived stamps receivedAt the first time the order becomes Received.
func (o *Order) markReceived(now time.Time) {
	if o.status == Received && o.receivedAt == nil {
		o.receivedAt = &now
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setStatusValidated(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
