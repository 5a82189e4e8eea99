package queries

import (
	"context"
	"database/sql"
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderMonitorQueryHandler builds the kitchen monitor view for one order.
// The remaining-time message is computed from the injected clock, so the
// handler stays deterministic under test.
type GetOrderMonitorQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGetOrderMonitorQueryHandler creates a handler for monitor queries.
func NewGetOrderMonitorQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderMonitorQueryHandler {
	return GetOrderMonitorQueryHandler{db: db, clock: clock}
}

// Handle executes the monitor query. A missing order is reported with an
// ObjectNotFoundError.
func (h GetOrderMonitorQueryHandler) Handle(
	ctx context.Context,
	query GetOrderMonitorQuery,
) (GetOrderMonitorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderMonitorQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			status,
			total_amount,
			received_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id          uuid.UUID
		resp        GetOrderMonitorQueryResponse
		totalAmount decimal.Decimal
		receivedAt  sql.NullTime
	)

	err := row.Scan(&id, &resp.Title, &resp.Status, &totalAmount, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderMonitorQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderMonitorQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderMonitorQueryResponse{}, err
	}
	resp.ID = orderID

	amount, err := kernel.NewMoney(totalAmount)
	if err != nil {
		return GetOrderMonitorQueryResponse{}, err
	}
	resp.TotalAmount = amount

	if receivedAt.Valid {
		t := receivedAt.Time
		resp.ReceivedAt = &t
	}

	status, err := order.StatusFromString(resp.Status)
	if err != nil {
		return GetOrderMonitorQueryResponse{}, err
	}

	if message, ok := order.RemainingTimeMessage(resp.ReceivedAt, status, h.clock.Now()); ok {
		resp.RemainingTime = message
	}

	return resp, nil
}
