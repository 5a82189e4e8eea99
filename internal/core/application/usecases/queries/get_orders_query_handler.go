package queries

import (
	"context"
	"database/sql"

	"food/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database.
// Reads bypass the aggregates; rows are mapped into flat summaries.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(0, 20, "")
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by creation time,
// then by ID for a stable order within the same instant.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	countSQL := `SELECT count(*) FROM orders`
	listSQL := `
		SELECT
			id,
			title,
			description,
			status,
			customer_tax_id,
			total_amount,
			received_at,
			created_at
		FROM orders`

	var filterArgs []any
	if status, ok := query.StatusFilter(); ok {
		countSQL += ` WHERE status = ?`
		listSQL += ` WHERE status = ?`
		filterArgs = append(filterArgs, status.String())
	}
	listSQL += `
		ORDER BY created_at, id
		LIMIT ? OFFSET ?`

	var total int64
	if err := h.db.WithContext(ctx).Raw(countSQL, filterArgs...).Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	listArgs := append(filterArgs, query.Size(), query.Page()*query.Size())
	rows, err := h.db.WithContext(ctx).Raw(listSQL, listArgs...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders: orders,
		Page:   query.Page(),
		Size:   query.Size(),
		Total:  total,
	}, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		id          uuid.UUID
		summary     OrderSummary
		totalAmount decimal.Decimal
		receivedAt  sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&summary.Title,
		&summary.Description,
		&summary.Status,
		&summary.CustomerTaxID,
		&totalAmount,
		&receivedAt,
		&summary.CreatedAt,
	); err != nil {
		return OrderSummary{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}
	summary.ID = orderID

	amount, err := kernel.NewMoney(totalAmount)
	if err != nil {
		return OrderSummary{}, err
	}
	summary.TotalAmount = amount

	if receivedAt.Valid {
		t := receivedAt.Time
		summary.ReceivedAt = &t
	}

	return summary, nil
}
