package http

import (
	"time"

	"food/internal/core/application/usecases/commands"
	"food/internal/core/application/usecases/queries"
	"food/internal/core/domain/model/kernel"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type idResponse struct {
	ID string `json:"id"`
}

type orderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// orderRequest is shared by order creation and full update; both carry the
// same payload.
type orderRequest struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	CustomerTaxID string             `json:"customerTaxId"`
	Items         []orderItemRequest `json:"items"`
}

func (r orderRequest) itemInputs() ([]commands.OrderItemInput, error) {
	return itemInputs(r.Items)
}

type replaceItemsRequest struct {
	Items []orderItemRequest `json:"items"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  string `json:"categoryId"`
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

func itemInputs(items []orderItemRequest) ([]commands.OrderItemInput, error) {
	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		productID, err := kernel.UUIDFromString(item.ProductID)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.OrderItemInput{ProductID: productID, Quantity: item.Quantity})
	}
	return inputs, nil
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type orderSummaryResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	CustomerTaxID string     `json:"customerTaxId"`
	TotalAmount   string     `json:"totalAmount"`
	ReceivedAt    *time.Time `json:"receivedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type orderPageResponse struct {
	Orders []orderSummaryResponse `json:"orders"`
	Page   int                    `json:"page"`
	Size   int                    `json:"size"`
	Total  int64                  `json:"total"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	Status        string              `json:"status"`
	CustomerTaxID string              `json:"customerTaxId"`
	TotalAmount   string              `json:"totalAmount"`
	ReceivedAt    *time.Time          `json:"receivedAt"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
	Items         []orderItemResponse `json:"items"`
}

type orderMonitorResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	TotalAmount   string     `json:"totalAmount"`
	ReceivedAt    *time.Time `json:"receivedAt"`
	RemainingTime string     `json:"remainingTime,omitempty"`
}

func toOrderPageResponse(result queries.GetOrdersQueryResponse) orderPageResponse {
	orders := make([]orderSummaryResponse, 0, len(result.Orders))
	for _, summary := range result.Orders {
		orders = append(orders, orderSummaryResponse{
			ID:            summary.ID.String(),
			Title:         summary.Title,
			Description:   summary.Description,
			Status:        summary.Status,
			CustomerTaxID: summary.CustomerTaxID,
			TotalAmount:   summary.TotalAmount.String(),
			ReceivedAt:    summary.ReceivedAt,
			CreatedAt:     summary.CreatedAt,
		})
	}
	return orderPageResponse{
		Orders: orders,
		Page:   result.Page,
		Size:   result.Size,
		Total:  result.Total,
	}
}

func toOrderResponse(result queries.GetOrderQueryResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}
	return orderResponse{
		ID:            result.ID.String(),
		Title:         result.Title,
		Description:   result.Description,
		Status:        result.Status,
		CustomerTaxID: result.CustomerTaxID,
		TotalAmount:   result.TotalAmount.String(),
		ReceivedAt:    result.ReceivedAt,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
		Items:         items,
	}
}

func toOrderMonitorResponse(result queries.GetOrderMonitorQueryResponse) orderMonitorResponse {
	return orderMonitorResponse{
		ID:            result.ID.String(),
		Title:         result.Title,
		Status:        result.Status,
		TotalAmount:   result.TotalAmount.String(),
		ReceivedAt:    result.ReceivedAt,
		RemainingTime: result.RemainingTime,
	}
}
