// Package http exposes the order and catalog operations over REST.
// Handlers translate between JSON payloads and the application's commands
// and queries; business errors are mapped onto HTTP status codes here and
// nowhere else.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"food/internal/core/application/usecases/commands"
	"food/internal/core/application/usecases/queries"
	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/core/ports"
	"food/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST surface for orders, products, and categories.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	replaceOrderItemsHandler commands.ReplaceOrderItemsCommandHandler
	setOrderStatusHandler    commands.SetOrderStatusCommandHandler
	advanceOrderHandler      commands.AdvanceOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createCategoryHandler    commands.CreateCategoryCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderMonitorHandler queries.GetOrderMonitorQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	replaceOrderItemsHandler commands.ReplaceOrderItemsCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	advanceOrderHandler commands.AdvanceOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderMonitorHandler queries.GetOrderMonitorQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		replaceOrderItemsHandler: replaceOrderItemsHandler,
		setOrderStatusHandler:    setOrderStatusHandler,
		advanceOrderHandler:      advanceOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		createCategoryHandler:    createCategoryHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getOrderMonitorHandler:   getOrderMonitorHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/orders", s.GetOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/monitor/:id", s.GetOrderMonitor)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id", s.UpdateOrder)
	v1.PUT("/orders/:id/items", s.ReplaceOrderItems)
	v1.PATCH("/orders/:id/status", s.SetOrderStatus)
	v1.PATCH("/orders/:id/advance", s.AdvanceOrderStatus)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/products", s.CreateProduct)
	v1.PUT("/products/:id", s.UpdateProduct)
	v1.DELETE("/products/:id", s.DeleteProduct)
	v1.POST("/categories", s.CreateCategory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// CreateOrder handles POST /api/v1/orders. The order runs through the
// validation pipeline; an accepted order is persisted in SENT status and its
// generated ID is returned.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req orderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := req.itemInputs()
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.Title, req.Description, req.CustomerTaxID, items)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders with optional page, size, and status
// query parameters.
func (s *Server) GetOrders(ctx echo.Context) error {
	page, err := intParam(ctx, "page", 0)
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	size, err := intParam(ctx, "size", 20)
	if err != nil {
		return badRequest(ctx, "Invalid size parameter")
	}

	query, err := queries.NewGetOrdersQuery(page, size, ctx.QueryParam("status"))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderPageResponse(result))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetOrderMonitor handles GET /api/v1/orders/monitor/:id.
func (s *Server) GetOrderMonitor(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderMonitorQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.getOrderMonitorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderMonitorResponse(result))
}

// UpdateOrder handles PUT /api/v1/orders/:id. The full update re-runs the
// validation pipeline and reprices the order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req orderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := req.itemInputs()
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Title, req.Description, req.CustomerTaxID, items)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceOrderItems handles PUT /api/v1/orders/:id/items.
func (s *Server) ReplaceOrderItems(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req replaceItemsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items, err := itemInputs(req.Items)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	cmd, err := commands.NewReplaceOrderItemsCommand(orderID, items)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.replaceOrderItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req setStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles PATCH /api/v1/orders/:id/advance.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return fail(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Description, price, categoryID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	var req createProductRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return fail(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	cmd, err := commands.NewUpdateProductCommand(productID, req.Name, req.Description, price, categoryID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product ID")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req createCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, req.Name)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: categoryID.String()})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func intParam(ctx echo.Context, name string, fallback int) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func fail(ctx echo.Context, err error) error {
	status := errorStatus(err)
	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// errorStatus maps business errors onto HTTP status codes. Unknown errors
// are treated as internal failures.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ports.ErrClientNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrClientDirectoryUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, order.ErrIllegalStatusTransition),
		errors.Is(err, commands.ErrCategoryAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, order.ErrOrderValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrTitleIsRequired),
		errors.Is(err, catalog.ErrProductNameIsRequired),
		errors.Is(err, catalog.ErrProductPriceIsInvalid),
		errors.Is(err, catalog.ErrProductCategoryIsRequired),
		errors.Is(err, catalog.ErrCategoryNameIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
