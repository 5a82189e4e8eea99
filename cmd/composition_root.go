package cmd

import (
	"log/slog"
	"os"

	"food/internal/adapters/in/http"
	"food/internal/adapters/out/clientapi"
	"food/internal/adapters/out/postgres"
	"food/internal/core/application/usecases/commands"
	"food/internal/core/application/usecases/queries"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/services"
	"food/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	validator  services.OrderValidator
	clock      kernel.SystemClock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	// The validator only reads, so its repositories run outside any
	// transaction.
	readSide := postgres.NewGormUnitOfWorkFactory(gormDB).Create()
	validator := services.NewOrderValidator(
		readSide.ProductRepository(),
		readSide.CategoryRepository(),
		clientapi.NewClient(config.ClientAPIBaseURL),
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:  validator,
		clock:      kernel.NewSystemClock(),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.validator, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.validator, c.clock)
}

func (c *CompositionRoot) CreateReplaceOrderItemsCommandHandler() commands.ReplaceOrderItemsCommandHandler {
	return commands.NewReplaceOrderItemsCommandHandler(c.orderUoWFactory(), c.validator, c.clock)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderMonitorQueryHandler() queries.GetOrderMonitorQueryHandler {
	return queries.NewGetOrderMonitorQueryHandler(c.gormDB, c.clock)
}

// CreateHTTPServer assembles the REST server over all handlers.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateReplaceOrderItemsCommandHandler(),
		c.CreateSetOrderStatusCommandHandler(),
		c.CreateAdvanceOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateUpdateProductCommandHandler(),
		c.CreateDeleteProductCommandHandler(),
		c.CreateCreateCategoryCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrderMonitorQueryHandler(),
	)
}

// CreateJobManager assembles the background jobs over a non-transactional
// order repository.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().OrderRepository(), c.clock, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
