package cmd

import (
	"time"

	httpadapter "hvacops/internal/adapters/in/http"
	"hvacops/internal/adapters/out/excel"
	"hvacops/internal/adapters/out/postgres"
	"hvacops/internal/adapters/out/postgres/pricerepo"
	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/application/usecases/queries"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/core/ports"
	"hvacops/internal/jobs"
	"hvacops/internal/pkg/loader"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	catalogs   *loader.Loader[*pricing.Catalog]
	location   *time.Location
	clock      kernel.Clock
	logger     *zap.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	location *time.Location,
	logger *zap.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		catalogs:   pricerepo.NewCatalogLoader(gormDB),
		location:   location,
		clock:      kernel.NewSystemClock(location),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateInputQuoteCommandHandler() commands.InputQuoteCommandHandler {
	return commands.NewInputQuoteCommandHandler(c.orderUoWFactory(), c.catalogs, c.clock)
}

func (c *CompositionRoot) CreateInputDeliveryCommandHandler() commands.InputDeliveryCommandHandler {
	return commands.NewInputDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateOrderStageCommandHandler() commands.OrderStageCommandHandler {
	return commands.NewOrderStageCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRefreshDeliveryStatusesCommandHandler() commands.RefreshDeliveryStatusesCommandHandler {
	return commands.NewRefreshDeliveryStatusesCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateImportPriceTableCommandHandler() commands.ImportPriceTableCommandHandler {
	var f commands.PriceUoWFactory = FuncPriceUoWFactory(func() commands.PriceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportPriceTableCommandHandler(f, excel.NewPriceTableReader(), c.catalogs)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOrderBoardQueryHandler() queries.GetOrderBoardQueryHandler {
	return queries.NewGetOrderBoardQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetDeliveryAlertsQueryHandler() queries.GetDeliveryAlertsQueryHandler {
	return queries.NewGetDeliveryAlertsQueryHandler(c.gormDB, c.clock)
}

// CreateHTTPServer wires every use case into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	inputQuote := c.CreateInputQuoteCommandHandler()
	inputDelivery := c.CreateInputDeliveryCommandHandler()
	orderStage := c.CreateOrderStageCommandHandler()
	refresh := c.CreateRefreshDeliveryStatusesCommandHandler()
	importPrices := c.CreateImportPriceTableCommandHandler()
	getOrder := c.CreateGetOrderQueryHandler()
	getBoard := c.CreateGetOrderBoardQueryHandler()
	getAlerts := c.CreateGetDeliveryAlertsQueryHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:             &createOrder,
		InputQuote:              &inputQuote,
		InputDelivery:           &inputDelivery,
		OrderStage:              &orderStage,
		RefreshDeliveryStatuses: &refresh,
		ImportPriceTable:        &importPrices,
		GetOrder:                getOrder,
		GetOrderBoard:           getBoard,
		GetDeliveryAlerts:       getAlerts,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	refresh := c.CreateRefreshDeliveryStatusesCommandHandler()
	return jobs.NewJobManager(
		jobs.Schedules{
			DeliveryRefresh:     c.config.DeliveryRefreshSchedule,
			DeliveryAlertDigest: c.config.AlertDigestSchedule,
		},
		&refresh,
		c.CreateGetDeliveryAlertsQueryHandler(),
		c.location,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPriceUoWFactory func() commands.PriceUoW

func (f FuncPriceUoWFactory) Create() commands.PriceUoW {
	return f()
}
