package http

import (
	"context"

	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/application/usecases/queries"
)

// Handler ports of the REST adapter. The application handlers satisfy them
// through their pointer receivers.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	InputQuoteHandler interface {
		Handle(ctx context.Context, cmd commands.InputQuoteCommand) error
	}

	InputDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.InputDeliveryCommand) error
	}

	OrderStageHandler interface {
		HandleScheduleInstallation(ctx context.Context, cmd commands.ScheduleInstallationCommand) error
		HandleCompleteInstallation(ctx context.Context, cmd commands.CompleteInstallationCommand) error
		HandleChangeRequestedDeliveryDate(ctx context.Context, cmd commands.ChangeRequestedDeliveryDateCommand) error
		HandleAction(ctx context.Context, cmd commands.OrderActionCommand) error
	}

	RefreshDeliveryStatusesHandler interface {
		Handle(ctx context.Context, cmd commands.RefreshDeliveryStatusesCommand) (int, error)
	}

	ImportPriceTableHandler interface {
		Handle(ctx context.Context, cmd commands.ImportPriceTableCommand) (int, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}

	GetOrderBoardHandler interface {
		Handle(ctx context.Context, query queries.GetOrderBoardQuery) (*queries.GetOrderBoardQueryResponse, error)
	}

	GetDeliveryAlertsHandler interface {
		Handle(ctx context.Context, query queries.GetDeliveryAlertsQuery) (*queries.GetDeliveryAlertsQueryResponse, error)
	}
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	CreateOrder             CreateOrderHandler
	InputQuote              InputQuoteHandler
	InputDelivery           InputDeliveryHandler
	OrderStage              OrderStageHandler
	RefreshDeliveryStatuses RefreshDeliveryStatusesHandler
	ImportPriceTable        ImportPriceTableHandler
	GetOrder                GetOrderHandler
	GetOrderBoard           GetOrderBoardHandler
	GetDeliveryAlerts       GetDeliveryAlertsHandler
}
