// Package http exposes the order use cases as a JSON REST API on echo.
package http

import (
	"io"
	"net/http"

	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/application/usecases/queries"
	"hvacops/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const maxPriceTableSize = 10 << 20

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *zap.Logger
}

func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With(zap.String("component", "http_server")),
	}
}

// Register mounts the API under /api/v1 together with request id, request
// logging and panic recovery middleware.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(s.logger))
	e.Use(middleware.Recover())

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/board", s.GetOrderBoard)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/quote", s.InputQuote)
	api.PUT("/orders/:id/delivery", s.InputDelivery)
	api.PUT("/orders/:id/requested-delivery-date", s.ChangeRequestedDeliveryDate)
	api.PUT("/orders/:id/installation/schedule", s.ScheduleInstallation)
	api.PUT("/orders/:id/installation/complete", s.CompleteInstallation)
	api.POST("/orders/:id/actions/:action", s.ApplyAction)
	api.GET("/deliveries/alerts", s.GetDeliveryAlerts)
	api.POST("/deliveries/refresh", s.RefreshDeliveryStatuses)
	api.POST("/price-table", s.ImportPriceTable, middleware.BodyLimit("10M"))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, body.Affiliate, body.SiteName, body.RequestedDeliveryDate, body.TrackDelivery,
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err, "Invalid order id")
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(result))
}

// GetOrderBoard handles GET /api/v1/orders/board?affiliate=.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	query := queries.NewGetOrderBoardQuery(ctx.QueryParam("affiliate"))

	result, err := s.handlers.GetOrderBoard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order board")
	}

	return ctx.JSON(http.StatusOK, toBoard(result))
}

// InputQuote handles PUT /api/v1/orders/:id/quote.
func (s *Server) InputQuote(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body Quote
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInputQuoteCommand(orderID, toQuoteLines(body.Items))
	if err != nil {
		return s.fail(ctx, err, "Invalid quote")
	}

	if err = s.handlers.InputQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to input quote")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InputDelivery handles PUT /api/v1/orders/:id/delivery.
func (s *Server) InputDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body Delivery
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewInputDeliveryCommand(
		orderID, body.VendorOrderNumber, body.ConfirmedDeliveryDate, body.ItemDeliveryDates,
	)
	if err != nil {
		return s.fail(ctx, err, "Invalid delivery data")
	}

	if err = s.handlers.InputDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to input delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeRequestedDeliveryDate handles PUT /api/v1/orders/:id/requested-delivery-date.
func (s *Server) ChangeRequestedDeliveryDate(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body DateChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeRequestedDeliveryDateCommand(orderID, body.Date)
	if err != nil {
		return s.fail(ctx, err, "Invalid requested delivery date")
	}

	if err = s.handlers.OrderStage.HandleChangeRequestedDeliveryDate(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to change requested delivery date")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ScheduleInstallation handles PUT /api/v1/orders/:id/installation/schedule.
func (s *Server) ScheduleInstallation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body DateChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleInstallationCommand(orderID, body.Date)
	if err != nil {
		return s.fail(ctx, err, "Invalid installation date")
	}

	if err = s.handlers.OrderStage.HandleScheduleInstallation(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to schedule installation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteInstallation handles PUT /api/v1/orders/:id/installation/complete.
func (s *Server) CompleteInstallation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body DateChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteInstallationCommand(orderID, body.Date)
	if err != nil {
		return s.fail(ctx, err, "Invalid installation date")
	}

	if err = s.handlers.OrderStage.HandleCompleteInstallation(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to complete installation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyAction handles POST /api/v1/orders/:id/actions/{settle,cancel,track-delivery}.
func (s *Server) ApplyAction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewOrderActionCommand(orderID, commands.OrderAction(ctx.Param("action")))
	if err != nil {
		return s.fail(ctx, err, "Invalid order action")
	}

	if err = s.handlers.OrderStage.HandleAction(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to apply order action")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryAlerts handles GET /api/v1/deliveries/alerts.
func (s *Server) GetDeliveryAlerts(ctx echo.Context) error {
	result, err := s.handlers.GetDeliveryAlerts.Handle(ctx.Request().Context(), queries.NewGetDeliveryAlertsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve delivery alerts")
	}

	return ctx.JSON(http.StatusOK, toDeliveryAlerts(result))
}

// RefreshDeliveryStatuses handles POST /api/v1/deliveries/refresh, the manual
// trigger of the nightly job.
func (s *Server) RefreshDeliveryStatuses(ctx echo.Context) error {
	changed, err := s.handlers.RefreshDeliveryStatuses.Handle(
		ctx.Request().Context(), commands.NewRefreshDeliveryStatusesCommand(),
	)
	if err != nil {
		return s.fail(ctx, err, "Failed to refresh delivery statuses")
	}

	return ctx.JSON(http.StatusOK, Count{Count: changed})
}

// ImportPriceTable handles POST /api/v1/price-table. The workbook is sent as
// multipart field "file" or as the raw request body.
func (s *Server) ImportPriceTable(ctx echo.Context) error {
	content, err := readUpload(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid price table upload")
	}

	cmd, err := commands.NewImportPriceTableCommand(content)
	if err != nil {
		return s.fail(ctx, err, "Invalid price table")
	}

	imported, err := s.handlers.ImportPriceTable.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to import price table")
	}

	return ctx.JSON(http.StatusOK, Count{Count: imported})
}

func readUpload(ctx echo.Context) ([]byte, error) {
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		f, openErr := fileHeader.Open()
		if openErr != nil {
			return nil, openErr
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxPriceTableSize))
	}
	return io.ReadAll(io.LimitReader(ctx.Request().Body, maxPriceTableSize))
}
