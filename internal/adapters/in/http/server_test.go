package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "hvacops/internal/adapters/in/http"
	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/application/usecases/queries"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"
	"hvacops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockInputQuote struct{ mock.Mock }

func (m *MockInputQuote) Handle(ctx context.Context, cmd commands.InputQuoteCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockInputDelivery struct{ mock.Mock }

func (m *MockInputDelivery) Handle(ctx context.Context, cmd commands.InputDeliveryCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderStage struct{ mock.Mock }

func (m *MockOrderStage) HandleScheduleInstallation(ctx context.Context, cmd commands.ScheduleInstallationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockOrderStage) HandleCompleteInstallation(ctx context.Context, cmd commands.CompleteInstallationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockOrderStage) HandleChangeRequestedDeliveryDate(
	ctx context.Context,
	cmd commands.ChangeRequestedDeliveryDateCommand,
) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockOrderStage) HandleAction(ctx context.Context, cmd commands.OrderActionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRefresh struct{ mock.Mock }

func (m *MockRefresh) Handle(ctx context.Context, cmd commands.RefreshDeliveryStatusesCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockImportPriceTable struct{ mock.Mock }

func (m *MockImportPriceTable) Handle(ctx context.Context, cmd commands.ImportPriceTableCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockGetOrder struct{ mock.Mock }

func (m *MockGetOrder) Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.GetOrderQueryResponse), args.Error(1)
}

type MockGetOrderBoard struct{ mock.Mock }

func (m *MockGetOrderBoard) Handle(
	ctx context.Context,
	query queries.GetOrderBoardQuery,
) (*queries.GetOrderBoardQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.GetOrderBoardQueryResponse), args.Error(1)
}

type MockGetDeliveryAlerts struct{ mock.Mock }

func (m *MockGetDeliveryAlerts) Handle(
	ctx context.Context,
	query queries.GetDeliveryAlertsQuery,
) (*queries.GetDeliveryAlertsQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.GetDeliveryAlertsQueryResponse), args.Error(1)
}

type testServer struct {
	echo     *echo.Echo
	logs     *observer.ObservedLogs
	create   *MockCreateOrder
	quote    *MockInputQuote
	delivery *MockInputDelivery
	stage    *MockOrderStage
	refresh  *MockRefresh
	prices   *MockImportPriceTable
	getOrder *MockGetOrder
	board    *MockGetOrderBoard
	alerts   *MockGetDeliveryAlerts
}

func newTestServer() *testServer {
	core, logs := observer.New(zapcore.InfoLevel)
	ts := &testServer{
		echo:     echo.New(),
		logs:     logs,
		create:   new(MockCreateOrder),
		quote:    new(MockInputQuote),
		delivery: new(MockInputDelivery),
		stage:    new(MockOrderStage),
		refresh:  new(MockRefresh),
		prices:   new(MockImportPriceTable),
		getOrder: new(MockGetOrder),
		board:    new(MockGetOrderBoard),
		alerts:   new(MockGetDeliveryAlerts),
	}

	httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:             ts.create,
		InputQuote:              ts.quote,
		InputDelivery:           ts.delivery,
		OrderStage:              ts.stage,
		RefreshDeliveryStatuses: ts.refresh,
		ImportPriceTable:        ts.prices,
		GetOrder:                ts.getOrder,
		GetOrderBoard:           ts.board,
		GetDeliveryAlerts:       ts.alerts,
	}, zap.New(core)).Register(ts.echo)

	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCreateOrder(t *testing.T) {
	t.Run("should create order and return its id", func(t *testing.T) {
		ts := newTestServer()
		var captured commands.CreateOrderCommand
		ts.create.On("Handle", mock.Anything, mock.AnythingOfType("commands.CreateOrderCommand")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(commands.CreateOrderCommand) }).
			Return(nil).Once()

		rec := ts.do(http.MethodPost, "/api/v1/orders",
			`{"affiliate":"HQ","site_name":"Gangnam tower","requested_delivery_date":"2025-03-20","track_delivery":true}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		created := decode[httpadapter.CreatedOrder](t, rec)
		assert.Equal(t, captured.OrderID().String(), created.ID)
		assert.Equal(t, "HQ", captured.Affiliate())
		assert.True(t, captured.TrackDelivery())
		ts.create.AssertExpectations(t)
	})

	t.Run("should reject invalid date with 400", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPost, "/api/v1/orders", `{"affiliate":"HQ","requested_delivery_date":"next week"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should hide internal error detail", func(t *testing.T) {
		ts := newTestServer()
		ts.create.On("Handle", mock.Anything, mock.Anything).Return(errors.New("pq: connection refused")).Once()

		rec := ts.do(http.MethodPost, "/api/v1/orders", `{"affiliate":"HQ"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode[httpadapter.Error](t, rec)
		assert.Equal(t, "Failed to create order", body.Message)
		assert.Equal(t, 1, ts.logs.FilterMessage("Failed to create order").Len())
		assert.Equal(t, 1, ts.logs.FilterMessage("Server error").Len())
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("should return order with derived statuses", func(t *testing.T) {
		ts := newTestServer()
		id := kernel.NewUUID()
		inTransit := order.DeliveryInTransit
		ts.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderID() == id
		})).Return(&queries.GetOrderQueryResponse{
			ID:                    id,
			Affiliate:             "HQ",
			KanbanStatus:          order.KanbanInProgress,
			DeliveryStatus:        &inTransit,
			AlertType:             order.AlertTomorrow,
			ConfirmedDeliveryDate: kernel.NewDate(2025, time.March, 11),
			Items: []queries.ItemView{{
				ModelName: "AR07", Quantity: 2,
				UnitPrice: decimal.NewFromInt(700000), Amount: decimal.NewFromInt(1400000),
			}},
			TotalAmount: decimal.NewFromInt(1400000),
		}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/orders/"+id.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[httpadapter.Order](t, rec)
		assert.Equal(t, "in-progress", body.KanbanStatus)
		require.NotNil(t, body.DeliveryStatus)
		assert.Equal(t, "in-transit", *body.DeliveryStatus)
		assert.Equal(t, "tomorrow", body.AlertType)
		assert.Equal(t, "2025-03-11", body.ConfirmedDeliveryDate)
		assert.Empty(t, body.RequestedDeliveryDate)
		require.Len(t, body.Items, 1)
		assert.True(t, decimal.NewFromInt(1400000).Equal(body.TotalAmount))
	})

	t.Run("should map not found to 404", func(t *testing.T) {
		ts := newTestServer()
		id := kernel.NewUUID()
		ts.getOrder.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

		rec := ts.do(http.MethodGet, "/api/v1/orders/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 1, ts.logs.FilterMessage("Client error").Len())
	})

	t.Run("should reject malformed id", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodGet, "/api/v1/orders/42", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetOrderBoard(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	ts.board.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderBoardQuery) bool {
		return q.Affiliate() == "HQ"
	})).Return(&queries.GetOrderBoardQueryResponse{
		Today: kernel.NewDate(2025, time.March, 10),
		Columns: []queries.BoardColumn{
			{Status: order.KanbanReceived, Cards: []queries.OrderCard{{ID: id, AlertType: order.AlertNone}}},
			{Status: order.KanbanInProgress, Cards: []queries.OrderCard{}},
		},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/v1/orders/board?affiliate=HQ", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[httpadapter.Board](t, rec)
	assert.Equal(t, "2025-03-10", body.Today)
	require.Len(t, body.Columns, 2)
	assert.Equal(t, "received", body.Columns[0].Status)
	assert.Equal(t, id.String(), body.Columns[0].Cards[0].ID)
	assert.Nil(t, body.Columns[0].Cards[0].DeliveryStatus)
	assert.Empty(t, body.Columns[1].Cards)
	ts.board.AssertExpectations(t)
}

func TestInputQuote(t *testing.T) {
	t.Run("should pass explicit prices through", func(t *testing.T) {
		ts := newTestServer()
		id := kernel.NewUUID()
		ts.quote.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.InputQuoteCommand) bool {
			lines := cmd.Lines()
			return cmd.OrderID() == id && len(lines) == 2 &&
				lines[0].UnitPrice == nil &&
				lines[1].UnitPrice != nil && lines[1].UnitPrice.Equal(decimal.NewFromInt(650000))
		})).Return(nil).Once()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+id.String()+"/quote",
			`{"items":[{"model_name":"AF17SET","quantity":1},{"model_name":"AR07","quantity":2,"unit_price":"650000"}]}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		ts.quote.AssertExpectations(t)
	})

	t.Run("should map cancelled order to 400", func(t *testing.T) {
		ts := newTestServer()
		ts.quote.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewValueIsInvalidErrorWithCause("status", errors.New("order is cancelled"))).Once()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/quote",
			`{"items":[{"model_name":"AR07","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[httpadapter.Error](t, rec).Message, "order is cancelled")
	})

	t.Run("should require lines", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+kernel.NewUUID().String()+"/quote", `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestInputDelivery(t *testing.T) {
	ts := newTestServer()
	id := kernel.NewUUID()
	ts.delivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.InputDeliveryCommand) bool {
		return cmd.OrderID() == id && cmd.VendorOrderNumber() == "SO-1" && len(cmd.ItemDeliveryDates()) == 2
	})).Return(nil).Once()

	rec := ts.do(http.MethodPut, "/api/v1/orders/"+id.String()+"/delivery",
		`{"vendor_order_number":"SO-1","confirmed_delivery_date":"2025-03-12","item_delivery_dates":["2025-03-11",""]}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	ts.delivery.AssertExpectations(t)
}

func TestOrderStageRoutes(t *testing.T) {
	id := kernel.NewUUID()
	body := `{"date":"2025-03-15"}`

	t.Run("schedule installation", func(t *testing.T) {
		ts := newTestServer()
		ts.stage.On("HandleScheduleInstallation", mock.Anything, mock.Anything).Return(nil).Once()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+id.String()+"/installation/schedule", body)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		ts.stage.AssertExpectations(t)
	})

	t.Run("complete installation requires a date", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+id.String()+"/installation/complete", `{"date":""}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.stage.AssertNotCalled(t, "HandleCompleteInstallation", mock.Anything, mock.Anything)
	})

	t.Run("change requested delivery date", func(t *testing.T) {
		ts := newTestServer()
		ts.stage.On("HandleChangeRequestedDeliveryDate", mock.Anything, mock.Anything).Return(nil).Once()

		rec := ts.do(http.MethodPut, "/api/v1/orders/"+id.String()+"/requested-delivery-date", body)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("settle action", func(t *testing.T) {
		ts := newTestServer()
		ts.stage.On("HandleAction", mock.Anything, mock.MatchedBy(func(cmd commands.OrderActionCommand) bool {
			return cmd.Action() == commands.ActionSettle
		})).Return(nil).Once()

		rec := ts.do(http.MethodPost, "/api/v1/orders/"+id.String()+"/actions/settle", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		ts.stage.AssertExpectations(t)
	})

	t.Run("unknown action", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPost, "/api/v1/orders/"+id.String()+"/actions/archive", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeliveryRoutes(t *testing.T) {
	t.Run("alerts", func(t *testing.T) {
		ts := newTestServer()
		ts.alerts.On("Handle", mock.Anything, mock.Anything).Return(&queries.GetDeliveryAlertsQueryResponse{
			Today: kernel.NewDate(2025, time.March, 10),
			Orders: []queries.DeliveryAlert{{
				ID:             kernel.NewUUID(),
				DeliveryStatus: order.DeliveryPending,
				AlertType:      order.AlertDelayed,
				ReferenceDate:  kernel.NewDate(2025, time.March, 9),
			}},
			Summary: services.AlertSummary{Delayed: 1},
		}, nil).Once()

		rec := ts.do(http.MethodGet, "/api/v1/deliveries/alerts", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[httpadapter.DeliveryAlerts](t, rec)
		require.Len(t, body.Orders, 1)
		assert.Equal(t, "delayed", body.Orders[0].AlertType)
		assert.Equal(t, "2025-03-09", body.Orders[0].ReferenceDate)
		assert.Equal(t, 1, body.Summary.Delayed)
	})

	t.Run("manual refresh", func(t *testing.T) {
		ts := newTestServer()
		ts.refresh.On("Handle", mock.Anything, mock.Anything).Return(4, nil).Once()

		rec := ts.do(http.MethodPost, "/api/v1/deliveries/refresh", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 4, decode[httpadapter.Count](t, rec).Count)
	})
}

func TestImportPriceTable(t *testing.T) {
	t.Run("should accept multipart upload", func(t *testing.T) {
		ts := newTestServer()
		ts.prices.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ImportPriceTableCommand) bool {
			return string(cmd.Content()) == "xlsx-bytes"
		})).Return(12, nil).Once()

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		part, err := form.CreateFormFile("file", "prices.xlsx")
		require.NoError(t, err)
		_, err = part.Write([]byte("xlsx-bytes"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/price-table", &buf)
		req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
		rec := httptest.NewRecorder()
		ts.echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 12, decode[httpadapter.Count](t, rec).Count)
		ts.prices.AssertExpectations(t)
	})

	t.Run("should reject empty upload", func(t *testing.T) {
		ts := newTestServer()

		rec := ts.do(http.MethodPost, "/api/v1/price-table", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		ts.prices.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}
