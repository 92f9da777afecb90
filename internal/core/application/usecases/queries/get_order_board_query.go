package queries

import (
	"errors"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderBoardQueryIsNotConstructed = errors.New(
		"GetOrderBoardQuery must be created via NewGetOrderBoardQuery constructor",
	)
)

// GetOrderBoardQuery retrieves the kanban board. An empty affiliate means
// all affiliates.
type GetOrderBoardQuery struct {
	affiliate string
	guard     guard.ConstructorGuard
}

func NewGetOrderBoardQuery(affiliate string) GetOrderBoardQuery {
	return GetOrderBoardQuery{
		affiliate: strings.TrimSpace(affiliate),
		guard:     guard.NewConstructorGuard(),
	}
}

func (q GetOrderBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderBoardQueryIsNotConstructed)
}

func (q GetOrderBoardQuery) Affiliate() string {
	return q.affiliate
}

// OrderCard is an order as shown on a board column.
type OrderCard struct {
	ID                    kernel.UUID
	Affiliate             string
	SiteName              string
	DeliveryStatus        *order.DeliveryStatus
	AlertType             order.AlertType
	RequestedDeliveryDate kernel.Date
	ConfirmedDeliveryDate kernel.Date
	InstallScheduleDate   kernel.Date
	TotalAmount           decimal.Decimal
}

// BoardColumn holds the cards of one kanban stage, oldest order first.
type BoardColumn struct {
	Status order.KanbanStatus
	Cards  []OrderCard
}

// GetOrderBoardQueryResponse lists every column in board order, empty
// columns included.
type GetOrderBoardQueryResponse struct {
	Today   kernel.Date
	Columns []BoardColumn
}
