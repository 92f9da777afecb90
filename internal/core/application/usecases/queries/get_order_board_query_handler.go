package queries

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetOrderBoardQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
	board services.KanbanBoard
}

func NewGetOrderBoardQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderBoardQueryHandler {
	return GetOrderBoardQueryHandler{db: db, clock: clock, board: services.NewKanbanBoard()}
}

// Handle groups orders by their recomputed kanban status. One date is used
// for the whole board.
func (h GetOrderBoardQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBoardQuery,
) (*GetOrderBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		records []orderRecord
		err     error
	)
	if query.Affiliate() == "" {
		records, err = loadOrderRecords(ctx, h.db, "")
	} else {
		records, err = loadOrderRecords(ctx, h.db, "WHERE o.affiliate = ?", query.Affiliate())
	}
	if err != nil {
		return nil, err
	}

	today := h.clock.Today()
	byID := make(map[kernel.UUID]orderRecord, len(records))
	cards := make([]services.BoardCard, len(records))
	for i, r := range records {
		byID[r.ID] = r
		cards[i] = services.BoardCard{ID: r.ID, Fields: r.Fields}
	}

	grouped := h.board.Group(cards)
	response := &GetOrderBoardQueryResponse{Today: today, Columns: make([]BoardColumn, 0, len(grouped))}
	for _, status := range order.KanbanStatuses() {
		column := BoardColumn{Status: status, Cards: make([]OrderCard, 0, len(grouped[status]))}
		for _, card := range grouped[status] {
			r := byID[card.ID]
			column.Cards = append(column.Cards, OrderCard{
				ID:                    r.ID,
				Affiliate:             r.Affiliate,
				SiteName:              r.SiteName,
				DeliveryStatus:        r.deliveryStatus(today),
				AlertType:             r.alertType(today),
				RequestedDeliveryDate: r.Fields.RequestedDeliveryDate,
				ConfirmedDeliveryDate: r.Fields.ConfirmedDeliveryDate,
				InstallScheduleDate:   r.Fields.InstallScheduleDate,
				TotalAmount:           r.TotalAmount,
			})
		}
		response.Columns = append(response.Columns, column)
	}

	return response, nil
}
