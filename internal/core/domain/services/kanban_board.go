package services

import (
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// BoardCard is one order on the kanban board.
type BoardCard struct {
	ID     kernel.UUID
	Fields order.Fields
}

// KanbanBoard groups orders into board columns by their derived stage.
type KanbanBoard struct{}

func NewKanbanBoard() KanbanBoard {
	return KanbanBoard{}
}

// Group returns every column, empty ones included, keeping input order
// within a column.
func (KanbanBoard) Group(cards []BoardCard) map[order.KanbanStatus][]BoardCard {
	columns := make(map[order.KanbanStatus][]BoardCard, len(order.KanbanStatuses()))
	for _, status := range order.KanbanStatuses() {
		columns[status] = []BoardCard{}
	}

	for _, card := range cards {
		status := order.ComputeKanbanStatus(card.Fields)
		columns[status] = append(columns[status], card)
	}

	return columns
}
