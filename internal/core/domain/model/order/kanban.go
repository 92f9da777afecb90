package order

// KanbanStatus is the workflow stage shown on the order board.
type KanbanStatus string

const (
	KanbanReceived   KanbanStatus = "received"
	KanbanInProgress KanbanStatus = "in-progress"
	KanbanCompleted  KanbanStatus = "completed"
	KanbanSettled    KanbanStatus = "settled"
	KanbanCancelled  KanbanStatus = "cancelled"
)

// KanbanStatuses lists the board columns in display order.
func KanbanStatuses() []KanbanStatus {
	return []KanbanStatus{KanbanReceived, KanbanInProgress, KanbanCompleted, KanbanSettled, KanbanCancelled}
}

// ComputeKanbanStatus derives the board stage. The checks overlap in real
// data, so the first match wins: a later-stage fact always outranks an
// earlier one.
func ComputeKanbanStatus(f Fields) KanbanStatus {
	switch {
	case f.Status == Cancelled:
		return KanbanCancelled
	case f.SettlementStatus == Settled:
		return KanbanSettled
	case f.InstallCompleteDate.IsPresent():
		return KanbanCompleted
	case f.InstallScheduleDate.IsPresent():
		return KanbanInProgress
	default:
		return KanbanReceived
	}
}
