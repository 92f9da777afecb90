// Package order provides the installation order aggregate and the status
// derivation rules of the operations dashboard.
//
// The package includes:
//   - Order: aggregate root covering intake, quote, delivery, installation,
//     settlement and cancellation
//   - Status / SettlementStatus: the persisted lifecycle flags and their
//     allowed transitions
//   - Fields: the read-only field model the rules evaluate
//   - ComputeKanbanStatus, ComputeDeliveryStatus, GetAlertType: pure rules
//
// Kanban and delivery status are never stored as a source of truth. The
// aggregate keeps a cached delivery status only for orders that opted into
// delivery tracking, and rewrites it on every mutation that can change it.
package order
