// Package services provides domain services that work across many orders or
// across the order and pricing models.
//
// The package includes:
//   - DeliveryAlertClassifier: partitions orders into alert buckets
//   - KanbanBoard: groups orders by derived board stage
//   - QuoteBuilder: turns quoted models into equipment items using the price catalog
package services
