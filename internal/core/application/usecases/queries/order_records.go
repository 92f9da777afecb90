// Package queries contains read operations for the order dashboard.
// Handlers read rows with plain SQL and recompute every derived status from
// the stored fields; the cached delivery_status column is only a filter.
package queries

import (
	"context"
	"database/sql"
	"time"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemView is one equipment line of an order read model.
type ItemView struct {
	ComponentName         string
	ModelName             string
	Quantity              int
	UnitPrice             decimal.Decimal
	Amount                decimal.Decimal
	ConfirmedDeliveryDate kernel.Date
}

// orderRecord is an order row joined with its items.
type orderRecord struct {
	ID                kernel.UUID
	Affiliate         string
	SiteName          string
	CreatedAt         time.Time
	VendorOrderNumber string
	Tracked           bool
	Fields            order.Fields
	Items             []ItemView
	TotalAmount       decimal.Decimal
}

func (r orderRecord) deliveryStatus(today kernel.Date) *order.DeliveryStatus {
	if !r.Tracked {
		return nil
	}
	ds := order.ComputeDeliveryStatus(r.Fields, today)
	return &ds
}

// alertType matches the delivery alerts list: only tracked orders that are
// active and not settled carry an alert.
func (r orderRecord) alertType(today kernel.Date) order.AlertType {
	if !r.Tracked || r.Fields.Status != order.Active || r.Fields.SettlementStatus == order.Settled {
		return order.AlertNone
	}
	return order.GetAlertType(r.Fields, today)
}

const selectOrderRecords = `
	SELECT
		o.id,
		o.affiliate,
		o.site_name,
		o.created_at,
		o.status,
		o.settlement_status,
		o.install_schedule_date,
		o.install_complete_date,
		o.vendor_order_number,
		o.requested_delivery_date,
		o.confirmed_delivery_date,
		o.delivery_status IS NOT NULL,
		i.component_name,
		i.model_name,
		i.quantity,
		i.unit_price,
		i.confirmed_delivery_date
	FROM orders o
	LEFT JOIN order_items i ON i.order_id = o.id
`

const orderRecordsOrdering = `
	ORDER BY o.created_at, o.id, i.position
`

// loadOrderRecords runs selectOrderRecords with the given WHERE clause and
// folds the joined rows into one record per order, in creation order.
func loadOrderRecords(ctx context.Context, db *gorm.DB, where string, args ...any) ([]orderRecord, error) {
	rows, err := db.WithContext(ctx).Raw(selectOrderRecords+where+orderRecordsOrdering, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]orderRecord, 0)
	for rows.Next() {
		var (
			id                                          uuid.UUID
			affiliate, siteName, vendorOrderNumber      sql.NullString
			scheduleDate, completeDate                  sql.NullString
			requestedDate, confirmedDate                sql.NullString
			createdAt                                   time.Time
			status, settlementStatus                    int
			tracked                                     bool
			componentName, modelName, itemConfirmedDate sql.NullString
			quantity                                    sql.NullInt64
			unitPrice                                   decimal.NullDecimal
		)

		err = rows.Scan(
			&id,
			&affiliate,
			&siteName,
			&createdAt,
			&status,
			&settlementStatus,
			&scheduleDate,
			&completeDate,
			&vendorOrderNumber,
			&requestedDate,
			&confirmedDate,
			&tracked,
			&componentName,
			&modelName,
			&quantity,
			&unitPrice,
			&itemConfirmedDate,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(records) == 0 || !records[len(records)-1].ID.IsEqual(orderID) {
			records = append(records, orderRecord{
				ID:                orderID,
				Affiliate:         affiliate.String,
				SiteName:          siteName.String,
				CreatedAt:         createdAt,
				VendorOrderNumber: vendorOrderNumber.String,
				Tracked:           tracked,
				Fields: order.Fields{
					Status:                order.Status(status),
					SettlementStatus:      order.SettlementStatus(settlementStatus),
					InstallScheduleDate:   kernel.ParseDateOrAbsent(scheduleDate.String),
					InstallCompleteDate:   kernel.ParseDateOrAbsent(completeDate.String),
					VendorOrderNumber:     vendorOrderNumber.String,
					RequestedDeliveryDate: kernel.ParseDateOrAbsent(requestedDate.String),
					ConfirmedDeliveryDate: kernel.ParseDateOrAbsent(confirmedDate.String),
					Items:                 []order.ItemFields{},
				},
				Items:       []ItemView{},
				TotalAmount: decimal.Zero,
			})
		}

		// LEFT JOIN row of an order without items
		if !modelName.Valid {
			continue
		}

		record := &records[len(records)-1]
		item := ItemView{
			ComponentName:         componentName.String,
			ModelName:             modelName.String,
			Quantity:              int(quantity.Int64),
			UnitPrice:             unitPrice.Decimal,
			Amount:                unitPrice.Decimal.Mul(decimal.NewFromInt(quantity.Int64)),
			ConfirmedDeliveryDate: kernel.ParseDateOrAbsent(itemConfirmedDate.String),
		}
		record.Items = append(record.Items, item)
		record.Fields.Items = append(record.Fields.Items, order.ItemFields{ConfirmedDeliveryDate: item.ConfirmedDeliveryDate})
		record.TotalAmount = record.TotalAmount.Add(item.Amount)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
