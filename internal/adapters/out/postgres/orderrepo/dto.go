// Package orderrepo persists order aggregates and their equipment items.
// Calendar dates are stored as YYYY-MM-DD text; values that no longer parse
// are read back as absent.
package orderrepo

import (
	"time"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// delivery_status is a denormalised copy kept for board filtering.
type OrderDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Affiliate             string    `gorm:"type:varchar(100);not null;index"`
	SiteName              string    `gorm:"type:varchar(255)"`
	CreatedAt             time.Time `gorm:"not null"`
	Status                int       `gorm:"type:smallint;not null;index"`
	SettlementStatus      int       `gorm:"type:smallint;not null"`
	InstallScheduleDate   string    `gorm:"type:varchar(10)"`
	InstallCompleteDate   string    `gorm:"type:varchar(10)"`
	VendorOrderNumber     string    `gorm:"type:varchar(64)"`
	RequestedDeliveryDate string    `gorm:"type:varchar(10)"`
	ConfirmedDeliveryDate string    `gorm:"type:varchar(10)"`
	DeliveryStatus        *string   `gorm:"type:varchar(16);index"`
	Items                 []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one equipment item row. Position keeps item order stable.
type ItemDTO struct {
	OrderID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position              int             `gorm:"primaryKey;autoIncrement:false"`
	ComponentName         string          `gorm:"type:varchar(100);not null"`
	ModelName             string          `gorm:"type:varchar(100);not null"`
	Quantity              int             `gorm:"not null"`
	UnitPrice             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ConfirmedDeliveryDate string          `gorm:"type:varchar(10)"`
}

// TableName specifies the database table name for equipment items.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	var deliveryStatus *string
	if ds := aggregate.CachedDeliveryStatus(); ds != nil {
		raw := string(*ds)
		deliveryStatus = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:               orderID,
			Position:              i,
			ComponentName:         item.ComponentName(),
			ModelName:             item.ModelName(),
			Quantity:              item.Quantity(),
			UnitPrice:             item.UnitPrice(),
			ConfirmedDeliveryDate: item.ConfirmedDeliveryDate().String(),
		})
	}

	return OrderDTO{
		ID:                    orderID,
		Affiliate:             aggregate.Affiliate(),
		SiteName:              aggregate.SiteName(),
		CreatedAt:             aggregate.CreatedAt(),
		Status:                int(aggregate.Status()),
		SettlementStatus:      int(aggregate.SettlementStatus()),
		InstallScheduleDate:   aggregate.InstallScheduleDate().String(),
		InstallCompleteDate:   aggregate.InstallCompleteDate().String(),
		VendorOrderNumber:     aggregate.VendorOrderNumber(),
		RequestedDeliveryDate: aggregate.RequestedDeliveryDate().String(),
		ConfirmedDeliveryDate: aggregate.ConfirmedDeliveryDate().String(),
		DeliveryStatus:        deliveryStatus,
		Items:                 items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.EquipmentItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewEquipmentItem(
			itemDTO.ComponentName,
			itemDTO.ModelName,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			kernel.ParseDateOrAbsent(itemDTO.ConfirmedDeliveryDate),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var deliveryStatus *order.DeliveryStatus
	if dto.DeliveryStatus != nil {
		ds, dsErr := order.ParseDeliveryStatus(*dto.DeliveryStatus)
		if dsErr != nil {
			// An unreadable cache is recomputed on the next write.
			ds = order.DeliveryPending
		}
		deliveryStatus = &ds
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:                    id,
		Affiliate:             dto.Affiliate,
		SiteName:              dto.SiteName,
		CreatedAt:             dto.CreatedAt,
		Status:                order.Status(dto.Status),
		SettlementStatus:      order.SettlementStatus(dto.SettlementStatus),
		InstallScheduleDate:   kernel.ParseDateOrAbsent(dto.InstallScheduleDate),
		InstallCompleteDate:   kernel.ParseDateOrAbsent(dto.InstallCompleteDate),
		VendorOrderNumber:     dto.VendorOrderNumber,
		RequestedDeliveryDate: kernel.ParseDateOrAbsent(dto.RequestedDeliveryDate),
		ConfirmedDeliveryDate: kernel.ParseDateOrAbsent(dto.ConfirmedDeliveryDate),
		Items:                 items,
		DeliveryStatus:        deliveryStatus,
	})
}
