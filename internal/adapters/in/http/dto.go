package http

import (
	"time"

	"hvacops/internal/core/application/usecases/queries"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewOrder struct {
	Affiliate             string `json:"affiliate"`
	SiteName              string `json:"site_name"`
	RequestedDeliveryDate string `json:"requested_delivery_date"`
	TrackDelivery         bool   `json:"track_delivery"`
}

type CreatedOrder struct {
	ID string `json:"id"`
}

type QuoteLine struct {
	ModelName string           `json:"model_name"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type Quote struct {
	Items []QuoteLine `json:"items"`
}

type Delivery struct {
	VendorOrderNumber     string   `json:"vendor_order_number"`
	ConfirmedDeliveryDate string   `json:"confirmed_delivery_date"`
	ItemDeliveryDates     []string `json:"item_delivery_dates"`
}

// DateChange carries a single date; blank clears an optional date.
type DateChange struct {
	Date string `json:"date"`
}

type Count struct {
	Count int `json:"count"`
}

type Item struct {
	ComponentName         string          `json:"component_name"`
	ModelName             string          `json:"model_name"`
	Quantity              int             `json:"quantity"`
	UnitPrice             decimal.Decimal `json:"unit_price"`
	Amount                decimal.Decimal `json:"amount"`
	ConfirmedDeliveryDate string          `json:"confirmed_delivery_date,omitempty"`
}

type Order struct {
	ID                    string          `json:"id"`
	Affiliate             string          `json:"affiliate"`
	SiteName              string          `json:"site_name"`
	CreatedAt             time.Time       `json:"created_at"`
	KanbanStatus          string          `json:"kanban_status"`
	DeliveryStatus        *string         `json:"delivery_status"`
	AlertType             string          `json:"alert_type"`
	VendorOrderNumber     string          `json:"vendor_order_number,omitempty"`
	RequestedDeliveryDate string          `json:"requested_delivery_date,omitempty"`
	ConfirmedDeliveryDate string          `json:"confirmed_delivery_date,omitempty"`
	InstallScheduleDate   string          `json:"install_schedule_date,omitempty"`
	InstallCompleteDate   string          `json:"install_complete_date,omitempty"`
	Items                 []Item          `json:"items"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
}

type Card struct {
	ID                    string          `json:"id"`
	Affiliate             string          `json:"affiliate"`
	SiteName              string          `json:"site_name"`
	DeliveryStatus        *string         `json:"delivery_status"`
	AlertType             string          `json:"alert_type"`
	RequestedDeliveryDate string          `json:"requested_delivery_date,omitempty"`
	ConfirmedDeliveryDate string          `json:"confirmed_delivery_date,omitempty"`
	InstallScheduleDate   string          `json:"install_schedule_date,omitempty"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
}

type Column struct {
	Status string `json:"status"`
	Cards  []Card `json:"cards"`
}

type Board struct {
	Today   string   `json:"today"`
	Columns []Column `json:"columns"`
}

type DeliveryAlert struct {
	ID                string `json:"id"`
	Affiliate         string `json:"affiliate"`
	SiteName          string `json:"site_name"`
	VendorOrderNumber string `json:"vendor_order_number,omitempty"`
	DeliveryStatus    string `json:"delivery_status"`
	AlertType         string `json:"alert_type"`
	ReferenceDate     string `json:"reference_date,omitempty"`
}

type AlertSummary struct {
	Delayed  int `json:"delayed"`
	Today    int `json:"today"`
	Tomorrow int `json:"tomorrow"`
	None     int `json:"none"`
}

type DeliveryAlerts struct {
	Today   string          `json:"today"`
	Orders  []DeliveryAlert `json:"orders"`
	Summary AlertSummary    `json:"summary"`
}

func toOrder(r *queries.GetOrderQueryResponse) Order {
	items := make([]Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = Item{
			ComponentName:         item.ComponentName,
			ModelName:             item.ModelName,
			Quantity:              item.Quantity,
			UnitPrice:             item.UnitPrice,
			Amount:                item.Amount,
			ConfirmedDeliveryDate: item.ConfirmedDeliveryDate.String(),
		}
	}

	return Order{
		ID:                    r.ID.String(),
		Affiliate:             r.Affiliate,
		SiteName:              r.SiteName,
		CreatedAt:             r.CreatedAt,
		KanbanStatus:          string(r.KanbanStatus),
		DeliveryStatus:        deliveryString(r.DeliveryStatus),
		AlertType:             string(r.AlertType),
		VendorOrderNumber:     r.VendorOrderNumber,
		RequestedDeliveryDate: r.RequestedDeliveryDate.String(),
		ConfirmedDeliveryDate: r.ConfirmedDeliveryDate.String(),
		InstallScheduleDate:   r.InstallScheduleDate.String(),
		InstallCompleteDate:   r.InstallCompleteDate.String(),
		Items:                 items,
		TotalAmount:           r.TotalAmount,
	}
}

func toBoard(r *queries.GetOrderBoardQueryResponse) Board {
	columns := make([]Column, len(r.Columns))
	for i, c := range r.Columns {
		cards := make([]Card, len(c.Cards))
		for j, card := range c.Cards {
			cards[j] = Card{
				ID:                    card.ID.String(),
				Affiliate:             card.Affiliate,
				SiteName:              card.SiteName,
				DeliveryStatus:        deliveryString(card.DeliveryStatus),
				AlertType:             string(card.AlertType),
				RequestedDeliveryDate: card.RequestedDeliveryDate.String(),
				ConfirmedDeliveryDate: card.ConfirmedDeliveryDate.String(),
				InstallScheduleDate:   card.InstallScheduleDate.String(),
				TotalAmount:           card.TotalAmount,
			}
		}
		columns[i] = Column{Status: string(c.Status), Cards: cards}
	}
	return Board{Today: r.Today.String(), Columns: columns}
}

func toDeliveryAlerts(r *queries.GetDeliveryAlertsQueryResponse) DeliveryAlerts {
	orders := make([]DeliveryAlert, len(r.Orders))
	for i, o := range r.Orders {
		orders[i] = DeliveryAlert{
			ID:                o.ID.String(),
			Affiliate:         o.Affiliate,
			SiteName:          o.SiteName,
			VendorOrderNumber: o.VendorOrderNumber,
			DeliveryStatus:    string(o.DeliveryStatus),
			AlertType:         string(o.AlertType),
			ReferenceDate:     o.ReferenceDate.String(),
		}
	}
	return DeliveryAlerts{
		Today:   r.Today.String(),
		Orders:  orders,
		Summary: toAlertSummary(r.Summary),
	}
}

func toAlertSummary(s services.AlertSummary) AlertSummary {
	return AlertSummary{Delayed: s.Delayed, Today: s.Today, Tomorrow: s.Tomorrow, None: s.None}
}

func toQuoteLines(lines []QuoteLine) []services.QuoteLine {
	out := make([]services.QuoteLine, len(lines))
	for i, l := range lines {
		out[i] = services.QuoteLine{ModelName: l.ModelName, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	return out
}

func deliveryString(ds *order.DeliveryStatus) *string {
	if ds == nil {
		return nil
	}
	s := string(*ds)
	return &s
}
