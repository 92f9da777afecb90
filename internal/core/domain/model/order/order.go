package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsSettled is returned when a settled order is edited.
	ErrOrderIsSettled = errs.NewValueIsInvalidErrorWithCause("status is invalid", errors.New("settled orders can only be cancelled"))
)

// Order is an air-conditioner installation order. It is the aggregate root
// for every stage input on the dashboard: intake, quote, delivery,
// installation scheduling, settlement and cancellation.
//
// Invariants:
//   - id is valid and affiliate is not blank
//   - a cancelled order accepts no further changes
//   - a settled order accepts only cancellation
//   - when delivery tracking is on, the cached delivery status equals
//     ComputeDeliveryStatus of the current fields as of the last write
type Order struct {
	id        kernel.UUID
	affiliate string
	siteName  string
	createdAt time.Time

	status           Status
	settlementStatus SettlementStatus

	installScheduleDate kernel.Date
	installCompleteDate kernel.Date

	vendorOrderNumber     string
	requestedDeliveryDate kernel.Date
	confirmedDeliveryDate kernel.Date
	items                 []EquipmentItem

	// deliveryStatus is nil for orders outside delivery tracking.
	deliveryStatus *DeliveryStatus

	// published is the snapshot last announced; zero for a new order.
	published Snapshot

	isConstructed bool
}

// NewOrder registers an order at intake. With trackDelivery the order joins
// the delivery board and starts as pending.
func NewOrder(
	id kernel.UUID,
	affiliate, siteName string,
	requestedDeliveryDate kernel.Date,
	trackDelivery bool,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		siteName:              strings.TrimSpace(siteName),
		createdAt:             createdAt,
		status:                Active,
		settlementStatus:      Unsettled,
		requestedDeliveryDate: requestedDeliveryDate,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setAffiliate(affiliate),
	); err != nil {
		return nil, err
	}

	if trackDelivery {
		pending := DeliveryPending
		o.deliveryStatus = &pending
	}

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID                    kernel.UUID
	Affiliate             string
	SiteName              string
	CreatedAt             time.Time
	Status                Status
	SettlementStatus      SettlementStatus
	InstallScheduleDate   kernel.Date
	InstallCompleteDate   kernel.Date
	VendorOrderNumber     string
	RequestedDeliveryDate kernel.Date
	ConfirmedDeliveryDate kernel.Date
	Items                 []EquipmentItem
	DeliveryStatus        *DeliveryStatus
}

// RestoreOrder rebuilds an order loaded from storage. The cached delivery
// status is taken as stored; callers recompute before trusting it.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		siteName:              p.SiteName,
		createdAt:             p.CreatedAt,
		settlementStatus:      p.SettlementStatus,
		installScheduleDate:   p.InstallScheduleDate,
		installCompleteDate:   p.InstallCompleteDate,
		vendorOrderNumber:     p.VendorOrderNumber,
		requestedDeliveryDate: p.RequestedDeliveryDate,
		confirmedDeliveryDate: p.ConfirmedDeliveryDate,
		isConstructed:         true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setAffiliate(p.Affiliate),
		o.setStatus(p.Status),
		o.setItems(p.Items),
	); err != nil {
		return nil, err
	}

	if p.DeliveryStatus != nil {
		ds := *p.DeliveryStatus
		o.deliveryStatus = &ds
	}
	o.published = o.Snapshot()

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Affiliate() string {
	return o.affiliate
}

func (o *Order) SiteName() string {
	return o.siteName
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) SettlementStatus() SettlementStatus {
	return o.settlementStatus
}

func (o *Order) InstallScheduleDate() kernel.Date {
	return o.installScheduleDate
}

func (o *Order) InstallCompleteDate() kernel.Date {
	return o.installCompleteDate
}

func (o *Order) VendorOrderNumber() string {
	return o.vendorOrderNumber
}

func (o *Order) RequestedDeliveryDate() kernel.Date {
	return o.requestedDeliveryDate
}

func (o *Order) ConfirmedDeliveryDate() kernel.Date {
	return o.confirmedDeliveryDate
}

// Items returns a copy of the equipment items.
func (o *Order) Items() []EquipmentItem {
	items := make([]EquipmentItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount sums the item amounts.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Amount())
	}
	return total
}

// IsDeliveryTracked reports whether the order is on the delivery board.
func (o *Order) IsDeliveryTracked() bool {
	return o.deliveryStatus != nil
}

// CachedDeliveryStatus is the denormalised value for persistence and
// filtering. Business decisions use DeliveryStatus instead.
func (o *Order) CachedDeliveryStatus() *DeliveryStatus {
	if o.deliveryStatus == nil {
		return nil
	}
	ds := *o.deliveryStatus
	return &ds
}

// Fields returns the snapshot evaluated by the status rules.
func (o *Order) Fields() Fields {
	items := make([]ItemFields, len(o.items))
	for i, item := range o.items {
		items[i] = ItemFields{ConfirmedDeliveryDate: item.confirmedDeliveryDate}
	}

	return Fields{
		Status:                o.status,
		SettlementStatus:      o.settlementStatus,
		InstallCompleteDate:   o.installCompleteDate,
		InstallScheduleDate:   o.installScheduleDate,
		VendorOrderNumber:     o.vendorOrderNumber,
		ConfirmedDeliveryDate: o.confirmedDeliveryDate,
		RequestedDeliveryDate: o.requestedDeliveryDate,
		Items:                 items,
	}
}

// KanbanStatus recomputes the board stage.
func (o *Order) KanbanStatus() KanbanStatus {
	return ComputeKanbanStatus(o.Fields())
}

// DeliveryStatus recomputes the delivery stage as of today. The second
// result is false for orders outside delivery tracking.
func (o *Order) DeliveryStatus(today kernel.Date) (DeliveryStatus, bool) {
	if !o.IsDeliveryTracked() {
		return "", false
	}
	return ComputeDeliveryStatus(o.Fields(), today), true
}

// AlertType classifies delivery urgency; untracked orders never alert.
func (o *Order) AlertType(today kernel.Date) AlertType {
	if !o.IsDeliveryTracked() {
		return AlertNone
	}
	return GetAlertType(o.Fields(), today)
}

// EnableDeliveryTracking puts the order on the delivery board.
func (o *Order) EnableDeliveryTracking(today kernel.Date) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if o.deliveryStatus == nil {
		pending := DeliveryPending
		o.deliveryStatus = &pending
	}
	o.RefreshDeliveryStatus(today)
	return nil
}

// InputQuote replaces the equipment items with the quoted ones.
func (o *Order) InputQuote(items []EquipmentItem, today kernel.Date) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.RefreshDeliveryStatus(today)
	return nil
}

// InputDelivery records the vendor order and the confirmed delivery dates.
// itemDates is either empty, leaving item dates untouched, or has one entry
// per equipment item in item order.
func (o *Order) InputDelivery(
	vendorOrderNumber string,
	confirmedDeliveryDate kernel.Date,
	itemDates []kernel.Date,
	today kernel.Date,
) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if len(itemDates) > 0 && len(itemDates) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemDeliveryDates",
			fmt.Errorf("got %d dates for %d equipment items", len(itemDates), len(o.items)),
		)
	}

	o.vendorOrderNumber = strings.TrimSpace(vendorOrderNumber)
	o.confirmedDeliveryDate = confirmedDeliveryDate
	for i, d := range itemDates {
		o.items[i] = o.items[i].WithConfirmedDeliveryDate(d)
	}

	o.RefreshDeliveryStatus(today)
	return nil
}

// ChangeRequestedDeliveryDate moves the customer's requested delivery date.
func (o *Order) ChangeRequestedDeliveryDate(d kernel.Date, today kernel.Date) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	o.requestedDeliveryDate = d
	o.RefreshDeliveryStatus(today)
	return nil
}

// ScheduleInstallation sets the planned installation date.
func (o *Order) ScheduleInstallation(d kernel.Date) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if !d.IsPresent() {
		return errs.NewValueIsRequiredError("installScheduleDate")
	}

	o.installScheduleDate = d
	return nil
}

// CompleteInstallation records the date the installation finished.
func (o *Order) CompleteInstallation(d kernel.Date) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}
	if !d.IsPresent() {
		return errs.NewValueIsRequiredError("installCompleteDate")
	}

	o.installCompleteDate = d
	return nil
}

// Settle closes the order in the monthly settlement. Only installed orders
// can be settled.
func (o *Order) Settle() error {
	if err := o.status.ValidateMutable(); err != nil {
		return err
	}
	if !o.installCompleteDate.IsPresent() {
		return errs.NewValueIsInvalidErrorWithCause(
			"settlement status is invalid",
			errors.New("installation is not completed"),
		)
	}

	settled, err := o.settlementStatus.Settle()
	if err != nil {
		return err
	}

	o.settlementStatus = settled
	return nil
}

// Cancel moves the order to the terminal cancelled state.
func (o *Order) Cancel() error {
	cancelled, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = cancelled
	return nil
}

// RefreshDeliveryStatus rewrites the cached delivery status from the current
// fields and reports whether it changed. Untracked orders are left alone.
func (o *Order) RefreshDeliveryStatus(today kernel.Date) bool {
	if o.deliveryStatus == nil {
		return false
	}

	next := ComputeDeliveryStatus(o.Fields(), today)
	if *o.deliveryStatus == next {
		return false
	}

	o.deliveryStatus = &next
	return true
}

func (o *Order) ensureEditable() error {
	if err := o.status.ValidateMutable(); err != nil {
		return err
	}
	if o.settlementStatus == Settled {
		return ErrOrderIsSettled
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAffiliate(affiliate string) error {
	affiliate = strings.TrimSpace(affiliate)
	if affiliate == "" {
		return errs.NewValueIsRequiredError("affiliate")
	}
	o.affiliate = affiliate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []EquipmentItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]EquipmentItem, len(items))
	copy(o.items, items)
	return nil
}
