package model

import (
	"frontdesk/shared/model"
	"frontdesk/shared/money"
	"slices"
	"strconv"
	"time"
)

const (
	TableName   = "bills"
	EntityName  = "bill"
	CachePrefix = "bill:"

	FieldID            = "id"
	FieldBillNumber    = "bill_number"
	FieldBookingID     = "booking_id"
	FieldGuestID       = "guest_id"
	FieldRoomCharges   = "room_charges"
	FieldFoodCharges   = "food_charges"
	FieldOtherCharges  = "other_charges"
	FieldTaxAmount     = "tax_amount"
	FieldTotalAmount   = "total_amount"
	FieldPaymentStatus = "payment_status"
	FieldPaymentMethod = "payment_method"
	FieldTransactionID = "transaction_id"
	FieldCreatedAt     = "created_at"

	ItemTableName    = "bill_items"
	ItemEntityName   = "bill_item"
	FieldBillID      = "bill_id"
	FieldItemType    = "item_type"
	FieldDescription = "description"
	FieldUnitPrice   = "unit_price"
	FieldQuantity    = "quantity"
	FieldTotalPrice  = "total_price"

	numberPrefix = "BILL"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
)

var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentPartial}

func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	status := PaymentStatus(value)

	return status, slices.Contains(PaymentStatuses, status)
}

type ItemType string

const (
	ItemRoom    ItemType = "room"
	ItemFood    ItemType = "food"
	ItemService ItemType = "service"
	ItemOther   ItemType = "other"
)

var ItemTypes = []ItemType{ItemRoom, ItemFood, ItemService, ItemOther}

// ParseItemType maps an empty value to other.
func ParseItemType(value string) (ItemType, bool) {
	if value == "" {
		return ItemOther, true
	}

	itemType := ItemType(value)

	return itemType, slices.Contains(ItemTypes, itemType)
}

type Bill struct {
	ID            string        `db:"id"`
	BillNumber    string        `db:"bill_number"`
	BookingID     string        `db:"booking_id"`
	GuestID       string        `db:"guest_id"`
	RoomCharges   float64       `db:"room_charges"`
	FoodCharges   float64       `db:"food_charges"`
	OtherCharges  float64       `db:"other_charges"`
	TaxAmount     float64       `db:"tax_amount"`
	TotalAmount   float64       `db:"total_amount"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	PaymentMethod string        `db:"payment_method"`
	TransactionID string        `db:"transaction_id"`
	BookingCode   string        `column:"booking_code" db:"booking_code" table:"room_bookings"`
	GuestName     string        `column:"name"         db:"guest_name"   table:"guests"`
	model.Metadata
}

func (Bill) GetJoinQuery() string {
	return "JOIN room_bookings ON room_bookings.id = bills.booking_id JOIN guests ON guests.id = bills.guest_id"
}

func (b Bill) Charges() float64 {
	return money.Sum(b.RoomCharges, b.FoodCharges, b.OtherCharges, b.TaxAmount)
}

// Total is the charges plus every line total of items.
func (b Bill) Total(items []Item) float64 {
	amounts := make([]float64, 0, len(items)+1)
	amounts = append(amounts, b.Charges())

	for _, item := range items {
		amounts = append(amounts, item.LineTotal())
	}

	return money.Sum(amounts...)
}

func NewNumber(now time.Time) string {
	return numberPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}

type Item struct {
	ID          string   `db:"id"`
	BillID      string   `db:"bill_id"`
	ItemType    ItemType `db:"item_type"`
	Description string   `db:"description"`
	UnitPrice   float64  `db:"unit_price"`
	Quantity    int      `db:"quantity"`
	TotalPrice  float64  `db:"total_price"`
	model.Metadata
}

func (i Item) LineTotal() float64 {
	return money.Multiply(i.UnitPrice, i.Quantity)
}
