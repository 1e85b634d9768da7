package dto

import (
	"frontdesk/internal/domains/bill/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/money"
	"frontdesk/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateBillRequest struct {
	BookingID    string  `json:"booking_id"    validate:"required,uuid"`
	RoomCharges  float64 `json:"room_charges"  validate:"gte=0"`
	FoodCharges  float64 `json:"food_charges"  validate:"gte=0"`
	OtherCharges float64 `json:"other_charges" validate:"gte=0"`
	TaxAmount    float64 `json:"tax_amount"    validate:"gte=0"`
}

// ToModel starts the bill as pending with a total equal to its charges.
func (c *CreateBillRequest) ToModel(guestID, user string) model.Bill {
	now := timezone.Now()

	bill := model.Bill{
		ID:            uuid.NewString(),
		BillNumber:    model.NewNumber(now),
		BookingID:     c.BookingID,
		GuestID:       guestID,
		RoomCharges:   money.Round(c.RoomCharges),
		FoodCharges:   money.Round(c.FoodCharges),
		OtherCharges:  money.Round(c.OtherCharges),
		TaxAmount:     money.Round(c.TaxAmount),
		PaymentStatus: model.PaymentPending,
		Metadata:      gModel.NewMetadata(now, user),
	}
	bill.TotalAmount = bill.Charges()

	return bill
}

type UpdateChargesRequest struct {
	RoomCharges  *float64 `json:"room_charges"  validate:"omitempty,gte=0"`
	FoodCharges  *float64 `json:"food_charges"  validate:"omitempty,gte=0"`
	OtherCharges *float64 `json:"other_charges" validate:"omitempty,gte=0"`
	TaxAmount    *float64 `json:"tax_amount"    validate:"omitempty,gte=0"`
}

func (u UpdateChargesRequest) Empty() bool {
	return u.RoomCharges == nil && u.FoodCharges == nil && u.OtherCharges == nil && u.TaxAmount == nil
}

func (u UpdateChargesRequest) Apply(bill *model.Bill) {
	if u.RoomCharges != nil {
		bill.RoomCharges = money.Round(*u.RoomCharges)
	}

	if u.FoodCharges != nil {
		bill.FoodCharges = money.Round(*u.FoodCharges)
	}

	if u.OtherCharges != nil {
		bill.OtherCharges = money.Round(*u.OtherCharges)
	}

	if u.TaxAmount != nil {
		bill.TaxAmount = money.Round(*u.TaxAmount)
	}
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=50"`
	TransactionID string `json:"transaction_id" validate:"omitempty,max=100"`
}

type CreateItemRequest struct {
	ItemType    string  `json:"item_type"   validate:"omitempty"`
	Description string  `json:"description" validate:"required,max=255"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
	Quantity    int     `json:"quantity"    validate:"omitempty,gte=1"`
}

func (c *CreateItemRequest) ToModel(billID string, itemType model.ItemType, user string) model.Item {
	quantity := c.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := model.Item{
		ID:          uuid.NewString(),
		BillID:      billID,
		ItemType:    itemType,
		Description: c.Description,
		UnitPrice:   money.Round(c.UnitPrice),
		Quantity:    quantity,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
	item.TotalPrice = item.LineTotal()

	return item
}

type UpdateItemRequest struct {
	ItemType    string   `json:"item_type"   validate:"omitempty"`
	Description string   `json:"description" validate:"omitempty,max=255"`
	UnitPrice   *float64 `json:"unit_price"  validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=1"`
}

func (u UpdateItemRequest) Empty() bool {
	return u.ItemType == "" && u.Description == "" && u.UnitPrice == nil && u.Quantity == nil
}

// Apply copies the set fields onto item and refreshes its line total.
// ItemType must already be validated.
func (u UpdateItemRequest) Apply(item *model.Item) {
	if u.ItemType != "" {
		item.ItemType = model.ItemType(u.ItemType)
	}

	if u.Description != "" {
		item.Description = u.Description
	}

	if u.UnitPrice != nil {
		item.UnitPrice = money.Round(*u.UnitPrice)
	}

	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}

	item.TotalPrice = item.LineTotal()
}

type ItemResponse struct {
	ID          string  `json:"id"`
	ItemType    string  `json:"item_type"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}

func (r *ItemResponse) FromModel(m model.Item) {
	r.ID = m.ID
	r.ItemType = string(m.ItemType)
	r.Description = m.Description
	r.UnitPrice = m.UnitPrice
	r.Quantity = m.Quantity
	r.TotalPrice = m.LineTotal()
}

type BillResponse struct {
	ID            string         `json:"id"`
	BillNumber    string         `json:"bill_number"`
	BookingID     string         `json:"booking_id"`
	BookingCode   string         `json:"booking_code,omitempty"`
	GuestID       string         `json:"guest_id"`
	GuestName     string         `json:"guest_name,omitempty"`
	RoomCharges   float64        `json:"room_charges"`
	FoodCharges   float64        `json:"food_charges"`
	OtherCharges  float64        `json:"other_charges"`
	TaxAmount     float64        `json:"tax_amount"`
	TotalAmount   float64        `json:"total_amount"`
	PaymentStatus string         `json:"payment_status"`
	PaymentMethod string         `json:"payment_method,omitempty"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Items         []ItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (r *BillResponse) FromModel(m model.Bill, items []model.Item) {
	r.ID = m.ID
	r.BillNumber = m.BillNumber
	r.BookingID = m.BookingID
	r.BookingCode = m.BookingCode
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.RoomCharges = m.RoomCharges
	r.FoodCharges = m.FoodCharges
	r.OtherCharges = m.OtherCharges
	r.TaxAmount = m.TaxAmount
	r.TotalAmount = m.TotalAmount
	r.PaymentStatus = string(m.PaymentStatus)
	r.PaymentMethod = m.PaymentMethod
	r.TransactionID = m.TransactionID
	r.Metadata.FromModel(m.Metadata)

	if len(items) > 0 {
		r.Items = make([]ItemResponse, len(items))
		for i, item := range items {
			r.Items[i].FromModel(item)
		}
	}
}

func FromModels(models []model.Bill) []BillResponse {
	res := make([]BillResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m, nil)
	}

	return res
}

type GetBillsResponse struct {
	Bills     []BillResponse `json:"bills"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBillsResponse) FromModels(models []model.Bill, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bills = FromModels(models)
}

func ListFilter(paymentStatus string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.AddEq(model.FieldPaymentStatus, model.TableName, strings.ToLower(paymentStatus))

	return filter
}
