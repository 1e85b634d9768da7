package dto

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
	"strings"
)

type CreateBookingRequest struct {
	GuestName     string `json:"guest_name"     validate:"required,max=100"`
	GuestPhone    string `json:"guest_phone"    validate:"required,max=20"`
	GuestEmail    string `json:"guest_email"    validate:"omitempty,email,max=100"`
	RoomTypeID    string `json:"room_type_id"   validate:"required,uuid"`
	CheckInDate   string `json:"check_in_date"  validate:"required,date"`
	CheckOutDate  string `json:"check_out_date" validate:"required,date"`
	Adults        int    `json:"adults"         validate:"omitempty,gte=1"`
	Children      int    `json:"children"       validate:"omitempty,gte=0"`
	BookingSource string `json:"booking_source" validate:"omitempty"`
}

// GuestCount applies the default of one adult.
func (c *CreateBookingRequest) GuestCount() (adults, children int) {
	adults = c.Adults
	if adults == 0 {
		adults = 1
	}

	return adults, c.Children
}

// UpdateBookingRequest carries only the fields a booking may change before check-in.
type UpdateBookingRequest struct {
	GuestName     string `json:"guest_name"     validate:"omitempty,max=100"`
	GuestPhone    string `json:"guest_phone"    validate:"omitempty,max=20"`
	CheckInDate   string `json:"check_in_date"  validate:"omitempty,date"`
	CheckOutDate  string `json:"check_out_date" validate:"omitempty,date"`
	Adults        *int   `json:"adults"         validate:"omitempty,gte=1"`
	Children      *int   `json:"children"       validate:"omitempty,gte=0"`
	BookingSource string `json:"booking_source" validate:"omitempty"`
}

func (u UpdateBookingRequest) Empty() bool {
	return u.GuestName == "" && u.GuestPhone == "" && u.CheckInDate == "" && u.CheckOutDate == "" &&
		u.Adults == nil && u.Children == nil && u.BookingSource == ""
}

type BookingResponse struct {
	ID             string  `json:"id"`
	BookingCode    string  `json:"booking_code"`
	GuestID        string  `json:"guest_id"`
	GuestName      string  `json:"guest_name"`
	GuestPhone     string  `json:"guest_phone"`
	RoomID         string  `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	ActualCheckIn  string  `json:"actual_check_in,omitempty"`
	ActualCheckOut string  `json:"actual_check_out,omitempty"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	Nights         int     `json:"nights"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	BookingSource  string  `json:"booking_source"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingCode = m.BookingCode
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.GuestPhone = m.GuestPhone
	r.RoomID = m.RoomID
	r.RoomNumber = m.RoomNumber
	r.CheckInDate = m.CheckInDate.String()
	r.CheckOutDate = m.CheckOutDate.String()
	r.Adults = m.Adults
	r.Children = m.Children
	r.Nights = m.Nights()
	r.TotalAmount = m.TotalAmount
	r.Status = m.Status.String()
	r.BookingSource = string(m.BookingSource)
	r.Metadata.FromModel(m.Metadata)

	if m.ActualCheckIn != nil {
		r.ActualCheckIn = timezone.Format(*m.ActualCheckIn, constant.DateFormat)
	}

	if m.ActualCheckOut != nil {
		r.ActualCheckOut = timezone.Format(*m.ActualCheckOut, constant.DateFormat)
	}
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = FromModels(models)
}

// ListFilter builds the where clause for booking lists. status is matched
// case-insensitively, date matches either planned date and search covers
// the booking code and the guest name and phone.
func ListFilter(status, date, search string) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    strings.ToLower(status),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if date != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "date_in", Field: model.FieldCheckInDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{ArgName: "date_out", Field: model.FieldCheckOutDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			},
		})
	}

	if search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "search_code", Field: model.FieldBookingCode, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{ArgName: "search_name", Field: model.FieldGuestName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.GuestTable},
				gDto.Filter{ArgName: "search_phone", Field: model.FieldGuestPhone, Value: search, Operator: gDto.FilterOperatorLike, Table: model.GuestTable},
			},
		})
	}

	return group
}

// TodayFilter matches bookings in status whose dateField is today.
func TodayFilter(dateField string, status model.Status) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: dateField, Value: gModel.DateOf(timezone.Today()), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
