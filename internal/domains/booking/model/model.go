package model

import (
	"frontdesk/shared/model"
	"slices"
	"time"
)

const (
	TableName   = "room_bookings"
	EntityName  = "booking"
	CachePrefix = "booking:"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldBookingCode    = "booking_code"
	FieldCheckInDate    = "check_in_date"
	FieldCheckOutDate   = "check_out_date"
	FieldActualCheckIn  = "actual_check_in"
	FieldActualCheckOut = "actual_check_out"
	FieldAdults         = "adults"
	FieldChildren       = "children"
	FieldTotalAmount    = "total_amount"
	FieldStatus         = "status"
	FieldBookingSource  = "booking_source"
	FieldCreatedAt      = "created_at"

	GuestTable      = "guests"
	FieldGuestName  = "name"
	FieldGuestPhone = "phone"
	RoomTable       = "rooms"
	FieldRoomNumber = "room_number"

	codePrefix = "BK"
)

type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

var transitions = map[Status][]Status{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func ParseStatus(value string) (Status, bool) {
	status := Status(value)

	return status, slices.Contains(Statuses, status)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// Terminal bookings never change again.
func (s Status) Terminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

type Source string

const (
	SourceWebsite Source = "website"
	SourcePhone   Source = "phone"
	SourceWalkIn  Source = "walk_in"
	SourceChatbot Source = "chatbot"
)

var Sources = []Source{SourceWebsite, SourcePhone, SourceWalkIn, SourceChatbot}

// ParseSource treats an empty value as website.
func ParseSource(value string) (Source, bool) {
	if value == "" {
		return SourceWebsite, true
	}

	source := Source(value)

	return source, slices.Contains(Sources, source)
}

type Booking struct {
	ID             string     `db:"id"`
	GuestID        string     `db:"guest_id"`
	RoomID         string     `db:"room_id"`
	BookingCode    string     `db:"booking_code"`
	CheckInDate    model.Date `db:"check_in_date"`
	CheckOutDate   model.Date `db:"check_out_date"`
	ActualCheckIn  *time.Time `db:"actual_check_in"`
	ActualCheckOut *time.Time `db:"actual_check_out"`
	Adults         int        `db:"adults"`
	Children       int        `db:"children"`
	TotalAmount    float64    `db:"total_amount"`
	Status         Status     `db:"status"`
	BookingSource  Source     `db:"booking_source"`
	GuestName      string     `column:"name"         db:"guest_name"     table:"guests"`
	GuestPhone     string     `column:"phone"        db:"guest_phone"    table:"guests"`
	RoomNumber     string     `column:"room_number"  db:"room_number"    table:"rooms"`
	RoomTypeID     string     `column:"room_type_id" db:"room_type_id"   table:"rooms"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.id = room_bookings.guest_id JOIN rooms ON rooms.id = room_bookings.room_id"
}

// Nights is the number of nights between the planned dates.
func (b Booking) Nights() int {
	return b.CheckInDate.DaysUntil(b.CheckOutDate)
}

// NewCode derives a booking code from 8 hex characters of entropy.
func NewCode(hex string) string {
	return codePrefix + hex
}
