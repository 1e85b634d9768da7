package model

import "time"

type EventType string

const (
	EventCreated    EventType = "booking.created"
	EventCheckedIn  EventType = "booking.checked_in"
	EventCheckedOut EventType = "booking.checked_out"
	EventCancelled  EventType = "booking.cancelled"
)

// Event is published after a lifecycle transaction commits. Consumers key on BookingID.
type Event struct {
	Type        EventType `json:"type"`
	BookingID   string    `json:"booking_id"`
	BookingCode string    `json:"booking_code"`
	GuestID     string    `json:"guest_id"`
	RoomID      string    `json:"room_id"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewEvent(eventType EventType, booking Booking, occurredAt time.Time) Event {
	return Event{
		Type:        eventType,
		BookingID:   booking.ID,
		BookingCode: booking.BookingCode,
		GuestID:     booking.GuestID,
		RoomID:      booking.RoomID,
		Status:      booking.Status,
		TotalAmount: booking.TotalAmount,
		OccurredAt:  occurredAt,
	}
}
