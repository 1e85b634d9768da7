package model

import (
	"frontdesk/shared/model"
	"slices"
)

const (
	TableName   = "feedback"
	EntityName  = "feedback"
	CachePrefix = "feedback:"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldBookingID     = "booking_id"
	FieldRoomRating    = "room_rating"
	FieldServiceRating = "service_rating"
	FieldOverallRating = "overall_rating"
	FieldFeedbackType  = "feedback_type"
	FieldCreatedAt     = "created_at"

	MinRating = 1
	MaxRating = 5
)

type Type string

const (
	TypeCheckout Type = "checkout"
	TypeGeneral  Type = "general"
)

var Types = []Type{TypeCheckout, TypeGeneral}

// ParseType maps an empty value to checkout.
func ParseType(value string) (Type, bool) {
	if value == "" {
		return TypeCheckout, true
	}

	feedbackType := Type(value)

	return feedbackType, slices.Contains(Types, feedbackType)
}

type Feedback struct {
	ID            string  `db:"id"`
	GuestID       string  `db:"guest_id"`
	BookingID     *string `db:"booking_id"`
	RoomRating    *int    `db:"room_rating"`
	ServiceRating *int    `db:"service_rating"`
	OverallRating *int    `db:"overall_rating"`
	Comments      string  `db:"comments"`
	FeedbackType  Type    `db:"feedback_type"`
	GuestName     string  `column:"name" db:"guest_name" table:"guests"`
	model.Metadata
}

func (Feedback) GetJoinQuery() string {
	return "JOIN guests ON guests.id = feedback.guest_id"
}

// ValidRating accepts a missing rating.
func ValidRating(rating *int) bool {
	return rating == nil || (*rating >= MinRating && *rating <= MaxRating)
}
