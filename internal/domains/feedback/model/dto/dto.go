package dto

import (
	"frontdesk/internal/domains/feedback/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	GuestID       string `json:"guest_id"       validate:"required,uuid"`
	BookingID     string `json:"booking_id"     validate:"omitempty,uuid"`
	RoomRating    *int   `json:"room_rating"    validate:"omitempty,min=1,max=5"`
	ServiceRating *int   `json:"service_rating" validate:"omitempty,min=1,max=5"`
	OverallRating *int   `json:"overall_rating" validate:"omitempty,min=1,max=5"`
	Comments      string `json:"comments"       validate:"omitempty,max=2000"`
	FeedbackType  string `json:"feedback_type"  validate:"omitempty"`
}

func (c *CreateFeedbackRequest) Ratings() []*int {
	return []*int{c.RoomRating, c.ServiceRating, c.OverallRating}
}

func (c *CreateFeedbackRequest) ToModel(feedbackType model.Type, user string) model.Feedback {
	feedback := model.Feedback{
		ID:            uuid.NewString(),
		GuestID:       c.GuestID,
		RoomRating:    c.RoomRating,
		ServiceRating: c.ServiceRating,
		OverallRating: c.OverallRating,
		Comments:      c.Comments,
		FeedbackType:  feedbackType,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}

	if c.BookingID != "" {
		bookingID := c.BookingID
		feedback.BookingID = &bookingID
	}

	return feedback
}

type FeedbackResponse struct {
	ID            string `json:"id"`
	GuestID       string `json:"guest_id"`
	GuestName     string `json:"guest_name,omitempty"`
	BookingID     string `json:"booking_id,omitempty"`
	RoomRating    *int   `json:"room_rating"`
	ServiceRating *int   `json:"service_rating"`
	OverallRating *int   `json:"overall_rating"`
	Comments      string `json:"comments,omitempty"`
	FeedbackType  string `json:"feedback_type"`
	gDto.Metadata
}

func (r *FeedbackResponse) FromModel(m model.Feedback) {
	r.ID = m.ID
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.RoomRating = m.RoomRating
	r.ServiceRating = m.ServiceRating
	r.OverallRating = m.OverallRating
	r.Comments = m.Comments
	r.FeedbackType = string(m.FeedbackType)
	r.Metadata.FromModel(m.Metadata)

	if m.BookingID != nil {
		r.BookingID = *m.BookingID
	}
}

type GetFeedbackResponse struct {
	Feedback  []FeedbackResponse `json:"feedback"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetFeedbackResponse) FromModels(models []model.Feedback, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Feedback = make([]FeedbackResponse, len(models))
	for i, m := range models {
		r.Feedback[i].FromModel(m)
	}
}

func ListFilter(feedbackType, guestID string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.AddEq(model.FieldFeedbackType, model.TableName, strings.ToLower(feedbackType))
	filter.AddEq(model.FieldGuestID, model.TableName, guestID)

	return filter
}
