package dto

import (
	"hotel/internal/domains/feedback/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Thank you for your feedback!"

	ErrMissingFields    = "Missing required fields: guest_id, rating, comment."
	ErrInvalidRating    = "Rating must be a number between 1 and 5."
	ErrInvalidBooking   = "Booking ID must be a number if provided."
	ErrGuestNotFound    = "Guest not found."
	ErrBookingNotFound  = "Associated booking not found for this guest."
	ErrInvalidReference = "Invalid Guest ID or Booking ID provided."
)

var FilterSpecs = []gDto.FilterSpec{
	{Param: "rating", Field: model.FieldRating, Table: model.TableName, Parser: gDto.ParseInt},
	{Param: "min_rating", Field: model.FieldRating, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseInt},
	{Param: "guest_name", Field: model.GuestNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "date_from", Field: model.FieldFeedbackDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldFeedbackDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"feedback_id":   model.TableName + "." + model.FieldID,
	"rating":        model.TableName + "." + model.FieldRating,
	"feedback_date": model.TableName + "." + model.FieldFeedbackDate,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldFeedbackDate, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldID, Dir: gDto.SortDirDesc},
}

type CreateFeedbackRequest struct {
	GuestID   gDto.ID  `json:"guest_id"`
	BookingID *gDto.ID `json:"booking_id"`
	Rating    *int     `json:"rating"`
	Comment   string   `json:"comment"`
}

// Validate returns the client message for the first violated rule, or an empty string.
func (c *CreateFeedbackRequest) Validate() string {
	if c.GuestID == 0 || c.Rating == nil || strings.TrimSpace(c.Comment) == "" {
		return ErrMissingFields
	}

	if *c.Rating < model.MinRating || *c.Rating > model.MaxRating {
		return ErrInvalidRating
	}

	if c.BookingID != nil && *c.BookingID <= 0 {
		return ErrInvalidBooking
	}

	return ""
}

func (c *CreateFeedbackRequest) ToModel(user string) model.Feedback {
	return model.Feedback{
		GuestID:      int64(c.GuestID),
		BookingID:    shared.NullInt64(c.BookingID.Int64Ptr()),
		Rating:       *c.Rating,
		Comment:      strings.TrimSpace(c.Comment),
		FeedbackDate: timezone.Today(),
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

type FeedbackResponse struct {
	ID           int64   `json:"feedback_id"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
	FeedbackDate string  `json:"feedback_date"`
	GuestID      int64   `json:"guest_id"`
	GuestName    string  `json:"guest_name"`
	BookingID    *int64  `json:"booking_id"`
	RoomType     *string `json:"room_type"`
}

func (f *FeedbackResponse) FromModel(detail model.FeedbackDetail) {
	f.ID = detail.ID
	f.Rating = detail.Rating
	f.Comment = detail.Comment
	f.FeedbackDate = timezone.FormatDate(detail.FeedbackDate)
	f.GuestID = detail.GuestID
	f.GuestName = detail.GuestName
	f.BookingID = shared.Int64Ptr(detail.BookingID)
	f.RoomType = shared.StringPtr(detail.RoomType)
}

type GetFeedbackResponse struct {
	Feedback  []FeedbackResponse `json:"feedback"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetFeedbackResponse) FromModels(models []model.FeedbackDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Feedback = make([]FeedbackResponse, len(models))
	for i, mod := range models {
		g.Feedback[i].FromModel(mod)
	}
}
