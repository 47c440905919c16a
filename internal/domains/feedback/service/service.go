package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepo "hotel/internal/domains/booking/repository"
	"hotel/internal/domains/feedback/model/dto"
	"hotel/internal/domains/feedback/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Feedback interface {
	Create(ctx context.Context, req dto.CreateFeedbackRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFeedbackResponse, error)
}

type serviceImpl struct {
	repo        repository.Feedback
	guestRepo   guestRepo.Guest
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Feedback, guestRepo guestRepo.Guest, bookingRepo bookingRepo.Booking, otel otel.Otel) Feedback {
	return &serviceImpl{
		repo:        repo,
		guestRepo:   guestRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFeedbackRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if msg := req.Validate(); msg != "" {
		return 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if err = shared.AuthorizeGuest(ctx, int64(req.GuestID)); err != nil {
		return 0, err
	}

	exists, err := s.guestRepo.Exist(ctx, shared.FilterByID(int64(req.GuestID), guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to check guest existence")

		return 0, fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exists {
		return 0, failure.NotFound(dto.ErrGuestNotFound) //nolint:wrapcheck
	}

	if req.BookingID != nil {
		if err = s.ensureGuestBooking(ctx, int64(*req.BookingID), int64(req.GuestID)); err != nil {
			return 0, err
		}
	}

	id, err = s.repo.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to save feedback")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}) //nolint:wrapcheck
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count feedback")

		return res, fmt.Errorf("failed to count feedback: %w", err)
	}

	feedback, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get feedback")

		return res, fmt.Errorf("failed to get feedback: %w", err)
	}

	res.FromModels(feedback, total, params.Limit)

	return res, nil
}

// ensureGuestBooking requires the booking to exist and belong to the guest.
func (s *serviceImpl) ensureGuestBooking(ctx context.Context, bookingID, guestID int64) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
			gDto.Filter{Field: bookingModel.FieldGuestID, Value: guestID, Operator: gDto.FilterOperatorEq, Table: bookingModel.TableName},
		},
	}

	exists, err := s.bookingRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", bookingID).Msg("failed to check booking ownership")

		return fmt.Errorf("failed to check booking ownership: %w", err)
	}

	if !exists {
		return failure.NotFound(dto.ErrBookingNotFound) //nolint:wrapcheck
	}

	return nil
}
