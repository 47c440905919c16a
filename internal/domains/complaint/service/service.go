package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/complaint/model"
	"hotel/internal/domains/complaint/model/dto"
	"hotel/internal/domains/complaint/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	staffModel "hotel/internal/domains/staff/model"
	staffRepo "hotel/internal/domains/staff/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Complaint interface {
	Create(ctx context.Context, req dto.CreateComplaintRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetComplaintsResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Complaint
	guestRepo guestRepo.Guest
	staffRepo staffRepo.Staff
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(
	repo repository.Complaint,
	guestRepo guestRepo.Guest,
	staffRepo staffRepo.Staff,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Complaint {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		staffRepo: staffRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateComplaintRequest) (id int64, err error) {
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

	complaint := req.ToModel(s.resolveStaff(ctx, req.StaffInfo), shared.GetActor(ctx))

	id, err = s.repo.Insert(ctx, complaint)
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to submit complaint")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}) //nolint:wrapcheck
	}

	complaint.ID = id

	var payload dto.ComplaintResponse
	payload.FromModel(complaint)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.Complaint, kafka.NewEvent(kafka.EventComplaintCreated, id, payload))
	s.invalidateStats(ctx)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetComplaintsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count complaints")

		return res, fmt.Errorf("failed to count complaints: %w", err)
	}

	complaints, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get complaints")

		return res, fmt.Errorf("failed to get complaints: %w", err)
	}

	res.FromModels(complaints, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Statuses, req.Status) {
		return failure.BadRequestFromString(dto.ErrInvalidStatus) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	complaint, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("complaintId", id).Msg("failed to get complaint")

		return fmt.Errorf("failed to get complaint: %w", err)
	}

	if complaint.ID == 0 {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	if complaint.Status == req.Status {
		return nil
	}

	fields := shared.TransformFields(dto.StatusUpdate{Status: req.Status}, shared.GetActor(ctx))

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Int64("complaintId", id).Msg("failed to update complaint status")

		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	s.invalidateStats(ctx)

	return nil
}

// resolveStaff maps free-form staff info onto a staff id. A numeric value is tried as an id first,
// then the value is matched case-insensitively against "first last". Any miss or lookup failure
// yields nil so the complaint is still recorded.
func (s *serviceImpl) resolveStaff(ctx context.Context, info string) *int64 {
	info = strings.TrimSpace(info)
	if info == "" {
		return nil
	}

	if id, err := strconv.ParseInt(info, 10, 64); err == nil && id > 0 {
		staff, err := s.staffRepo.Get(ctx, shared.FilterByID(id, staffModel.FieldID, staffModel.TableName))
		if err != nil {
			log.Warn().Err(err).Str("staffInfo", info).Msg("staff lookup by id failed")
		} else if staff.ID != 0 {
			return &staff.ID
		}
	}

	params := gDto.QueryParams{
		Limit:  1,
		Orders: []gDto.Sort{{Column: staffModel.TableName + "." + staffModel.FieldID, Dir: gDto.SortDirAsc}},
	}
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{ArgName: "staff_info", Field: staffModel.FullNameExpr, Value: info, Operator: gDto.FilterOperatorLike},
		},
	}

	staff, err := s.staffRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Warn().Err(err).Str("staffInfo", info).Msg("staff lookup by name failed")

		return nil
	}

	if len(staff) == 0 {
		log.Warn().Str("staffInfo", info).Msg("no staff member matches complaint info")

		return nil
	}

	return &staff[0].ID
}

func (s *serviceImpl) invalidateStats(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheKeyDashboardStats)
	}()
}
