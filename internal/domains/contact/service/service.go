package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sharmoria/config"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/contact/model"
	"sharmoria/internal/domains/contact/model/dto"
	"sharmoria/internal/domains/contact/repository"
	notifModel "sharmoria/internal/domains/notification/model"
	notifRepo "sharmoria/internal/domains/notification/repository"
	"sharmoria/shared"
	"sharmoria/shared/cache"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/failure"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllContact = "contact:gets"
	cacheCountContact  = "contact:count"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ContactResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateContactStatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Contact
	notifRepo notifRepo.Notification
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Contact, notifRepo notifRepo.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:      repo,
		notifRepo: notifRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel()

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return fmt.Errorf("failed to create contact: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.queueNotification(c, contact)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
		shared.InvalidateCaches(c, s.cache, cacheCountContact)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contacts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contacts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContact, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact")

		return res, fmt.Errorf("failed to get contact: %w", err)
	}

	if contact.ID == constant.Empty {
		return res, failure.NotFound("contact not found") // nolint:wrapcheck
	}

	res.FromModel(contact)

	return res, nil
}

// UpdateStatus advances a contact through its workflow. Backward moves are
// rejected.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateContactStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	contact, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact")

		return fmt.Errorf("failed to get contact: %w", err)
	}

	if contact.ID == constant.Empty {
		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	if !model.CanTransition(contact.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot change contact status from %s to %s", contact.Status, req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact status")

		return fmt.Errorf("failed to update contact status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
		shared.InvalidateCaches(c, s.cache, cacheCountContact)
	}()

	return nil
}

// queueNotification writes a contact-received outbox row for the studio
// inbox. Failures only log; the contact itself is already saved.
func (s *serviceImpl) queueNotification(ctx context.Context, contact model.Contact) {
	payload, err := json.Marshal(map[string]any{
		"name":    contact.Name,
		"email":   contact.Email,
		"phone":   contact.Phone,
		"message": contact.Message,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal contact notification payload")

		return
	}

	now := timezone.Now()

	notification := notifModel.Notification{
		ID:        uuid.NewString(),
		Kind:      notifModel.KindContactReceived,
		Recipient: contact.Email,
		Payload:   payload,
		Status:    notifModel.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	if err := s.notifRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to queue contact notification")
	}
}
