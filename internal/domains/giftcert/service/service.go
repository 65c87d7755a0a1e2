package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sharmoria/config"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/giftcert/model"
	"sharmoria/internal/domains/giftcert/model/dto"
	"sharmoria/internal/domains/giftcert/repository"
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
	cacheGetAllGiftCert = "giftcert:gets"
	cacheCountGiftCert  = "giftcert:count"
)

type GiftCertificate interface {
	Purchase(ctx context.Context, req dto.PurchaseRequest) (dto.GiftCertificateResponse, error)
	GetByCode(ctx context.Context, code string) (dto.GiftCertificateResponse, error)
	Redeem(ctx context.Context, req dto.RedeemRequest) (dto.GiftCertificateResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGiftCertificatesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo      repository.GiftCertificate
	notifRepo notifRepo.Notification
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.GiftCertificate, notifRepo notifRepo.Notification, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) GiftCertificate {
	return &serviceImpl{
		repo:      repo,
		notifRepo: notifRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Purchase(ctx context.Context, req dto.PurchaseRequest) (res dto.GiftCertificateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Purchase")
	defer scope.End()
	defer scope.TraceIfError(err)

	cert := req.ToModel()

	if err = s.repo.Insert(ctx, cert); err != nil {
		log.Error().Err(err).Msg("failed to create gift certificate")

		return res, fmt.Errorf("failed to create gift certificate: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.queueNotification(c, cert)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGiftCert)
		shared.InvalidateCaches(c, s.cache, cacheCountGiftCert)
	}()

	res.FromModel(cert)

	return res, nil
}

// GetByCode looks up a certificate for the redemption form. An active but
// expired certificate is reported as expired without mutating the row; the
// stored status catches up on redemption attempts.
func (s *serviceImpl) GetByCode(ctx context.Context, code string) (res dto.GiftCertificateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	cert, err := s.getByCode(ctx, code)
	if err != nil {
		return res, err
	}

	if cert.Status == model.StatusActive && cert.IsExpired(timezone.Now()) {
		cert.Status = model.StatusExpired
	}

	res.FromModel(cert)

	return res, nil
}

// Redeem marks an active, unexpired certificate as redeemed and returns it.
func (s *serviceImpl) Redeem(ctx context.Context, req dto.RedeemRequest) (res dto.GiftCertificateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Redeem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cert, err := s.getByCode(ctx, req.Code)
	if err != nil {
		return res, err
	}

	if cert.Status == model.StatusRedeemed {
		return res, failure.Conflict("gift certificate has already been redeemed") // nolint:wrapcheck
	}

	now := timezone.Now()

	if cert.Status == model.StatusExpired || cert.IsExpired(now) {
		if cert.Status == model.StatusActive {
			s.markExpired(ctx, cert)
		}

		return res, failure.Conflict("gift certificate has expired") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusRedeemed,
		model.FieldRedeemedAt:    now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(cert.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to redeem gift certificate")

		return res, fmt.Errorf("failed to redeem gift certificate: %w", err)
	}

	cert.Status = model.StatusRedeemed
	cert.RedeemedAt = sql.NullTime{Time: now, Valid: true}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGiftCert)
		shared.InvalidateCaches(c, s.cache, cacheCountGiftCert)
	}()

	res.FromModel(cert)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGiftCertificatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGiftCert, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gift certificates")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gift certificates")

		return res, fmt.Errorf("failed to count gift certificates: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gift certificates")

		return res, fmt.Errorf("failed to get gift certificates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gift certificates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGiftCert, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count gift certificates")

		return res, fmt.Errorf("failed to count gift certificates: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gift certificate count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getByCode(ctx context.Context, code string) (model.GiftCertificate, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    code,
				Table:    model.TableName,
			},
		},
	}

	cert, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gift certificate")

		return cert, fmt.Errorf("failed to get gift certificate: %w", err)
	}

	if cert.ID == constant.Empty {
		return cert, failure.NotFound("gift certificate not found") // nolint:wrapcheck
	}

	return cert, nil
}

func (s *serviceImpl) markExpired(ctx context.Context, cert model.GiftCertificate) {
	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusExpired,
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := s.repo.Update(ctx, updatedFields, shared.FilterByID(cert.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("code", cert.Code).Msg("failed to mark gift certificate as expired")
	}
}

func (s *serviceImpl) queueNotification(ctx context.Context, cert model.GiftCertificate) {
	payload, err := json.Marshal(map[string]any{
		"code":            cert.Code,
		"amount":          cert.Amount,
		"purchaser_name":  cert.PurchaserName,
		"recipient_name":  cert.RecipientName,
		"recipient_email": cert.RecipientEmail,
		"message":         cert.Message.String,
		"expires_at":      timezone.Format(cert.ExpiresAt, constant.DateFormat),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal gift certificate notification payload")

		return
	}

	now := timezone.Now()

	notification := notifModel.Notification{
		ID:        uuid.NewString(),
		Kind:      notifModel.KindGiftCertificate,
		Recipient: cert.RecipientEmail,
		Payload:   payload,
		Status:    notifModel.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}

	if err := s.notifRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to queue gift certificate notification")
	}
}
