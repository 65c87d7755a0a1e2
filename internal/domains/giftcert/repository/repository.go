package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sharmoria/infras/otel"
	"sharmoria/infras/postgres"
	"sharmoria/internal/domains/giftcert/model"
	gDto "sharmoria/shared/dto"
	gRepo "sharmoria/shared/repository"
)

type GiftCertificate interface {
	Insert(ctx context.Context, model model.GiftCertificate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GiftCertificate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GiftCertificate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GiftCertificate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) GiftCertificate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GiftCertificate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
