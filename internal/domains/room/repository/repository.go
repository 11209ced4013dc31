package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/room/model"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistNameOnFloor(ctx context.Context, name string, floor int, excludeID string) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExistNameOnFloor reports whether another room already uses the given name
// on the given floor. The name comparison is case-insensitive; excludeID is
// ignored when empty and otherwise exempts the room being updated.
func (repo *repositoryImpl) ExistNameOnFloor(ctx context.Context, name string, floor int, excludeID string) (bool, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldName,
			Value:    name,
			Operator: gDto.FilterOperatorEqFold,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldFloor,
			Value:    floor,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	})
}
