package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/internal/domains/reservation/model"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	gRepo "salas/shared/repository"
	"salas/shared/types"
)

type Reservation interface {
	InsertConflictFree(ctx context.Context, model model.Reservation) (conflict bool, err error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	ExistsOverlap(ctx context.Context, roomID string, date types.DateOnly, start, end types.ClockTime) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches reservations of the given room, on the given date,
// whose half-open interval [start_time, end_time) intersects [start, end).
// Back-to-back slots sharing a boundary do not match.
func OverlapFilter(roomID string, date types.DateOnly, start, end types.ClockTime) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReservationDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_end",
				Field:    model.FieldStartTime,
				Value:    end,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_start",
				Field:    model.FieldEndTime,
				Value:    start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) ExistsOverlap(ctx context.Context, roomID string, date types.DateOnly, start, end types.ClockTime) (bool, error) {
	return repo.Exist(ctx, OverlapFilter(roomID, date, start, end)) //nolint:wrapcheck
}

// InsertConflictFree inserts the reservation unless an overlapping one
// already exists. Check and insert share one transaction on the write
// connection; the table's exclusion constraint closes the remaining race
// between concurrent transactions and surfaces as a conflict too.
func (repo *repositoryImpl) InsertConflictFree(ctx context.Context, res model.Reservation) (conflict bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertConflictFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback reservation transaction")
		}
	}()

	taken, err := repo.ExistTx(ctx, tx, OverlapFilter(res.RoomID, res.ReservationDate, res.StartTime, res.EndTime))
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping reservation: %w", err)
	}

	if taken {
		return true, nil
	}

	if err = repo.InsertTx(ctx, tx, res); err != nil {
		if isExclusionViolation(err) {
			return true, nil
		}

		return false, fmt.Errorf("failed to insert reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		if isExclusionViolation(err) {
			return true, nil
		}

		return false, fmt.Errorf("failed to commit reservation: %w", err)
	}

	return false, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation
}
