package postgres

import (
	"context"
	"time"

	"tattooer/internal/domain/entity"
	"tattooer/internal/domain/repository"
	"tattooer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The calendar repositories share one range convention: a query returns every
// one-off record whose span intersects [start, end], plus every recurring
// template whose base occurrence starts before end. Occurrence filtering is
// the aggregator's job, not the database's.

// blockTimeRepository implements repository.BlockTimeRepository using GORM.
type blockTimeRepository struct {
	db *gorm.DB
}

// NewBlockTimeRepository is the constructor for blockTimeRepository.
func NewBlockTimeRepository(db *gorm.DB) repository.BlockTimeRepository {
	return &blockTimeRepository{db: db}
}

func (repo *blockTimeRepository) FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.BlockTime, error) {
	var rows []*model.BlockTimeModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("(start_at <= ? AND end_at >= ?) OR (repeat_cadence IS NOT NULL AND start_at <= ?)", end, start, end).
		Order("start_at").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find block times in range")
	}

	out := make([]*entity.BlockTime, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBlockTimeDomain(row))
	}

	return out, nil
}

// scheduleRepository implements repository.ScheduleRepository using GORM.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.ScheduleChange, error) {
	var rows []*model.ScheduleChangeModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("(start_day <= ? AND end_day >= ?) OR (repeat_cadence IS NOT NULL AND start_day <= ?)", end, start, end).
		Order("start_day").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedule changes in range")
	}

	out := make([]*entity.ScheduleChange, 0, len(rows))
	for _, row := range rows {
		out = append(out, toScheduleChangeDomain(row))
	}

	return out, nil
}

// conventionRepository implements repository.ConventionRepository using GORM.
type conventionRepository struct {
	db *gorm.DB
}

// NewConventionRepository is the constructor for conventionRepository.
func NewConventionRepository(db *gorm.DB) repository.ConventionRepository {
	return &conventionRepository{db: db}
}

func (repo *conventionRepository) FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.Convention, error) {
	var rows []*model.ConventionModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("start_day <= ? AND end_day >= ?", end, start).
		Order("start_day").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conventions in range")
	}

	out := make([]*entity.Convention, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Convention{
			ID:       row.ID,
			ArtistID: row.ArtistID,
			Name:     row.Name,
			City:     row.City,
			StartDay: row.StartDay,
			EndDay:   row.EndDay,
		})
	}

	return out, nil
}

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) FindInRange(ctx context.Context, artistID uuid.UUID, start, end time.Time) ([]*entity.Session, error) {
	var rows []*model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Where("start_at <= ? AND end_at >= ?", end, start).
		Order("start_at").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sessions in range")
	}

	out := make([]*entity.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSessionDomain(row))
	}

	return out, nil
}

func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var row model.SessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&row), nil
}

// --- Mapper Functions ---

func toBlockTimeDomain(data *model.BlockTimeModel) *entity.BlockTime {
	return &entity.BlockTime{
		ID:       data.ID,
		ArtistID: data.ArtistID,
		Title:    data.Title,
		Start:    data.StartAt,
		End:      data.EndAt,
		Repeat:   toRepeatDomain(data.RepeatCadence, data.RepeatCount),
	}
}

func toScheduleChangeDomain(data *model.ScheduleChangeModel) *entity.ScheduleChange {
	return &entity.ScheduleChange{
		ID:       data.ID,
		ArtistID: data.ArtistID,
		Kind:     entity.ScheduleChangeKind(data.Kind),
		Title:    data.Title,
		StartDay: data.StartDay,
		EndDay:   data.EndDay,
		Repeat:   toRepeatDomain(data.RepeatCadence, data.RepeatCount),
	}
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:         data.ID,
		ArtistID:   data.ArtistID,
		ClientName: data.ClientName,
		Title:      data.Title,
		Start:      data.StartAt,
		End:        data.EndAt,
		Status:     entity.SessionStatus(data.Status),
	}
}

func toRepeatDomain(cadence *string, count int) *entity.Repeat {
	if cadence == nil || *cadence == "" {
		return nil
	}

	return &entity.Repeat{
		Cadence: entity.RepeatCadence(*cadence),
		Count:   count,
	}
}
