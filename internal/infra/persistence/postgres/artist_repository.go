// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tattooer/internal/domain/entity"
	domainerrors "tattooer/internal/domain/errors"
	"tattooer/internal/domain/repository"
	"tattooer/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// artistRepository implements repository.ArtistRepository using GORM.
type artistRepository struct {
	db *gorm.DB
}

// NewArtistRepository is the constructor for artistRepository.
func NewArtistRepository(db *gorm.DB) repository.ArtistRepository {
	return &artistRepository{db: db}
}

// FindByID retrieves a single artist by their unique ID.
func (repo *artistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error) {
	var artistM model.ArtistModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&artistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by id")
	}

	return toArtistDomain(&artistM), nil
}

// FindByEmail retrieves a single artist by their email address.
func (repo *artistRepository) FindByEmail(ctx context.Context, email string) (*entity.Artist, error) {
	var artistM model.ArtistModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&artistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArtistNotFound
		}

		return nil, errors.Wrap(err, "failed to find artist by email")
	}

	return toArtistDomain(&artistM), nil
}

// Create persists a new artist entity to the database.
func (repo *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	artistM := fromArtistDomain(artist)

	if err := repo.db.WithContext(ctx).Create(artistM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrArtistAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required artist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create artist")
	}

	artist.CreatedAt = artistM.CreatedAt
	artist.UpdatedAt = artistM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toArtistDomain(data *model.ArtistModel) *entity.Artist {
	if data == nil {
		return nil
	}

	return &entity.Artist{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Photo:        data.Photo,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromArtistDomain(data *entity.Artist) *model.ArtistModel {
	if data == nil {
		return nil
	}

	return &model.ArtistModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Photo:        data.Photo,
		PasswordHash: data.PasswordHash,
	}
}
