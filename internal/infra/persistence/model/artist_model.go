package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtistModel mirrors the 'artists' table.
type ArtistModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Photo        string    `gorm:"type:text"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ArtistModel) TableName() string {
	return "artists"
}
