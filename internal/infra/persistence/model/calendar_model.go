package model

import (
	"time"

	"github.com/google/uuid"
)

// BlockTimeModel mirrors the 'block_times' table. Recurring blocks carry the
// repeat columns; one-off blocks leave RepeatCadence NULL.
type BlockTimeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255)"`
	StartAt       time.Time `gorm:"not null;index"`
	EndAt         time.Time `gorm:"not null"`
	RepeatCadence *string   `gorm:"type:varchar(10)"`
	RepeatCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlockTimeModel) TableName() string {
	return "block_times"
}

// ScheduleChangeModel mirrors the 'schedule_changes' table, holding both
// book-off days and temporary schedule changes. StartDay/EndDay are
// inclusive day boundaries.
type ScheduleChangeModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind          string    `gorm:"type:varchar(20);not null"`
	Title         string    `gorm:"type:varchar(255)"`
	StartDay      time.Time `gorm:"not null;index"`
	EndDay        time.Time `gorm:"not null"`
	RepeatCadence *string   `gorm:"type:varchar(10)"`
	RepeatCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleChangeModel) TableName() string {
	return "schedule_changes"
}

// ConventionModel mirrors the 'conventions' table.
type ConventionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	City      string    `gorm:"type:varchar(100)"`
	StartDay  time.Time `gorm:"not null;index"`
	EndDay    time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConventionModel) TableName() string {
	return "conventions"
}

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ArtistID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName string    `gorm:"type:varchar(100)"`
	Title      string    `gorm:"type:varchar(255)"`
	StartAt    time.Time `gorm:"not null;index"`
	EndAt      time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
