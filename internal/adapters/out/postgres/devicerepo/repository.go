// Package devicerepo stores push device registrations: one token per driver
// or customer id. It backs the notification worker's token lookups and is
// not part of any unit of work; registrations are independent of the
// delivery lifecycle.
package devicerepo

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRegistrationDTO is the database row binding an entity to its device
// token.
type DeviceRegistrationDTO struct {
	EntityID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceToken string    `gorm:"type:text;not null"`
	UpdatedAt   time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "device_registrations".
func (DeviceRegistrationDTO) TableName() string {
	return "device_registrations"
}

// GormDeviceDirectory implements ports.DeviceDirectory using GORM.
type GormDeviceDirectory struct {
	db *gorm.DB
}

// NewGormDeviceDirectory creates a device directory on the given connection.
func NewGormDeviceDirectory(db *gorm.DB) *GormDeviceDirectory {
	return &GormDeviceDirectory{db: db}
}

// LookupDeviceToken returns the token registered for the entity, or
// errs.ErrObjectNotFound (wrapped) when there is none.
func (d *GormDeviceDirectory) LookupDeviceToken(ctx context.Context, entityID kernel.UUID) (string, error) {
	if err := entityID.Validate(); err != nil {
		return "", err
	}

	var dto DeviceRegistrationDTO
	if err := d.db.WithContext(ctx).First(&dto, "entity_id = ?", entityID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("deviceRegistration", entityID.String())
		}
		return "", err
	}

	return dto.DeviceToken, nil
}

// RegisterDeviceToken stores or replaces the entity's token.
func (d *GormDeviceDirectory) RegisterDeviceToken(ctx context.Context, entityID kernel.UUID, token string) error {
	if err := entityID.Validate(); err != nil {
		return err
	}
	if token == "" {
		return errs.NewValueIsRequiredError("deviceToken")
	}

	dto := DeviceRegistrationDTO{
		EntityID:    entityID.Bytes(),
		DeviceToken: token,
		UpdatedAt:   time.Now(),
	}

	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"device_token", "updated_at"}),
		}).
		Create(&dto).Error
}
