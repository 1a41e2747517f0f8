package model

import (
	"time"

	"github.com/google/uuid"
)

// ManagedUserModel mirrors the 'managed_users' table.
type ManagedUserModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                 string    `gorm:"type:varchar(255);unique;not null"`
	Name                  string    `gorm:"type:varchar(100);not null"`
	PasswordHash          string    `gorm:"type:varchar(255);not null"`
	AvatarURL             string    `gorm:"type:varchar(512)"`
	LastPasswordChangedAt time.Time `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManagedUserModel) TableName() string {
	return "managed_users"
}
