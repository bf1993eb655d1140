package admins

import "time"

type Admin struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string
	Email        string  `gorm:"not null;uniqueIndex:idx_admins_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_admins_google_sub"`
	Role         string  `gorm:"not null;default:'admin'"`
	LastLoginAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
