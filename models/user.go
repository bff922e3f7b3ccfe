package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GroupAdministrators = "Administrators"
	GroupRedactors      = "Redactors"
)

// Group mirrors the auth groups used for role checks. Membership in
// Administrators or Redactors is what the authorization predicates look at.
type Group struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

type User struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	IsSuperuser bool           `json:"is_superuser" gorm:"default:false"`
	Groups      []Group        `json:"groups,omitempty" gorm:"many2many:user_groups;"`
	Profile     *Profile       `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// AfterSave keeps the one-profile-per-user invariant: a profile is created on
// first save and repaired on any later save if it went missing.
func (u *User) AfterSave(tx *gorm.DB) error {
	var profile Profile
	return tx.Where(Profile{UserID: u.ID}).FirstOrCreate(&profile).Error
}
