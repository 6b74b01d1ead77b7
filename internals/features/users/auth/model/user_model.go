package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL users
// =========================================================

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash *string    `gorm:"column:password_hash;type:text" json:"-"`
	AvatarURL    *string    `gorm:"column:avatar_url;type:text" json:"avatar_url,omitempty"`
	RoleID       *uuid.UUID `gorm:"column:role_id;type:uuid;index" json:"role_id,omitempty"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

func (User) TableName() string { return "users" }

// SetPassword stores a bcrypt hash; the plaintext is never persisted.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s := string(hash)
	u.PasswordHash = &s
	return nil
}

// CheckPassword is false for password-less accounts (Google sign-in only).
func (u User) CheckPassword(plain string) bool {
	if u.PasswordHash == nil || *u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(plain)) == nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if !u.IsActive {
		u.IsActive = true
	}
	return nil
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// =========================================================
// MODEL roles
// =========================================================

type Role struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        *string        `gorm:"column:name;type:varchar(50);uniqueIndex" json:"name,omitempty"`
	Description *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	Permissions datatypes.JSON `gorm:"column:permissions;type:jsonb" json:"permissions,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Role) TableName() string { return "roles" }
