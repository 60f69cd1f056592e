package domain

import "time"

type AdminRole string

const (
	RoleAdmin  AdminRole = "admin"
	RoleEditor AdminRole = "editor"
)

type Admin struct {
	ID           uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password;size:255;not null"`
	Role         AdminRole  `json:"role" gorm:"type:enum('admin','editor');default:'editor'"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	LastLoginIP  string     `json:"last_login_ip" gorm:"size:45"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// AdminToken is an opaque bearer token issued at login, one per device name.
type AdminToken struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	AdminID    uint64    `json:"admin_id" gorm:"not null;index"`
	Token      string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	DeviceName string    `json:"device_name" gorm:"size:100;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}
