package models

import "time"

// User is a login identity. Password always holds a bcrypt hash,
// never the plaintext.
type User struct {
	UserID             int        `gorm:"primaryKey;autoIncrement" json:"userId"`
	Username           string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password           string     `gorm:"type:varchar(100);not null" json:"-"`
	LastPasswordChange *time.Time `json:"lastPasswordChange,omitempty"`
	IsActive           bool       `gorm:"not null" json:"isActive"`
	RoleID             int        `gorm:"index" json:"roleId"`

	Role *Role `gorm:"foreignKey:RoleID;references:RoleID" json:"role,omitempty"`
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}

// Role names a coarse permission group such as Admin or Customer.
type Role struct {
	RoleID   int    `gorm:"primaryKey;autoIncrement" json:"roleId"`
	RoleName string `gorm:"type:varchar(30);not null" json:"roleName"`
	IsActive bool   `gorm:"not null" json:"isActive"`
}

// TableName returns the table name for Role
func (r *Role) TableName() string {
	return "roles"
}
