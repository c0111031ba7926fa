package models

import "gorm.io/gorm"

// RoleUser is the role assigned to every account created through signup.
const RoleUser = "user"

// User represents a registered account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role       string `json:"role" gorm:"type:varchar(20)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
