package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubCategory is a named entry owned by exactly one Category. The ID is
// assigned by the store when the entry is appended.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category represents a top-level taxonomy node. Its subcategories are
// embedded in the row and read/replaced together with it, never addressed
// independently.
type Category struct {
	ID            string                           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string                           `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	SubCategories datatypes.JSONSlice[SubCategory] `json:"subCategories"`
	gorm.Model
}
