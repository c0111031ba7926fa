package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Variant is a purchasable configuration of a product with its own price and
// stock count.
type Variant struct {
	Ram   string  `json:"ram"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

// Product represents a catalog entry. Category and SubCategory are free-text
// references, not foreign keys. Variants and image references are embedded in
// the row so the whole aggregate is written in a single atomic replace.
type Product struct {
	ID          string                       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string                       `json:"title" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Category    string                       `json:"category" gorm:"type:varchar(100)"`
	SubCategory string                       `json:"subCategory" gorm:"type:varchar(100)"`
	Description string                       `json:"description" validate:"omitempty,max=2000"`
	Variants    datatypes.JSONSlice[Variant] `json:"variants"`
	Images      datatypes.JSONSlice[string]  `json:"images"`
	gorm.Model
}
