package models

import "time"

// Code is a single diagnosis code entry. CategoryID is nullable because some
// coding-standard versions carry no categorization at all. A referenced
// Category must belong to the same version as the code; that invariant is
// enforced at write time by the service layer.
type Code struct {
	ID               uint       `gorm:"primaryKey" json:"id" example:"1"`
	CategoryID       *uint      `gorm:"index:idx_codes_category_version" json:"category"`
	Category         *Category  `gorm:"foreignKey:CategoryID" json:"category_details,omitempty"`
	SubCode          string     `gorm:"size:20;not null" json:"sub_code" example:"0011"`
	FullCode         string     `gorm:"size:20;not null;uniqueIndex:idx_codes_full_code_version" json:"full_code" example:"C210011"`
	ShortDescription string     `gorm:"size:255;not null" json:"short_description" example:"Malig neoplasm anal canal"`
	LongDescription  string     `gorm:"type:text" json:"long_description" example:"Malignant neoplasm of the anal canal"`
	Version          string     `gorm:"size:10;not null;uniqueIndex:idx_codes_full_code_version;index:idx_codes_version_active;index:idx_codes_category_version" json:"version" example:"ICD-10"`
	IsActive         bool       `gorm:"not null;default:true;index:idx_codes_version_active" json:"is_active" example:"true"`
	ValidFrom        *time.Time `json:"valid_from"`
	ValidTo          *time.Time `json:"valid_to"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Code) TableName() string {
	return "diagnosis_codes"
}
