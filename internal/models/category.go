package models

import "time"

// Category groups diagnosis codes within a single coding-standard version.
// The same code string ("C21") under ICD-9 and ICD-10 is two unrelated rows,
// hence the composite unique index on (code, version).
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	Code      string    `gorm:"size:20;not null;uniqueIndex:idx_categories_code_version" json:"code" example:"C21"`
	Title     string    `gorm:"size:255;not null" json:"title" example:"Malignant neoplasm of anus and anal canal"`
	Version   string    `gorm:"size:10;not null;uniqueIndex:idx_categories_code_version;index" json:"version" example:"ICD-10"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "diagnosis_categories"
}
