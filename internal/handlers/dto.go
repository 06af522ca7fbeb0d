package handlers

import (
	"encoding/json"
	"time"

	"github.com/jochebedafua/icd-diagnosis-api/internal/apperrors"
	"github.com/jochebedafua/icd-diagnosis-api/internal/models"
	"github.com/jochebedafua/icd-diagnosis-api/internal/services"
)

const dateLayout = "2006-01-02"

// CodeRequest documents the write payload for diagnosis codes.
type CodeRequest struct {
	Category         *uint  `json:"category" example:"1"`
	SubCode          string `json:"sub_code" example:"0011"`
	FullCode         string `json:"full_code" example:"C210011"`
	ShortDescription string `json:"short_description" example:"Malig neoplasm anal canal"`
	LongDescription  string `json:"long_description" example:"Malignant neoplasm of the anal canal"`
	Version          string `json:"version" example:"ICD-10"`
	IsActive         *bool  `json:"is_active" example:"true"`
	ValidFrom        string `json:"valid_from" example:"2015-10-01"`
	ValidTo          string `json:"valid_to" example:"2025-09-30"`
}

// CategoryRequest documents the write payload for categories.
type CategoryRequest struct {
	Code    string `json:"code" example:"C21"`
	Title   string `json:"title" example:"Malignant neoplasm of anus and anal canal"`
	Version string `json:"version" example:"ICD-10"`
}

// CodeListItem is the lightweight projection used on list responses; the
// category contributes only its code, already joined, so no per-row lookup
// is needed.
type CodeListItem struct {
	ID               uint    `json:"id"`
	FullCode         string  `json:"full_code"`
	ShortDescription string  `json:"short_description"`
	Version          string  `json:"version"`
	CategoryCode     *string `json:"category_code"`
	IsActive         bool    `json:"is_active"`
}

func newCodeListItems(codes []models.Code) []CodeListItem {
	items := make([]CodeListItem, 0, len(codes))
	for _, code := range codes {
		item := CodeListItem{
			ID:               code.ID,
			FullCode:         code.FullCode,
			ShortDescription: code.ShortDescription,
			Version:          code.Version,
			IsActive:         code.IsActive,
		}
		if code.Category != nil {
			item.CategoryCode = &code.Category.Code
		}
		items = append(items, item)
	}
	return items
}

// decodeCodeInput parses a write payload into the sparse input the service
// validates. Decoding key-by-key keeps the present-vs-null distinction that
// patch semantics need: a key that never appeared is not marked present,
// while an explicit null is.
func decodeCodeInput(body []byte) (*services.CodeInput, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.NewValidation("detail", "invalid JSON body")
	}

	in := &services.CodeInput{}
	for key, val := range raw {
		switch key {
		case services.FieldCategory:
			in.MarkPresent(key)
			if !isNull(val) {
				var id uint
				if err := json.Unmarshal(val, &id); err != nil {
					return nil, apperrors.NewValidation(key, "invalid value")
				}
				in.CategoryID = &id
			}
		case services.FieldSubCode:
			in.MarkPresent(key)
			if in.SubCode = decodeString(val); in.SubCode == nil && !isNull(val) {
				return nil, apperrors.NewValidation(key, "invalid value")
			}
		case services.FieldFullCode:
			in.MarkPresent(key)
			if in.FullCode = decodeString(val); in.FullCode == nil && !isNull(val) {
				return nil, apperrors.NewValidation(key, "invalid value")
			}
		case services.FieldShortDescription:
			in.MarkPresent(key)
			if in.ShortDescription = decodeString(val); in.ShortDescription == nil && !isNull(val) {
				return nil, apperrors.NewValidation(key, "invalid value")
			}
		case services.FieldLongDescription:
			in.MarkPresent(key)
			if in.LongDescription = decodeString(val); in.LongDescription == nil && !isNull(val) {
				return nil, apperrors.NewValidation(key, "invalid value")
			}
		case services.FieldVersion:
			in.MarkPresent(key)
			if in.Version = decodeString(val); in.Version == nil && !isNull(val) {
				return nil, apperrors.NewValidation(key, "invalid value")
			}
		case services.FieldIsActive:
			in.MarkPresent(key)
			if !isNull(val) {
				var active bool
				if err := json.Unmarshal(val, &active); err != nil {
					return nil, apperrors.NewValidation(key, "invalid value")
				}
				in.IsActive = &active
			}
		case services.FieldValidFrom:
			in.MarkPresent(key)
			date, err := decodeDate(val)
			if err != nil {
				return nil, apperrors.NewValidation(key, "date must be in YYYY-MM-DD format")
			}
			in.ValidFrom = date
		case services.FieldValidTo:
			in.MarkPresent(key)
			date, err := decodeDate(val)
			if err != nil {
				return nil, apperrors.NewValidation(key, "date must be in YYYY-MM-DD format")
			}
			in.ValidTo = date
		}
	}
	return in, nil
}

func decodeCategoryInput(body []byte) (*services.CategoryInput, error) {
	var req struct {
		Code    *string `json:"code"`
		Title   *string `json:"title"`
		Version *string `json:"version"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperrors.NewValidation("detail", "invalid JSON body")
	}
	return &services.CategoryInput{
		Code:    req.Code,
		Title:   req.Title,
		Version: req.Version,
	}, nil
}

func isNull(val json.RawMessage) bool {
	return string(val) == "null"
}

func decodeString(val json.RawMessage) *string {
	var s *string
	if err := json.Unmarshal(val, &s); err != nil {
		return nil
	}
	return s
}

func decodeDate(val json.RawMessage) (*time.Time, error) {
	if isNull(val) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
