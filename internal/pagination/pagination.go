// Package pagination implements page-number pagination with a DRF-style
// response envelope: {count, next, previous, results}.
package pagination

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/jochebedafua/icd-diagnosis-api/internal/config"
)

// ErrPageNotFound is returned for page numbers past the end of the result
// set. An empty set still has exactly one page, so page 2 of nothing is a
// miss, not an empty success.
var ErrPageNotFound = errors.New("invalid page")

const (
	PageParam = "page"
	SizeParam = "page_size"
)

// Params is a parsed, clamped page request.
type Params struct {
	Page     int
	PageSize int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParseParams reads page/page_size query values. Page size requests above
// the configured ceiling are clamped, never rejected; non-numeric or
// non-positive values fall back to defaults.
func ParseParams(query url.Values, cfg config.PaginationConfig) Params {
	p := Params{Page: 1, PageSize: cfg.PageSize}

	if raw := query.Get(PageParam); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			p.Page = page
		}
	}

	if raw := query.Get(SizeParam); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			p.PageSize = size
		}
	}
	if p.PageSize > cfg.MaxPageSize {
		p.PageSize = cfg.MaxPageSize
	}

	return p
}

// TotalPages reports how many pages the set spans. Never less than 1: an
// empty set is a single empty page.
func TotalPages(count int64, pageSize int) int {
	pages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// CheckRange validates the requested page against the total count.
func CheckRange(p Params, count int64) error {
	if p.Page > TotalPages(count, p.PageSize) {
		return ErrPageNotFound
	}
	return nil
}

// Envelope is the list response body.
type Envelope struct {
	Count    int64       `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewEnvelope builds the envelope for one page. baseURL is the absolute
// request URL without query string; the next/previous links reuse the
// caller's query values with only the page number rewritten.
func NewEnvelope(baseURL string, query url.Values, p Params, count int64, results interface{}) Envelope {
	env := Envelope{
		Count:   count,
		Results: results,
	}

	if p.Page < TotalPages(count, p.PageSize) {
		env.Next = pageLink(baseURL, query, p.Page+1)
	}
	if p.Page > 1 {
		env.Previous = pageLink(baseURL, query, p.Page-1)
	}

	return env
}

func pageLink(baseURL string, query url.Values, page int) *string {
	q := url.Values{}
	for key, vals := range query {
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	q.Set(PageParam, strconv.Itoa(page))

	link := baseURL + "?" + q.Encode()
	return &link
}
