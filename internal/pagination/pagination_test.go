package pagination

import (
	"net/url"
	"testing"

	"github.com/jochebedafua/icd-diagnosis-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = config.PaginationConfig{PageSize: 20, MaxPageSize: 100}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams(url.Values{}, testCfg)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())
}

func TestParseParams_ClampsPageSizeToCeiling(t *testing.T) {
	query := url.Values{"page_size": {"500"}}
	p := ParseParams(query, testCfg)

	assert.Equal(t, 100, p.PageSize)
}

func TestParseParams_AcceptsPageSizeBelowCeiling(t *testing.T) {
	query := url.Values{"page_size": {"50"}, "page": {"3"}}
	p := ParseParams(query, testCfg)

	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Offset())
}

func TestParseParams_IgnoresGarbage(t *testing.T) {
	query := url.Values{"page": {"abc"}, "page_size": {"-5"}}
	p := ParseParams(query, testCfg)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 2, TotalPages(25, 20))
	assert.Equal(t, 13, TotalPages(250, 20))
}

func TestCheckRange(t *testing.T) {
	require.NoError(t, CheckRange(Params{Page: 1, PageSize: 20}, 25))
	require.NoError(t, CheckRange(Params{Page: 2, PageSize: 20}, 25))
	assert.ErrorIs(t, CheckRange(Params{Page: 3, PageSize: 20}, 25), ErrPageNotFound)
}

func TestCheckRange_EmptySet(t *testing.T) {
	// An empty set is a single empty page: page 1 succeeds, page 2 is a miss.
	require.NoError(t, CheckRange(Params{Page: 1, PageSize: 20}, 0))
	assert.ErrorIs(t, CheckRange(Params{Page: 2, PageSize: 20}, 0), ErrPageNotFound)
}

func TestNewEnvelope_FirstPage(t *testing.T) {
	query := url.Values{"version": {"ICD-10"}}
	env := NewEnvelope("http://localhost:8020/codes", query, Params{Page: 1, PageSize: 20}, 25, nil)

	assert.Equal(t, int64(25), env.Count)
	require.NotNil(t, env.Next)
	assert.Equal(t, "http://localhost:8020/codes?page=2&version=ICD-10", *env.Next)
	assert.Nil(t, env.Previous)
}

func TestNewEnvelope_LastPage(t *testing.T) {
	env := NewEnvelope("http://localhost:8020/codes", url.Values{}, Params{Page: 2, PageSize: 20}, 25, nil)

	assert.Nil(t, env.Next)
	require.NotNil(t, env.Previous)
	assert.Equal(t, "http://localhost:8020/codes?page=1", *env.Previous)
}

func TestNewEnvelope_SinglePage(t *testing.T) {
	env := NewEnvelope("http://localhost:8020/codes", url.Values{}, Params{Page: 1, PageSize: 20}, 5, nil)

	assert.Nil(t, env.Next)
	assert.Nil(t, env.Previous)
}

func TestNewEnvelope_PreservesQueryParams(t *testing.T) {
	query := url.Values{"search": {"neoplasm"}, "page": {"2"}, "page_size": {"10"}}
	env := NewEnvelope("http://localhost:8020/codes", query, Params{Page: 2, PageSize: 10}, 35, nil)

	require.NotNil(t, env.Next)
	next, err := url.Parse(*env.Next)
	require.NoError(t, err)
	assert.Equal(t, "neoplasm", next.Query().Get("search"))
	assert.Equal(t, "3", next.Query().Get("page"))
	assert.Equal(t, "10", next.Query().Get("page_size"))

	require.NotNil(t, env.Previous)
	prev, err := url.Parse(*env.Previous)
	require.NoError(t, err)
	assert.Equal(t, "1", prev.Query().Get("page"))
}
