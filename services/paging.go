package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OmarHamdi11/blog-rest-api/errs"
)

// Listing defaults, applied when a query parameter is absent.
const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
	DefaultSortBy   = "id"
	DefaultSortDir  = "asc"

	// MaxPageSize caps a single page; an unbounded size is a full-table dump.
	MaxPageSize = 100
)

// Sortable field name -> database column, per entity. A sort field outside
// the whitelist is rejected before it gets anywhere near a query.
var (
	postSortColumns = map[string]string{
		"id":          "id",
		"title":       "title",
		"description": "description",
		"content":     "content",
		"categoryId":  "category_id",
	}
	commentSortColumns = map[string]string{
		"id":    "id",
		"name":  "name",
		"email": "email",
		"body":  "body",
	}
)

// Pageable is a fully resolved, validated page request. Column is a database
// column from the entity's whitelist, never raw caller input.
type Pageable struct {
	PageNo   int
	PageSize int
	Column   string
	Desc     bool
}

// Offset returns the number of rows preceding the requested page.
func (p Pageable) Offset() int {
	return p.PageNo * p.PageSize
}

// OrderClause renders the ORDER BY expression for the request. Ties on the
// sort column are broken by id ascending so page boundaries are deterministic.
func (p Pageable) OrderClause() string {
	dir := "ASC"
	if p.Desc {
		dir = "DESC"
	}
	if p.Column == "id" {
		return fmt.Sprintf("id %s", dir)
	}
	return fmt.Sprintf("%s %s, id ASC", p.Column, dir)
}

// ResolvePageable turns the raw string query parameters of a listing request
// into a validated Pageable against the given sortable-field whitelist.
func ResolvePageable(pageNo, pageSize, sortBy, sortDir string, sortColumns map[string]string) (Pageable, error) {
	p := Pageable{PageNo: DefaultPageNo, PageSize: DefaultPageSize}

	if pageNo != "" {
		n, err := strconv.Atoi(pageNo)
		if err != nil || n < 0 {
			return Pageable{}, errs.NewValidationError("pageNo", "page number must be a non-negative integer")
		}
		p.PageNo = n
	}

	if pageSize != "" {
		n, err := strconv.Atoi(pageSize)
		if err != nil || n <= 0 {
			return Pageable{}, errs.NewValidationError("pageSize", "page size must be a positive integer")
		}
		if n > MaxPageSize {
			return Pageable{}, errs.NewValidationError("pageSize", fmt.Sprintf("page size must not exceed %d", MaxPageSize))
		}
		p.PageSize = n
	}

	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return Pageable{}, errs.NewValidationError("sortBy", fmt.Sprintf("unknown sort field %q", sortBy))
	}
	p.Column = column

	// Anything that is not ASC (case-insensitive) sorts descending.
	p.Desc = sortDir != "" && !strings.EqualFold(sortDir, "asc")

	return p, nil
}

// pageMeta computes the pagination metadata for a resolved request and the
// total element count reported by the store.
type pageMeta struct {
	PageNo        int
	PageSize      int
	TotalElements int64
	TotalPages    int
	Last          bool
}

func newPageMeta(p Pageable, total int64) pageMeta {
	totalPages := int((total + int64(p.PageSize) - 1) / int64(p.PageSize))
	return pageMeta{
		PageNo:        p.PageNo,
		PageSize:      p.PageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          total == 0 || p.PageNo >= totalPages-1,
	}
}
