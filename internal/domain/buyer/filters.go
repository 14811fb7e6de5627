package buyer

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit     = 10
	MaxLimit         = 100
	ExportLimit      = 1000
	DefaultSortBy    = "updatedAt"
	DefaultSortOrder = "desc"
)

// sortColumns maps accepted sortBy values to columns.
var sortColumns = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"fullName":  "full_name",
}

type Filters struct {
	Search       string
	City         City
	PropertyType PropertyType
	Status       Status
	Timeline     Timeline

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Query is the raw key/value view of a request's query string.
type Query interface {
	Get(key string) string
}

// ParseFilters reads list filters. Unknown enum values and out-of-range
// numbers fall back to defaults instead of failing the request.
func ParseFilters(q Query) Filters {
	return parseFilters(q, DefaultLimit, MaxLimit)
}

// ParseExportFilters is ParseFilters with the export page size.
func ParseExportFilters(q Query) Filters {
	return parseFilters(q, ExportLimit, ExportLimit)
}

func parseFilters(q Query, defLimit, maxLimit int) Filters {
	f := Filters{
		Search:    strings.TrimSpace(q.Get("search")),
		Page:      1,
		Limit:     defLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}

	if v := City(q.Get("city")); v.Valid() {
		f.City = v
	}
	if v := PropertyType(q.Get("propertyType")); v.Valid() {
		f.PropertyType = v
	}
	if v := Status(q.Get("status")); v.Valid() {
		f.Status = v
	}
	if v := Timeline(q.Get("timeline")); v.Valid() {
		f.Timeline = v
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 1 {
		f.Page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l >= 1 {
		f.Limit = min(l, maxLimit)
	}
	if _, ok := sortColumns[q.Get("sortBy")]; ok {
		f.SortBy = q.Get("sortBy")
	}
	if o := strings.ToLower(q.Get("sortOrder")); o == "asc" || o == "desc" {
		f.SortOrder = o
	}
	return f
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SortColumn returns the column for SortBy, defaulting to updated_at.
func (f Filters) SortColumn() string {
	if col, ok := sortColumns[f.SortBy]; ok {
		return col
	}
	return sortColumns[DefaultSortBy]
}

func (f Filters) Descending() bool {
	return f.SortOrder != "asc"
}

// PageCount is ceil(total/limit).
func PageCount(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
