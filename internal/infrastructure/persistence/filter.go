package persistence

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting
// to DESC for list views
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist, falling
// back to defaultField. Sort input reaches SQL verbatim, so nothing
// outside the whitelist ever does.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// queryOptions describes how a table is filtered: which column carries the
// record date, which columns free-text search spans, and which columns may
// be used for sorting and dimension filters.
type queryOptions struct {
	dateColumn    string
	searchColumns []string
	sortFields    map[string]bool
	defaultSort   string
}

// applyWhere translates the filtering part of a shared.Filter onto a gorm
// query: date range, dimension equality filters and free-text search
func applyWhere(query *gorm.DB, filter shared.Filter, opts queryOptions) *gorm.DB {
	if opts.dateColumn != "" {
		if filter.DateFrom != nil {
			query = query.Where(opts.dateColumn+" >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			// date_fin arrives as a bare date at midnight while the column
			// holds full timestamps; the range includes the whole last day
			query = query.Where(opts.dateColumn+" < ?", nextDay(*filter.DateTo))
		}
	}

	for column, value := range filter.Filters {
		if opts.sortFields[column] {
			query = query.Where(column+" = ?", value)
		}
	}

	if filter.Search != "" && len(opts.searchColumns) > 0 {
		pattern := "%" + strings.ToUpper(strings.TrimSpace(filter.Search)) + "%"
		conds := make([]string, len(opts.searchColumns))
		args := make([]interface{}, len(opts.searchColumns))
		for i, col := range opts.searchColumns {
			conds[i] = "UPPER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conds, " OR "), args...)
	}

	return query
}

// nextDay returns midnight of the day after t, the exclusive upper bound
// matching an inclusive date_fin
func nextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}

// applyFilter is applyWhere plus ordering and pagination. A zero PageSize
// spans the whole filtered set (export and print views).
func applyFilter(query *gorm.DB, filter shared.Filter, opts queryOptions) *gorm.DB {
	query = applyWhere(query, filter, opts)

	orderBy := ValidateSortField(filter.OrderBy, opts.sortFields, opts.defaultSort)
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", orderBy, orderDir))

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return query
}
