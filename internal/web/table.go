package web

import (
	"strconv"
	"strings"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

// pageSize is the fixed page size for every table on the site.
const pageSize = 10

// filterLot returns the lot rows matching the free-text filter: a row
// matches when the filter is a case-insensitive substring of its make,
// model or stringified year. An empty filter matches everything.
func filterLot(rows []model.LotRow, filter string) []model.LotRow {
	if filter == "" {
		return rows
	}

	needle := strings.ToLower(filter)
	var matched []model.LotRow
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Make), needle) ||
			strings.Contains(strings.ToLower(row.Model), needle) ||
			strings.Contains(strconv.Itoa(row.Year), needle) {
			matched = append(matched, row)
		}
	}
	return matched
}

// paginate slices one page out of rows. The requested page (1-based) is
// clamped into the valid range, so shrinking the filtered set can never
// leave the view on a page past the end.
func paginate[T any](rows []T, page int) (pageRows []T, current, total int) {
	total = (len(rows) + pageSize - 1) / pageSize
	if total == 0 {
		total = 1
	}

	current = page
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], current, total
}
