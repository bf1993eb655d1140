package admin

import (
	"math"
	"strconv"
	"strings"

	"onboarding-app/config"
)

type PageRequest struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePage turns the raw page/limit query values into offset/limit.
// Missing or non-numeric values fall back to page 1 and the default limit.
func ParsePage(pageStr, limitStr string) PageRequest {
	page, err := strconv.Atoi(strings.TrimSpace(pageStr))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitStr))
	if err != nil {
		limit = config.DEFAULT_PAGE_LIMIT
	}
	if limit < 1 {
		limit = 1
	}
	if limit > config.MAX_PAGE_LIMIT {
		limit = config.MAX_PAGE_LIMIT
	}

	// keep (page-1)*limit inside int
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}

	return PageRequest{Page: page, Limit: limit, Offset: (page - 1) * limit}
}

var sortColumns = map[string][]string{
	"created_at":   {"created_at"},
	"submitted_at": {"submitted_at"},
	"name":         {"last_name", "first_name"},
}

// orderClause maps ?sort=name / ?sort=-created_at to an ORDER BY.
// Unknown keys are rejected so the value never reaches SQL verbatim.
func orderClause(sort string) (string, bool) {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = "-created_at"
	}

	dir := " ASC"
	if strings.HasPrefix(sort, "-") {
		dir = " DESC"
		sort = sort[1:]
	}

	cols, ok := sortColumns[sort]
	if !ok {
		return "", false
	}
	parts := make([]string, 0, len(cols)+1)
	for _, col := range cols {
		parts = append(parts, col+dir)
	}
	parts = append(parts, "id ASC")
	return strings.Join(parts, ", "), true
}
