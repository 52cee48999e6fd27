package helpers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"eventsapi/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 0
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps (MaxPage+1)*MaxPageSize within int, so offsets and next-page
	// numbers cannot overflow.
	MaxPage         = math.MaxInt/MaxPageSize - 1
)

// ParsePageRequest reads page, size and sort from the request query string,
// clamps them to valid ranges, and returns domain.PageRequest.
// page is zero-based. sort may repeat and takes "property" or "property,asc|desc";
// properties that cannot be sorted on are dropped. Invalid values fall back to defaults;
// pages past MaxPage, including ones too large for an int, are capped at MaxPage.
func ParsePageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	page := DefaultPage
	if s := q.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		switch {
		case err == nil && v >= 0:
			page = min(v, MaxPage)
		case errors.Is(err, strconv.ErrRange) && v > 0:
			page = MaxPage
		}
	}
	size := DefaultPageSize
	if s := q.Get("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			size = v
			if size > MaxPageSize {
				size = MaxPageSize
			}
		}
	}
	var orders []domain.SortOrder
	for _, raw := range q["sort"] {
		parts := strings.Split(raw, ",")
		prop := strings.TrimSpace(parts[0])
		if _, ok := domain.EventSortColumn(prop); !ok {
			continue
		}
		dir := domain.SortAsc
		if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			dir = domain.SortDesc
		}
		orders = append(orders, domain.SortOrder{Property: prop, Direction: dir})
	}
	return domain.PageRequest{Page: page, Size: size, Sort: orders}
}
