package domain

import (
	"fmt"
	"math"
	"strings"
)

// SortDirection is the ordering applied to a sort property.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortOrder sorts a listing by one event property.
type SortOrder struct {
	Property  string
	Direction SortDirection
}

// String renders the order the way it is accepted in the sort query parameter ("name,desc").
func (o SortOrder) String() string {
	return fmt.Sprintf("%s,%s", o.Property, strings.ToLower(string(o.Direction)))
}

// eventSortColumns maps sortable event JSON property names to their column names.
var eventSortColumns = map[string]string{
	"id":                      "id",
	"name":                    "name",
	"beginEnrollmentDateTime": "begin_enrollment_date_time",
	"closeEnrollmentDateTime": "close_enrollment_date_time",
	"beginEventDateTime":      "begin_event_date_time",
	"endEventDateTime":        "end_event_date_time",
	"basePrice":               "base_price",
	"maxPrice":                "max_price",
	"limitOfEnrollment":       "limit_of_enrollment",
	"eventStatus":             "event_status",
}

// EventSortColumn returns the column backing a sortable event property.
func EventSortColumn(property string) (string, bool) {
	col, ok := eventSortColumns[property]
	return col, ok
}

// PageRequest holds offset-based pagination parameters for list queries.
// Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the row offset for the current page.
// Formula: Page * Size, saturating at math.MaxInt.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// OrderBy renders an ORDER BY clause body from the sort orders, skipping unknown properties.
// The result always ends with the id column so paging is stable.
func (p PageRequest) OrderBy() string {
	parts := make([]string, 0, len(p.Sort)+1)
	seenID := false
	for _, o := range p.Sort {
		col, ok := EventSortColumn(o.Property)
		if !ok {
			continue
		}
		dir := SortAsc
		if o.Direction == SortDesc {
			dir = SortDesc
		}
		parts = append(parts, col+" "+string(dir))
		if col == "id" {
			seenID = true
		}
	}
	if !seenID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", ")
}
