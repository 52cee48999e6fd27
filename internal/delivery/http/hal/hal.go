// Package hal assembles hypermedia resources for API responses. The functions are
// pure: they take an entity and a base URL and return link sets, leaving
// serialization to the caller.
package hal

import (
	"fmt"
	"net/url"
	"strings"

	"eventsapi/internal/domain"
)

// Link relation names.
const (
	RelSelf        = "self"
	RelProfile     = "profile"
	RelQueryEvents = "query-events"
	RelUpdateEvent = "update-event"
	RelEvents      = "events"
	RelFirst       = "first"
	RelPrev        = "prev"
	RelNext        = "next"
	RelLast        = "last"
)

// Profile anchors in the API documentation, one per operation.
const (
	ProfileCreateEvent = "createEvent"
	ProfileGetEvent    = "getEvent"
	ProfileQueryEvents = "queryEvents"
	ProfileUpdateEvent = "updateEvent"
)

const eventsPath = "/api/events"

// Link is a navigational link.
type Link struct {
	Href string `json:"href"`
}

// Links maps relation names to links.
type Links map[string]Link

// Add sets the link for rel and returns l for chaining.
func (l Links) Add(rel, href string) Links {
	l[rel] = Link{Href: href}
	return l
}

// EventResource is an event rendered with its links.
// swagger:model EventResource
type EventResource struct {
	*domain.Event
	Links Links `json:"_links"`
}

// NewEventResource flattens e and attaches links.
func NewEventResource(e *domain.Event, links Links) EventResource {
	return EventResource{Event: e, Links: links}
}

// EventsURL returns the event collection URL.
func EventsURL(base string) string {
	return strings.TrimSuffix(base, "/") + eventsPath
}

// EventURL returns the URL of a single event.
func EventURL(base string, id int) string {
	return fmt.Sprintf("%s/%d", EventsURL(base), id)
}

// ProfileURL returns the documentation link for operation.
func ProfileURL(base, operation string) string {
	return strings.TrimSuffix(base, "/") + "/swagger/index.html#/events/" + operation
}

// EventLinks returns the self link of e.
func EventLinks(base string, e *domain.Event) Links {
	return Links{}.Add(RelSelf, EventURL(base, e.ID))
}

// CreatedEventLinks returns the links attached to a freshly created event.
func CreatedEventLinks(base string, e *domain.Event) Links {
	return EventLinks(base, e).
		Add(RelQueryEvents, EventsURL(base)).
		Add(RelUpdateEvent, EventURL(base, e.ID)).
		Add(RelProfile, ProfileURL(base, ProfileCreateEvent))
}

// PageMetadata describes the returned page.
type PageMetadata struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// EmbeddedEvents holds the events of a page.
type EmbeddedEvents struct {
	EventList []EventResource `json:"eventList"`
}

// EventsPage is a page of events with paging links.
// swagger:model EventsPage
type EventsPage struct {
	Embedded *EmbeddedEvents `json:"_embedded,omitempty"`
	Links    Links           `json:"_links"`
	Page     PageMetadata    `json:"page"`
}

// NewEventsPage renders page. Each event carries its self link; _embedded is omitted
// when the page is empty.
func NewEventsPage(base string, page *domain.EventPage) EventsPage {
	out := EventsPage{
		Links: PageLinks(base, page.Request, page.Total).Add(RelProfile, ProfileURL(base, ProfileQueryEvents)),
		Page: PageMetadata{
			Size:          page.Request.Size,
			TotalElements: page.Total,
			TotalPages:    page.TotalPages(),
			Number:        page.Request.Page,
		},
	}
	if len(page.Events) > 0 {
		list := make([]EventResource, 0, len(page.Events))
		for _, e := range page.Events {
			list = append(list, NewEventResource(e, EventLinks(base, e)))
		}
		out.Embedded = &EmbeddedEvents{EventList: list}
	}
	return out
}

// PageLinks returns the navigation links for the page described by req over total events.
// first and last are present when there is any other page to move to, prev and next
// only when such a page exists. self is always present.
func PageLinks(base string, req domain.PageRequest, total int) Links {
	p := &domain.EventPage{Total: total, Request: req}
	totalPages := p.TotalPages()
	hasPrev := req.Page > 0
	hasNext := req.Page >= 0 && req.Page < totalPages-1
	navigable := hasPrev || hasNext

	links := Links{}
	if navigable {
		links.Add(RelFirst, pageURL(base, req, 0))
	}
	if hasPrev {
		links.Add(RelPrev, pageURL(base, req, req.Page-1))
	}
	links.Add(RelSelf, pageURL(base, req, req.Page))
	if hasNext {
		links.Add(RelNext, pageURL(base, req, req.Page+1))
	}
	if navigable {
		last := 0
		if totalPages > 0 {
			last = totalPages - 1
		}
		links.Add(RelLast, pageURL(base, req, last))
	}
	return links
}

// pageURL keeps the comma in sort values unescaped ("sort=name,desc").
func pageURL(base string, req domain.PageRequest, page int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s?page=%d&size=%d", EventsURL(base), page, req.Size)
	for _, o := range req.Sort {
		b.WriteString("&sort=")
		b.WriteString(url.QueryEscape(o.Property))
		b.WriteString(",")
		b.WriteString(strings.ToLower(string(o.Direction)))
	}
	return b.String()
}

// IndexResource is the API entry point.
// swagger:model IndexResource
type IndexResource struct {
	Links Links `json:"_links"`
}

// NewIndexResource returns the entry point linking to the event collection.
func NewIndexResource(base string) IndexResource {
	return IndexResource{Links: Links{}.Add(RelEvents, EventsURL(base))}
}
