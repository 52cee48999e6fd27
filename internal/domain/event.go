package domain

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned by repositories and services when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusEnded     EventStatus = "ENDED"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusEnded:
		return true
	}
	return false
}

// CanTransitionTo reports whether an event in status s may move to next.
// The lifecycle is linear: DRAFT -> PUBLISHED -> ENDED.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	switch s {
	case EventStatusDraft:
		return next == EventStatusPublished
	case EventStatusPublished:
		return next == EventStatusEnded
	}
	return false
}

// Event represents a conference or meetup event.
// swagger:model Event
type Event struct {
	ID                      int           `json:"id"`
	Name                    string        `json:"name"`
	Description             string        `json:"description"`
	BeginEnrollmentDateTime LocalDateTime `json:"beginEnrollmentDateTime" swaggertype:"string" example:"2018-11-23T14:21:00"`
	CloseEnrollmentDateTime LocalDateTime `json:"closeEnrollmentDateTime" swaggertype:"string" example:"2018-11-23T14:21:00"`
	BeginEventDateTime      LocalDateTime `json:"beginEventDateTime" swaggertype:"string" example:"2018-11-23T14:21:00"`
	EndEventDateTime        LocalDateTime `json:"endEventDateTime" swaggertype:"string" example:"2018-11-23T14:21:00"`
	Location                string        `json:"location"`
	BasePrice               int           `json:"basePrice"`
	MaxPrice                int           `json:"maxPrice"`
	LimitOfEnrollment       int           `json:"limitOfEnrollment"`
	Offline                 bool          `json:"offline"`
	Free                    bool          `json:"free"`
	EventStatus             EventStatus   `json:"eventStatus"`
	ManagerID               *int          `json:"manager,omitempty"`
	CreatedAt               time.Time     `json:"-"`
	UpdatedAt               time.Time     `json:"-"`
}

// Update recomputes the derived Free and Offline flags from the current field values.
// It must run after any assignment from client input and before the event is saved.
func (e *Event) Update() {
	e.Free = e.BasePrice == 0 && e.MaxPrice == 0
	e.Offline = strings.TrimSpace(e.Location) != ""
}

// EventPage is one page of a paginated event listing.
type EventPage struct {
	Events  []*Event
	Total   int
	Request PageRequest
}

// TotalPages returns the number of pages needed to hold Total events.
func (p *EventPage) TotalPages() int {
	if p.Request.Size <= 0 {
		return 0
	}
	return (p.Total + p.Request.Size - 1) / p.Request.Size
}

// EventRepository defines the interface for event storage.
// Save inserts the event when its ID is zero and updates it otherwise; the returned
// event carries the generated ID.
type EventRepository interface {
	Save(ctx context.Context, event *Event) (*Event, error)
	FindByID(ctx context.Context, id int) (*Event, error)
	FindAll(ctx context.Context, req PageRequest) (*EventPage, error)
}

// EventService defines the business logic for creating, reading and updating events.
// CreateEvent and UpdateEvent return a *ValidationError when the DTO breaks a business rule.
type EventService interface {
	CreateEvent(ctx context.Context, dto EventDto) (*Event, error)
	GetEvent(ctx context.Context, id int) (*Event, error)
	ListEvents(ctx context.Context, req PageRequest) (*EventPage, error)
	UpdateEvent(ctx context.Context, id int, dto EventDto) (*Event, error)
}
