package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventsapi/internal/delivery/http/hal"
	"eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	// BaseURL prefixes every link. Empty means derive it from the request.
	BaseURL string
}

func NewEventController(logger *slog.Logger, svc domain.EventService, baseURL string) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		BaseURL: baseURL,
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a DRAFT event. Only the ten client fields are accepted; id, free, offline, eventStatus and manager are server-controlled and rejected when sent. free and offline are derived from the prices and the location.
// @ID createEvent
// @Tags events
// @Accept json
// @Produce application/hal+json
// @Param event body domain.EventDto true "Event data"
// @Success 201 {object} hal.EventResource "created event with self, query-events, update-event and profile links"
// @Header 201 {string} Location "URL of the created event"
// @Failure 400 {array} domain.FieldError "structural or business validation errors"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var dto domain.EventDto
	if !helpers.DecodeAndValidate(w, r, &dto) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	base := helpers.BaseURL(r, c.BaseURL)
	w.Header().Set("Location", hal.EventURL(base, event.ID))
	helpers.WriteHAL(w, http.StatusCreated, hal.NewEventResource(event, hal.CreatedEventLinks(base, event)))
}

// QueryEvents godoc
// @Summary List events
// @Description Returns one page of events. page is zero-based; size defaults to 20 (max 100); sort takes property[,asc|desc] and may repeat.
// @ID queryEvents
// @Tags events
// @Produce application/hal+json
// @Param page query int false "Zero-based page index" default(0)
// @Param size query int false "Page size" default(20)
// @Param sort query []string false "Sort order, e.g. name,desc" collectionFormat(multi)
// @Success 200 {object} hal.EventsPage "events in _embedded.eventList with paging links and metadata"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *EventController) QueryEvents(w http.ResponseWriter, r *http.Request) {
	req := helpers.ParsePageRequest(r)
	page, err := c.Service.ListEvents(r.Context(), req)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteHAL(w, http.StatusOK, hal.NewEventsPage(helpers.BaseURL(r, c.BaseURL), page))
}

// GetEvent godoc
// @Summary Get an event by ID
// @Description Returns the event with self and profile links. A non-numeric or unknown id yields 404 with an empty body.
// @ID getEvent
// @Tags events
// @Produce application/hal+json
// @Param id path int true "Event ID"
// @Success 200 {object} hal.EventResource "event with self and profile links"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(r)
	if !ok {
		helpers.WriteNotFound(w)
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	c.writeEvent(w, r, event, hal.ProfileGetEvent)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the ten client fields of the event. id, eventStatus and manager keep their stored values; free and offline are recomputed. Structural errors are reported before the lookup, business rule errors after it.
// @ID updateEvent
// @Tags events
// @Accept json
// @Produce application/hal+json
// @Param id path int true "Event ID"
// @Param event body domain.EventDto true "Event data"
// @Success 200 {object} hal.EventResource "updated event with self and profile links"
// @Failure 400 {array} domain.FieldError "structural or business validation errors"
// @Failure 404 "event not found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var dto domain.EventDto
	if !helpers.DecodeAndValidate(w, r, &dto) {
		return
	}
	id, ok := eventID(r)
	if !ok {
		helpers.WriteNotFound(w)
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, dto)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	c.writeEvent(w, r, event, hal.ProfileUpdateEvent)
}

func (c *EventController) writeEvent(w http.ResponseWriter, r *http.Request, event *domain.Event, profile string) {
	base := helpers.BaseURL(r, c.BaseURL)
	links := hal.EventLinks(base, event).Add(hal.RelProfile, hal.ProfileURL(base, profile))
	helpers.WriteHAL(w, http.StatusOK, hal.NewEventResource(event, links))
}

// writeError maps service errors to responses: validation failures to 400 with the
// field errors, a missing event to a bare 404, anything else to a logged 500.
func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteFieldErrors(w, verr.Errors)
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteNotFound(w)
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}

func eventID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
