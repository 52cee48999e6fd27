package domain

// EventDto is the request body for creating or updating an event. It only carries the fields
// a client may set; id, status, manager and the derived flags are server-controlled and have
// no place here.
// swagger:model EventDto
type EventDto struct {
	Name                    string        `json:"name" validate:"required"`
	Description             string        `json:"description" validate:"required"`
	BeginEnrollmentDateTime LocalDateTime `json:"beginEnrollmentDateTime" validate:"required" swaggertype:"string" example:"2018-11-23T14:21:00"`
	CloseEnrollmentDateTime LocalDateTime `json:"closeEnrollmentDateTime" validate:"required" swaggertype:"string" example:"2018-11-23T14:21:00"`
	BeginEventDateTime      LocalDateTime `json:"beginEventDateTime" validate:"required" swaggertype:"string" example:"2018-11-23T14:21:00"`
	EndEventDateTime        LocalDateTime `json:"endEventDateTime" validate:"required" swaggertype:"string" example:"2018-11-23T14:21:00"`
	Location                string        `json:"location"`
	BasePrice               int           `json:"basePrice" validate:"gte=0"`
	MaxPrice                int           `json:"maxPrice" validate:"gte=0"`
	LimitOfEnrollment       int           `json:"limitOfEnrollment" validate:"gte=1"`
}

// ToEvent builds a new DRAFT event from the DTO. Derived flags are computed.
func (d EventDto) ToEvent() *Event {
	e := &Event{EventStatus: EventStatusDraft}
	d.ApplyTo(e)
	return e
}

// ApplyTo copies the client-settable fields onto e and recomputes the derived flags.
// ID, EventStatus and ManagerID are left untouched.
func (d EventDto) ApplyTo(e *Event) {
	e.Name = d.Name
	e.Description = d.Description
	e.BeginEnrollmentDateTime = d.BeginEnrollmentDateTime
	e.CloseEnrollmentDateTime = d.CloseEnrollmentDateTime
	e.BeginEventDateTime = d.BeginEventDateTime
	e.EndEventDateTime = d.EndEventDateTime
	e.Location = d.Location
	e.BasePrice = d.BasePrice
	e.MaxPrice = d.MaxPrice
	e.LimitOfEnrollment = d.LimitOfEnrollment
	e.Update()
}

// NewEventDto returns the DTO view of an existing event.
func NewEventDto(e *Event) EventDto {
	return EventDto{
		Name:                    e.Name,
		Description:             e.Description,
		BeginEnrollmentDateTime: e.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: e.CloseEnrollmentDateTime,
		BeginEventDateTime:      e.BeginEventDateTime,
		EndEventDateTime:        e.EndEventDateTime,
		Location:                e.Location,
		BasePrice:               e.BasePrice,
		MaxPrice:                e.MaxPrice,
		LimitOfEnrollment:       e.LimitOfEnrollment,
	}
}
