package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventsapi/internal/domain"
	"eventsapi/internal/monitoring"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, dto domain.EventDto) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := domain.ValidateEvent(dto); errs.HasErrors() {
		monitoring.TrackEventOperation("create", monitoring.OutcomeInvalid)
		return nil, &domain.ValidationError{Errors: errs}
	}

	event := dto.ToEvent()
	event.Update()
	now := s.now()
	event.CreatedAt = now
	event.UpdatedAt = now

	saved, err := s.eventRepo.Save(ctx, event)
	if err != nil {
		monitoring.TrackEventOperation("create", monitoring.OutcomeError)
		return nil, fmt.Errorf("save event: %w", err)
	}
	monitoring.TrackEventOperation("create", monitoring.OutcomeOK)
	return saved, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			monitoring.TrackEventOperation("get", monitoring.OutcomeNotFound)
			return nil, domain.ErrNotFound
		}
		monitoring.TrackEventOperation("get", monitoring.OutcomeError)
		return nil, fmt.Errorf("get event: %w", err)
	}
	monitoring.TrackEventOperation("get", monitoring.OutcomeOK)
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	page, err := s.eventRepo.FindAll(ctx, req)
	if err != nil {
		monitoring.TrackEventOperation("list", monitoring.OutcomeError)
		return nil, fmt.Errorf("list events: %w", err)
	}
	if page.Events == nil {
		page.Events = []*domain.Event{}
	}
	monitoring.TrackEventOperation("list", monitoring.OutcomeOK)
	return page, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int, dto domain.EventDto) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			monitoring.TrackEventOperation("update", monitoring.OutcomeNotFound)
			return nil, domain.ErrNotFound
		}
		monitoring.TrackEventOperation("update", monitoring.OutcomeError)
		return nil, fmt.Errorf("get event: %w", err)
	}

	if errs := domain.ValidateEvent(dto); errs.HasErrors() {
		monitoring.TrackEventOperation("update", monitoring.OutcomeInvalid)
		return nil, &domain.ValidationError{Errors: errs}
	}

	dto.ApplyTo(event)
	event.Update()
	event.UpdatedAt = s.now()

	saved, err := s.eventRepo.Save(ctx, event)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			monitoring.TrackEventOperation("update", monitoring.OutcomeNotFound)
			return nil, domain.ErrNotFound
		}
		monitoring.TrackEventOperation("update", monitoring.OutcomeError)
		return nil, fmt.Errorf("update event: %w", err)
	}
	monitoring.TrackEventOperation("update", monitoring.OutcomeOK)
	return saved, nil
}
