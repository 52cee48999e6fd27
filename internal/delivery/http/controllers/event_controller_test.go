package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventsapi/internal/delivery/http/helpers"
	"eventsapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testBaseURL = "http://localhost:8080"

// fakeEventService implements domain.EventService over an in-memory map and applies the
// business rules the real service applies.
type fakeEventService struct {
	events      map[int]*domain.Event
	nextID      int
	err         error
	lastListReq domain.PageRequest
	listResult  *domain.EventPage
	createCalls int
	updateCalls int
}

func newFakeEventService() *fakeEventService {
	return &fakeEventService{events: map[int]*domain.Event{}, nextID: 1}
}

func (f *fakeEventService) CreateEvent(_ context.Context, dto domain.EventDto) (*domain.Event, error) {
	f.createCalls++
	if f.err != nil {
		return nil, f.err
	}
	if errs := domain.ValidateEvent(dto); errs.HasErrors() {
		return nil, &domain.ValidationError{Errors: errs}
	}
	e := dto.ToEvent()
	e.ID = f.nextID
	f.nextID++
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id int) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventService) ListEvents(_ context.Context, req domain.PageRequest) (*domain.EventPage, error) {
	f.lastListReq = req
	if f.err != nil {
		return nil, f.err
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return &domain.EventPage{Events: []*domain.Event{}, Request: req}, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id int, dto domain.EventDto) (*domain.Event, error) {
	f.updateCalls++
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if errs := domain.ValidateEvent(dto); errs.HasErrors() {
		return nil, &domain.ValidationError{Errors: errs}
	}
	dto.ApplyTo(e)
	return e, nil
}

func (f *fakeEventService) seed(e *domain.Event) *domain.Event {
	e.ID = f.nextID
	f.nextID++
	f.events[e.ID] = e
	return e
}

// eventBody returns a valid request body; overrides replace or add top-level properties.
func eventBody(t *testing.T, overrides map[string]any) string {
	t.Helper()
	body := map[string]any{
		"name":                    "Spring",
		"description":             "REST API Development with Spring",
		"beginEnrollmentDateTime": "2018-11-23T14:21:00",
		"closeEnrollmentDateTime": "2018-11-24T14:21:00",
		"beginEventDateTime":      "2018-11-25T14:21:00",
		"endEventDateTime":        "2018-11-26T14:21:00",
		"basePrice":               100,
		"maxPrice":                200,
		"limitOfEnrollment":       100,
		"location":                "강남역 D2 스타트업 팩토리",
	}
	for k, v := range overrides {
		if v == nil {
			delete(body, k)
			continue
		}
		body[k] = v
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return string(raw)
}

type resourceBody struct {
	ID          int                          `json:"id"`
	Name        string                       `json:"name"`
	Location    string                       `json:"location"`
	Free        bool                         `json:"free"`
	Offline     bool                         `json:"offline"`
	EventStatus domain.EventStatus           `json:"eventStatus"`
	Links       map[string]map[string]string `json:"_links"`
}

func decodeResource(t *testing.T, rr *httptest.ResponseRecorder) resourceBody {
	t.Helper()
	var res resourceBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res), "response must be a HAL resource")
	return res
}

func decodeFieldErrors(t *testing.T, rr *httptest.ResponseRecorder) []domain.FieldError {
	t.Helper()
	var errs []domain.FieldError
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&errs), "response must be an error array")
	return errs
}

func TestEventController_CreateEvent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		fakeErr     error
		wantStatus  int
		wantFields  []string
		wantCode    string
		wantCreated bool
	}{
		{
			name:        "success",
			body:        eventBody(t, nil),
			wantStatus:  http.StatusCreated,
			wantCreated: true,
		},
		{
			name:        "free online event",
			body:        eventBody(t, map[string]any{"basePrice": 0, "maxPrice": 0, "location": nil}),
			wantStatus:  http.StatusCreated,
			wantCreated: true,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   "required",
		},
		{
			name:       "server controlled fields rejected",
			body:       eventBody(t, map[string]any{"id": 100, "free": true, "offline": false, "eventStatus": "PUBLISHED"}),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{""},
			wantCode:   domain.CodeInvalidFormat,
		},
		{
			name:       "malformed json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{""},
			wantCode:   domain.CodeInvalidFormat,
		},
		{
			name: "event ends before it begins",
			body: eventBody(t, map[string]any{
				"beginEventDateTime": "2018-11-27T14:21:00Z",
				"endEventDateTime":   "2018-11-26T14:21:00Z",
			}),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"endEventDateTime"},
			wantCode:   domain.CodeWrongValue,
		},
		{
			name:       "base price above max price",
			body:       eventBody(t, map[string]any{"basePrice": 10000, "maxPrice": 200}),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"basePrice", "maxPrice"},
			wantCode:   domain.CodeWrongValue,
		},
		{
			name:       "service error",
			body:       eventBody(t, nil),
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEventService()
			fake.err = tt.fakeErr
			ctrl := NewEventController(testLogger, fake, testBaseURL)
			req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			switch tt.wantStatus {
			case http.StatusCreated:
				assert.Equal(t, helpers.ContentTypeHALJSON, rr.Header().Get("Content-Type"))
				res := decodeResource(t, rr)
				assert.Equal(t, testBaseURL+"/api/events/1", rr.Header().Get("Location"))
				assert.Equal(t, 1, res.ID)
				assert.Equal(t, domain.EventStatusDraft, res.EventStatus)
				ev := fake.events[1]
				require.NotNil(t, ev)
				assert.Equal(t, ev.Free, res.Free)
				assert.Equal(t, ev.Offline, res.Offline)
				for _, rel := range []string{"self", "query-events", "update-event", "profile"} {
					assert.NotEmpty(t, res.Links[rel]["href"], rel)
				}
			case http.StatusBadRequest:
				errs := decodeFieldErrors(t, rr)
				require.NotEmpty(t, errs)
				if tt.wantFields != nil {
					require.Len(t, errs, len(tt.wantFields))
				}
				for i, fe := range errs {
					assert.NotEmpty(t, fe.ObjectName)
					assert.NotEmpty(t, fe.DefaultMessage)
					assert.NotEmpty(t, fe.Code)
					if tt.wantFields != nil {
						assert.Equal(t, tt.wantFields[i], fe.Field)
						assert.Equal(t, tt.wantCode, fe.Code)
					}
				}
				assert.Empty(t, fake.events, "nothing must be stored")
			case http.StatusInternalServerError:
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, helpers.ErrCodeInternalError, envelope.Error.Code)
				assert.Contains(t, envelope.Error.Message, "db error")
			}
		})
	}
}

func TestEventController_CreateEvent_LocalDateTimes(t *testing.T) {
	tests := []struct {
		name      string
		begin     string
		wantBegin string
	}{
		{"zone-less", "2018-11-23T14:21:00", "2018-11-23T14:21:00"},
		{"zone-less without seconds", "2018-11-23T14:21", "2018-11-23T14:21:00"},
		{"fractional seconds", "2018-11-23T14:21:00.5", "2018-11-23T14:21:00.5"},
		{"utc", "2018-11-23T14:21:00Z", "2018-11-23T14:21:00"},
		{"offset converted to utc", "2018-11-23T23:21:00+09:00", "2018-11-23T14:21:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEventService()
			ctrl := NewEventController(testLogger, fake, testBaseURL)
			body := eventBody(t, map[string]any{
				"beginEnrollmentDateTime": tt.begin,
				"closeEnrollmentDateTime": "2018-11-24T14:21:00",
				"beginEventDateTime":      "2018-11-25T14:21:00",
				"endEventDateTime":        "2018-11-26T14:21:00",
			})
			rr := httptest.NewRecorder()

			ctrl.CreateEvent(rr, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)))

			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			var res map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
			assert.Equal(t, tt.wantBegin, res["beginEnrollmentDateTime"])
			assert.Equal(t, "2018-11-26T14:21:00", res["endEventDateTime"])
		})
	}
}

func TestEventController_CreateEvent_BadDateTime(t *testing.T) {
	ctrl := NewEventController(testLogger, newFakeEventService(), testBaseURL)
	body := eventBody(t, map[string]any{"beginEnrollmentDateTime": "23/11/2018 14:21"})
	rr := httptest.NewRecorder()

	ctrl.CreateEvent(rr, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	errs := decodeFieldErrors(t, rr)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
	assert.Contains(t, errs[0].DefaultMessage, "23/11/2018 14:21")
}

func TestEventController_CreateEvent_DerivedFlags(t *testing.T) {
	fake := newFakeEventService()
	ctrl := NewEventController(testLogger, fake, testBaseURL)

	rr := httptest.NewRecorder()
	ctrl.CreateEvent(rr, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(eventBody(t, nil))))
	require.Equal(t, http.StatusCreated, rr.Code)
	res := decodeResource(t, rr)
	assert.False(t, res.Free)
	assert.True(t, res.Offline)

	rr = httptest.NewRecorder()
	body := eventBody(t, map[string]any{"basePrice": 0, "maxPrice": 0, "location": "   "})
	ctrl.CreateEvent(rr, httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rr.Code)
	res = decodeResource(t, rr)
	assert.True(t, res.Free)
	assert.False(t, res.Offline)
}

func TestEventController_GetEvent(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		fakeErr    error
		wantStatus int
	}{
		{name: "found", id: "1", wantStatus: http.StatusOK},
		{name: "unknown id", id: "11883", wantStatus: http.StatusNotFound},
		{name: "non numeric id", id: "abc", wantStatus: http.StatusNotFound},
		{name: "service error", id: "1", fakeErr: errors.New("db error"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEventService()
			fake.seed(domain.EventDto{Name: "event 1", Description: "test event"}.ToEvent())
			fake.err = tt.fakeErr
			ctrl := NewEventController(testLogger, fake, testBaseURL)
			req := httptest.NewRequest(http.MethodGet, "/api/events/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			switch tt.wantStatus {
			case http.StatusOK:
				res := decodeResource(t, rr)
				assert.Equal(t, "event 1", res.Name)
				assert.Equal(t, testBaseURL+"/api/events/1", res.Links["self"]["href"])
				assert.Equal(t, testBaseURL+"/swagger/index.html#/events/getEvent", res.Links["profile"]["href"])
			case http.StatusNotFound:
				assert.Empty(t, rr.Body.String(), "404 must have an empty body")
			}
		})
	}
}

func TestEventController_QueryEvents(t *testing.T) {
	events := make([]*domain.Event, 0, 10)
	for i := 11; i <= 20; i++ {
		e := domain.EventDto{Name: "event", Description: "test event"}.ToEvent()
		e.ID = i
		events = append(events, e)
	}
	fake := newFakeEventService()
	fake.listResult = &domain.EventPage{
		Events:  events,
		Total:   30,
		Request: domain.PageRequest{Page: 1, Size: 10, Sort: []domain.SortOrder{{Property: "name", Direction: domain.SortDesc}}},
	}
	ctrl := NewEventController(testLogger, fake, "")
	req := httptest.NewRequest(http.MethodGet, "http://api.local/api/events?page=1&size=10&sort=name,DESC", nil)
	rr := httptest.NewRecorder()

	ctrl.QueryEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, helpers.ContentTypeHALJSON, rr.Header().Get("Content-Type"))
	assert.Equal(t, domain.PageRequest{Page: 1, Size: 10, Sort: []domain.SortOrder{{Property: "name", Direction: domain.SortDesc}}}, fake.lastListReq)

	var body struct {
		Embedded struct {
			EventList []resourceBody `json:"eventList"`
		} `json:"_embedded"`
		Page struct {
			Size          int `json:"size"`
			TotalElements int `json:"totalElements"`
			TotalPages    int `json:"totalPages"`
			Number        int `json:"number"`
		} `json:"page"`
		Links map[string]map[string]string `json:"_links"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body.Embedded.EventList, 10)
	assert.Equal(t, "http://api.local/api/events/11", body.Embedded.EventList[0].Links["self"]["href"])
	assert.Equal(t, 30, body.Page.TotalElements)
	assert.Equal(t, 3, body.Page.TotalPages)
	assert.Equal(t, 1, body.Page.Number)
	for _, rel := range []string{"first", "prev", "self", "next", "last", "profile"} {
		assert.NotEmpty(t, body.Links[rel]["href"], rel)
	}
	assert.Equal(t, "http://api.local/api/events?page=2&size=10&sort=name,desc", body.Links["next"]["href"])
}

func TestEventController_QueryEvents_ServiceError(t *testing.T) {
	fake := newFakeEventService()
	fake.err = errors.New("db error")
	ctrl := NewEventController(testLogger, fake, testBaseURL)
	rr := httptest.NewRecorder()

	ctrl.QueryEvents(rr, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, domain.PageRequest{Page: 0, Size: 20}, fake.lastListReq)
}

func TestEventController_UpdateEvent(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		body        string
		fakeErr     error
		wantStatus  int
		wantUpdate  bool
		wantOffline bool
	}{
		{
			name:        "location set makes the event offline",
			id:          "1",
			body:        eventBody(t, map[string]any{"name": "Updated", "location": "강남역 D2 스타트업 팩토리"}),
			wantStatus:  http.StatusOK,
			wantUpdate:  true,
			wantOffline: true,
		},
		{
			name:       "omitted location clears it",
			id:         "1",
			body:       eventBody(t, map[string]any{"name": "Updated", "location": nil}),
			wantStatus: http.StatusOK,
			wantUpdate: true,
		},
		{
			name:       "empty body",
			id:         "1",
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "structural errors come before the lookup",
			id:         "11883",
			body:       "{}",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "server controlled field",
			id:         "1",
			body:       eventBody(t, map[string]any{"eventStatus": "ENDED"}),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "business rule broken",
			id:         "1",
			body:       eventBody(t, map[string]any{"basePrice": 20000, "maxPrice": 200}),
			wantStatus: http.StatusBadRequest,
			wantUpdate: true,
		},
		{
			name:       "unknown id",
			id:         "11883",
			body:       eventBody(t, nil),
			wantStatus: http.StatusNotFound,
			wantUpdate: true,
		},
		{
			name:       "non numeric id",
			id:         "abc",
			body:       eventBody(t, nil),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "service error",
			id:         "1",
			body:       eventBody(t, nil),
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEventService()
			stored := domain.EventDto{Name: "event 1", Description: "test event", BasePrice: 100, MaxPrice: 200, LimitOfEnrollment: 10}.ToEvent()
			stored.EventStatus = domain.EventStatusPublished
			fake.seed(stored)
			fake.err = tt.fakeErr
			ctrl := NewEventController(testLogger, fake, testBaseURL)
			req := httptest.NewRequest(http.MethodPut, "/api/events/"+tt.id, strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			rr := httptest.NewRecorder()

			ctrl.UpdateEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantUpdate {
				assert.Equal(t, 1, fake.updateCalls)
			} else {
				assert.Zero(t, fake.updateCalls)
			}
			switch tt.wantStatus {
			case http.StatusOK:
				res := decodeResource(t, rr)
				assert.Equal(t, 1, res.ID)
				assert.Equal(t, "Updated", res.Name)
				assert.Equal(t, tt.wantOffline, res.Offline)
				assert.Equal(t, domain.EventStatusPublished, res.EventStatus, "status is server controlled")
				assert.Equal(t, testBaseURL+"/swagger/index.html#/events/updateEvent", res.Links["profile"]["href"])
			case http.StatusBadRequest:
				errs := decodeFieldErrors(t, rr)
				require.NotEmpty(t, errs)
				assert.Equal(t, "event 1", fake.events[1].Name, "stored event must be unchanged")
			case http.StatusNotFound:
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
