package event

import (
	"context"
	"testing"

	"sportshots/internal/domain"
	"sportshots/internal/notify"
	"sportshots/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	if e != nil && e.ID == "" {
		e.ID = "evt-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) List(ctx context.Context, f repository.EventFilter, limit, offset int) ([]domain.Event, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EventCreated(ctx context.Context, e *domain.Event, opts notify.Options) notify.Result {
	args := m.Called(ctx, e, opts)
	return args.Get(0).(notify.Result)
}

func (m *MockNotifier) EventUpdated(ctx context.Context, e *domain.Event, changes []string, opts notify.Options) notify.Result {
	args := m.Called(ctx, e, changes, opts)
	return args.Get(0).(notify.Result)
}

var admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

func validCreateRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:    "City Marathon",
		Date:     "2026-10-04",
		Location: "Rotterdam",
		ImageURL: "/static/uploads/2026/09/01/cover.jpg",
	}
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Event")).Return(nil)

	svc := NewService(repo, nil, nil)

	req := validCreateRequest()
	req.PhotographerIDs = []string{"p1", "p2", "p1"}

	e, err := svc.Create(context.Background(), admin, req)

	assert.NoError(t, err)
	assert.Equal(t, "City Marathon", e.Title)
	assert.Equal(t, []string{"p1", "p2"}, e.PhotographerIDs, "duplicate assignments collapse")
	assert.NotNil(t, e.ConfirmationMap)
	assert.Empty(t, e.ConfirmationMap, "new events start with no answers")
	repo.AssertExpectations(t)
}

func TestService_Create_ForbiddenForNonAdmin(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewService(repo, nil, nil)

	photographer := domain.Actor{UserID: "p1", Role: domain.RolePhotographer}
	_, err := svc.Create(context.Background(), photographer, validCreateRequest())

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ValidationRejectsNothingPersisted(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateEventRequest)
	}{
		{"missing title", func(r *CreateEventRequest) { r.Title = "  " }},
		{"missing date", func(r *CreateEventRequest) { r.Date = "" }},
		{"missing location", func(r *CreateEventRequest) { r.Location = "" }},
		{"missing image", func(r *CreateEventRequest) { r.ImageURL = "" }},
		{"malformed date", func(r *CreateEventRequest) { r.Date = "04-10-2026" }},
		{"end before start", func(r *CreateEventRequest) { r.EndDate = "2026-10-01" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockEventRepository)
			svc := NewService(repo, nil, nil)

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), admin, req)

			assert.ErrorIs(t, err, ErrValidation)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_DispatchesNotifications(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotifier)
	notifs.On("EventCreated", mock.Anything, mock.Anything, notify.Options{
		ConfirmationRequests: true,
		NewsletterBroadcast:  true,
	}).Return(notify.Result{Sent: 2})

	svc := NewService(repo, notifs, nil)

	req := validCreateRequest()
	req.PhotographerIDs = []string{"p1", "p2"}
	req.NotifyPhotographers = true
	req.NotifySubscribers = true

	_, err := svc.Create(context.Background(), admin, req)

	assert.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestService_Create_NoConfirmationRequestsWithoutAssignments(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	notifs := new(MockNotifier)
	notifs.On("EventCreated", mock.Anything, mock.Anything, notify.Options{
		ConfirmationRequests: false,
		NewsletterBroadcast:  true,
	}).Return(notify.Result{})

	svc := NewService(repo, notifs, nil)

	req := validCreateRequest()
	req.NotifyPhotographers = true // requested, but nobody is assigned
	req.NotifySubscribers = true

	_, err := svc.Create(context.Background(), admin, req)

	assert.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil, nil)

	_, err := svc.Update(context.Background(), admin, "missing", UpdateEventRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_MergesAndKeepsConfirmations(t *testing.T) {
	stored := &domain.Event{
		ID:              "evt-1",
		Title:           "City Marathon",
		Date:            "2026-10-04",
		Location:        "Rotterdam",
		ImageURL:        "/img/cover.jpg",
		PhotographerIDs: []string{"p1", "p2"},
		ConfirmationMap: map[string]bool{"p1": true, "p2": false},
	}

	repo := new(MockEventRepository)
	repo.On("GetByID", mock.Anything, "evt-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil, nil)

	newLocation := "Amsterdam"
	ids := []string{"p2"}
	e, err := svc.Update(context.Background(), admin, "evt-1", UpdateEventRequest{
		Location:        &newLocation,
		PhotographerIDs: &ids,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Amsterdam", e.Location)
	assert.Equal(t, "City Marathon", e.Title, "untouched fields survive")
	assert.Equal(t, []string{"p2"}, e.PhotographerIDs)
	assert.Equal(t, map[string]bool{"p1": true, "p2": false}, e.ConfirmationMap,
		"answers of unassigned photographers are kept")
}

func TestService_Update_NotifiesWithChangeList(t *testing.T) {
	stored := &domain.Event{
		ID:       "evt-1",
		Title:    "City Marathon",
		Date:     "2026-10-04",
		Location: "Rotterdam",
		ImageURL: "/img/cover.jpg",
	}

	repo := new(MockEventRepository)
	repo.On("GetByID", mock.Anything, "evt-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	var gotChanges []string
	notifs := new(MockNotifier)
	notifs.On("EventUpdated", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			gotChanges = args.Get(2).([]string)
		}).
		Return(notify.Result{})

	svc := NewService(repo, notifs, nil)

	newLocation := "Amsterdam"
	_, err := svc.Update(context.Background(), admin, "evt-1", UpdateEventRequest{
		Location:          &newLocation,
		NotifySubscribers: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{`Location changed from "Rotterdam" to "Amsterdam"`}, gotChanges)
}

func TestService_Delete_UnknownIDSucceeds(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("Delete", mock.Anything, "ghost").Return(nil)

	svc := NewService(repo, nil, nil)

	assert.NoError(t, svc.Delete(context.Background(), admin, "ghost"))
}

func TestService_List_ClampsLimit(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("List", mock.Anything, repository.EventFilter{}, 50, 0).Return([]domain.Event{}, nil)

	svc := NewService(repo, nil, nil)

	_, err := svc.List(context.Background(), repository.EventFilter{}, 0, 0)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
