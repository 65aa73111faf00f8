package confirm

import (
	"context"
	"testing"

	"sportshots/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) SetConfirmation(ctx context.Context, eventID, photographerID string, accepted bool) error {
	args := m.Called(ctx, eventID, photographerID, accepted)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func assignedEvent() *domain.Event {
	return &domain.Event{
		ID:              "evt-1",
		Title:           "City Marathon",
		Date:            "2026-10-04",
		Location:        "Rotterdam",
		PhotographerIDs: []string{"p1", "p2"},
		ConfirmationMap: map[string]bool{"p2": false},
	}
}

func TestResolveContext_PendingWhenNoAnswer(t *testing.T) {
	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(assignedEvent(), nil)

	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "p1").Return(&domain.User{ID: "p1", Name: "Mara"}, nil)

	svc := NewService(events, users)

	result, err := svc.ResolveContext(context.Background(), "evt-1", "p1")

	assert.NoError(t, err)
	assert.Equal(t, domain.ConfirmationPending, result.Status)
	assert.Equal(t, "Mara", result.Photographer.Name)
}

func TestResolveContext_DeclinedAnswerIsNotPending(t *testing.T) {
	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(assignedEvent(), nil)

	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "p2").Return(&domain.User{ID: "p2", Name: "Jonas"}, nil)

	svc := NewService(events, users)

	result, err := svc.ResolveContext(context.Background(), "evt-1", "p2")

	assert.NoError(t, err)
	assert.Equal(t, domain.ConfirmationDeclined, result.Status,
		"a recorded false answer is declined, not pending")
}

func TestResolveContext_EventNotFound(t *testing.T) {
	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(events, new(MockUserRepository))

	_, err := svc.ResolveContext(context.Background(), "missing", "p1")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveContext_NotAssigned(t *testing.T) {
	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(assignedEvent(), nil)

	svc := NewService(events, new(MockUserRepository))

	_, err := svc.ResolveContext(context.Background(), "evt-1", "stranger")

	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestResolveContext_StaleConfirmationEntryDoesNotGrantAccess(t *testing.T) {
	e := assignedEvent()
	e.PhotographerIDs = []string{"p1"}
	// p2 answered before being unassigned; the entry remains
	e.ConfirmationMap = map[string]bool{"p2": true}

	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(e, nil)

	svc := NewService(events, new(MockUserRepository))

	_, err := svc.ResolveContext(context.Background(), "evt-1", "p2")

	assert.ErrorIs(t, err, ErrNotAssigned)
}

func TestResolveContext_DeletedPhotographerRendersWithoutProfile(t *testing.T) {
	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(assignedEvent(), nil)

	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "p1").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(events, users)

	result, err := svc.ResolveContext(context.Background(), "evt-1", "p1")

	assert.NoError(t, err)
	assert.Nil(t, result.Photographer)
	assert.Equal(t, domain.ConfirmationPending, result.Status)
}

func TestSetConfirmation_RecordsAnswer(t *testing.T) {
	e := assignedEvent()

	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(e, nil)
	events.On("SetConfirmation", mock.Anything, "evt-1", "p1", true).
		Run(func(mock.Arguments) { e.ConfirmationMap["p1"] = true }).
		Return(nil)

	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "p1").Return(&domain.User{ID: "p1", Name: "Mara"}, nil)

	svc := NewService(events, users)

	result, err := svc.SetConfirmation(context.Background(), "evt-1", "p1", true)

	assert.NoError(t, err)
	assert.Equal(t, domain.ConfirmationConfirmed, result.Status)
}

func TestSetConfirmation_LastWriteWins(t *testing.T) {
	e := assignedEvent()

	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(e, nil)
	events.On("SetConfirmation", mock.Anything, "evt-1", "p2", true).
		Run(func(mock.Arguments) { e.ConfirmationMap["p2"] = true }).
		Return(nil)

	users := new(MockUserRepository)
	users.On("GetByID", mock.Anything, "p2").Return(&domain.User{ID: "p2"}, nil)

	svc := NewService(events, users)

	// p2 had declined; changing the answer is allowed
	result, err := svc.SetConfirmation(context.Background(), "evt-1", "p2", true)

	assert.NoError(t, err)
	assert.Equal(t, domain.ConfirmationConfirmed, result.Status)
}

func TestSetConfirmation_ReassignmentRevokesStaleLink(t *testing.T) {
	e := assignedEvent()
	e.PhotographerIDs = []string{"p2"}

	events := new(MockEventRepository)
	events.On("GetByID", mock.Anything, "evt-1").Return(e, nil)

	svc := NewService(events, new(MockUserRepository))

	_, err := svc.SetConfirmation(context.Background(), "evt-1", "p1", true)

	assert.ErrorIs(t, err, ErrNotAssigned)
	events.AssertNotCalled(t, "SetConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
