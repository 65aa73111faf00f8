package newsletter

import (
	"context"
	"testing"

	"sportshots/internal/domain"
	"sportshots/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil && s.ID == "" {
		s.ID = "sub-1"
		s.Active = true
	}
	return args.Error(0)
}

func (m *MockSubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subscriber), args.Error(1)
}

func (m *MockSubscriberRepository) Reactivate(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockSubscriberRepository) Deactivate(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestSubscribe_NewEmail(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)

	sub, err := svc.Subscribe(context.Background(), "  Fan@Example.COM ")

	assert.NoError(t, err)
	assert.Equal(t, "fan@example.com", sub.Email, "address is normalized before storage")
	assert.True(t, sub.Active)
	repo.AssertNotCalled(t, "Reactivate", mock.Anything, mock.Anything)
}

func TestSubscribe_DuplicateReactivates(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)
	repo.On("Reactivate", mock.Anything, "fan@example.com").Return(nil)
	repo.On("GetByEmail", mock.Anything, "fan@example.com").Return(&domain.Subscriber{
		ID:     "sub-1",
		Email:  "fan@example.com",
		Active: true,
	}, nil)

	svc := NewService(repo)

	sub, err := svc.Subscribe(context.Background(), "fan@example.com")

	assert.NoError(t, err)
	assert.True(t, sub.Active)
	repo.AssertExpectations(t)
}

func TestSubscribe_RejectsInvalidEmail(t *testing.T) {
	repo := new(MockSubscriberRepository)
	svc := NewService(repo)

	for _, bad := range []string{"", "   ", "not-an-email"} {
		_, err := svc.Subscribe(context.Background(), bad)
		assert.ErrorIs(t, err, ErrValidation, "input %q", bad)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnsubscribe_UnknownEmail(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)

	err := svc.Unsubscribe(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestUnsubscribe_Deactivates(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("GetByEmail", mock.Anything, "fan@example.com").Return(&domain.Subscriber{
		ID:     "sub-1",
		Email:  "fan@example.com",
		Active: true,
	}, nil)
	repo.On("Deactivate", mock.Anything, "fan@example.com").Return(nil)

	svc := NewService(repo)

	assert.NoError(t, svc.Unsubscribe(context.Background(), "Fan@Example.com"))
	repo.AssertExpectations(t)
}

func TestListActive_AdminOnly(t *testing.T) {
	repo := new(MockSubscriberRepository)
	svc := NewService(repo)

	visitor := domain.Actor{UserID: "u1", Role: domain.RoleUser}
	_, err := svc.ListActive(context.Background(), visitor)

	assert.ErrorIs(t, err, ErrForbidden)

	repo.On("ListActive", mock.Anything).Return([]domain.Subscriber{}, nil)
	adminActor := domain.Actor{UserID: "a1", Role: domain.RoleAdmin}
	_, err = svc.ListActive(context.Background(), adminActor)
	assert.NoError(t, err)
}
