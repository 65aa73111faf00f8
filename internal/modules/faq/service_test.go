package faq

import (
	"context"
	"errors"
	"testing"

	"sportshots/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	args := m.Called(ctx, f)
	if f != nil && f.ID == "" {
		f.ID = "faq-1"
	}
	return args.Error(0)
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FAQ), args.Error(1)
}

func (m *MockFAQRepository) List(ctx context.Context, status domain.FAQStatus, category string) ([]domain.FAQ, error) {
	args := m.Called(ctx, status, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Update(ctx context.Context, f *domain.FAQ) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFAQRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakeTranslator struct {
	calls int
	fail  bool
}

func (f *fakeTranslator) Translate(_ context.Context, target string, src domain.FAQTranslation) (domain.FAQTranslation, error) {
	f.calls++
	if f.fail {
		return domain.FAQTranslation{}, errors.New("translation backend down")
	}
	return domain.FAQTranslation{
		Title:    "[" + target + "] " + src.Title,
		Question: "[" + target + "] " + src.Question,
		Answer:   "[" + target + "] " + src.Answer,
	}, nil
}

var admin = domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}

func TestSubmit_AlwaysEntersPending(t *testing.T) {
	repo := new(MockFAQRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil, nil)

	f, err := svc.Submit(context.Background(), SubmitQuestionRequest{
		Question: "Do you cover night races?",
		Category: "coverage",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FAQPending, f.Status)
}

func TestSubmit_RejectsBlankQuestion(t *testing.T) {
	repo := new(MockFAQRepository)
	svc := NewService(repo, nil, nil)

	_, err := svc.Submit(context.Background(), SubmitQuestionRequest{Question: "   "})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestListApproved_BaseLanguageSkipsTranslator(t *testing.T) {
	repo := new(MockFAQRepository)
	repo.On("List", mock.Anything, domain.FAQApproved, "").Return([]domain.FAQ{
		{ID: "faq-1", Question: "Q", Answer: "A", Status: domain.FAQApproved},
	}, nil)

	tr := &fakeTranslator{}
	svc := NewService(repo, tr, nil)

	views, err := svc.ListApproved(context.Background(), "", "")

	assert.NoError(t, err)
	assert.Equal(t, "en", views[0].Lang)
	assert.Equal(t, 0, tr.calls)
}

func TestListApproved_TranslatesAndCaches(t *testing.T) {
	entry := domain.FAQ{ID: "faq-1", Question: "Q", Answer: "A", Status: domain.FAQApproved}

	repo := new(MockFAQRepository)
	repo.On("List", mock.Anything, domain.FAQApproved, "").Return([]domain.FAQ{entry}, nil)

	var cached *domain.FAQ
	repo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { cached = args.Get(1).(*domain.FAQ) }).
		Return(nil)

	tr := &fakeTranslator{}
	svc := NewService(repo, tr, nil)

	views, err := svc.ListApproved(context.Background(), "nl", "")

	assert.NoError(t, err)
	assert.Equal(t, "nl", views[0].Lang)
	assert.Equal(t, "[nl] Q", views[0].Question)
	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, "[nl] A", cached.Translations["nl"].Answer, "translation is persisted")
}

func TestListApproved_CachedTranslationSkipsTranslator(t *testing.T) {
	entry := domain.FAQ{
		ID:       "faq-1",
		Question: "Q",
		Answer:   "A",
		Status:   domain.FAQApproved,
		Translations: map[string]domain.FAQTranslation{
			"nl": {Question: "Vraag", Answer: "Antwoord"},
		},
	}

	repo := new(MockFAQRepository)
	repo.On("List", mock.Anything, domain.FAQApproved, "").Return([]domain.FAQ{entry}, nil)

	tr := &fakeTranslator{}
	svc := NewService(repo, tr, nil)

	views, err := svc.ListApproved(context.Background(), "NL", "")

	assert.NoError(t, err)
	assert.Equal(t, "Vraag", views[0].Question)
	assert.Equal(t, 0, tr.calls)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListApproved_TranslatorFailureFallsBackToBase(t *testing.T) {
	repo := new(MockFAQRepository)
	repo.On("List", mock.Anything, domain.FAQApproved, "").Return([]domain.FAQ{
		{ID: "faq-1", Question: "Q", Answer: "A", Status: domain.FAQApproved},
	}, nil)

	svc := NewService(repo, &fakeTranslator{fail: true}, nil)

	views, err := svc.ListApproved(context.Background(), "nl", "")

	assert.NoError(t, err)
	assert.Equal(t, "en", views[0].Lang)
	assert.Equal(t, "Q", views[0].Question)
}

func TestApprove_RequiresAnswer(t *testing.T) {
	svc := NewService(new(MockFAQRepository), nil, nil)

	_, err := svc.Approve(context.Background(), admin, "faq-1", ApproveRequest{Answer: " "})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestApprove_PublishesAndClearsTranslations(t *testing.T) {
	stored := &domain.FAQ{
		ID:       "faq-1",
		Question: "Q",
		Status:   domain.FAQPending,
		Translations: map[string]domain.FAQTranslation{
			"nl": {Question: "Oude vraag"},
		},
	}

	repo := new(MockFAQRepository)
	repo.On("GetByID", mock.Anything, "faq-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil, nil)

	f, err := svc.Approve(context.Background(), admin, "faq-1", ApproveRequest{
		Title:  "Night races",
		Answer: "Yes, with extra lighting gear.",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.FAQApproved, f.Status)
	assert.Equal(t, "Yes, with extra lighting gear.", f.Answer)
	assert.Nil(t, f.Translations, "stale translations are dropped")
}

func TestSetTranslation_OverridesCachedMachineTranslation(t *testing.T) {
	stored := &domain.FAQ{
		ID:       "faq-1",
		Question: "Q",
		Answer:   "A",
		Status:   domain.FAQApproved,
		Translations: map[string]domain.FAQTranslation{
			"nl": {Question: "[machine] Q", Answer: "[machine] A"},
		},
	}

	repo := new(MockFAQRepository)
	repo.On("GetByID", mock.Anything, "faq-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, nil, nil)

	f, err := svc.SetTranslation(context.Background(), admin, "faq-1", "NL", domain.FAQTranslation{
		Question: "Handgeschreven vraag",
		Answer:   "Handgeschreven antwoord",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Handgeschreven vraag", f.Translations["nl"].Question)
}

func TestSetTranslation_RejectsBaseLanguage(t *testing.T) {
	svc := NewService(new(MockFAQRepository), nil, nil)

	_, err := svc.SetTranslation(context.Background(), admin, "faq-1", "en", domain.FAQTranslation{Question: "Q"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestReject_NotFound(t *testing.T) {
	repo := new(MockFAQRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo, nil, nil)

	_, err := svc.Reject(context.Background(), admin, "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTriage_ForbiddenForNonAdmin(t *testing.T) {
	svc := NewService(new(MockFAQRepository), nil, nil)

	visitor := domain.Actor{UserID: "u1", Role: domain.RoleUser}

	_, err := svc.Approve(context.Background(), visitor, "faq-1", ApproveRequest{Answer: "A"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListByStatus(context.Background(), visitor, domain.FAQPending, "")
	assert.ErrorIs(t, err, ErrForbidden)
}
