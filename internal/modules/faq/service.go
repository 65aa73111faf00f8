package faq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"sportshots/internal/domain"

	"gorm.io/gorm"
)

// baseLang is the language submissions arrive in; listings in other
// languages go through the translation cache.
const baseLang = "en"

type Service struct {
	faqs       FAQRepository
	translator Translator
	feed       FeedPublisher
}

func NewService(faqs FAQRepository, translator Translator, feed FeedPublisher) *Service {
	if translator == nil {
		translator = PassthroughTranslator{}
	}
	return &Service{faqs: faqs, translator: translator, feed: feed}
}

// Submit files a visitor question. It always enters the queue as
// pending, whatever the caller sends.
func (s *Service) Submit(ctx context.Context, req SubmitQuestionRequest) (*domain.FAQ, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrValidation)
	}

	f := &domain.FAQ{
		Question:       question,
		Category:       req.Category,
		Status:         domain.FAQPending,
		SubmitterName:  req.SubmitterName,
		SubmitterEmail: req.SubmitterEmail,
	}
	if err := s.faqs.Create(ctx, f); err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Publish("faq.submitted", map[string]any{"id": f.ID, "category": f.Category})
	}
	return f, nil
}

// ListApproved returns published entries resolved to the requested
// language. Missing translations are produced on demand and cached;
// when translation fails the base language text is served instead.
func (s *Service) ListApproved(ctx context.Context, lang, category string) ([]FAQView, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = baseLang
	}

	faqs, err := s.faqs.List(ctx, domain.FAQApproved, category)
	if err != nil {
		return nil, err
	}

	views := make([]FAQView, 0, len(faqs))
	for i := range faqs {
		views = append(views, s.resolve(ctx, &faqs[i], lang))
	}
	return views, nil
}

func (s *Service) resolve(ctx context.Context, f *domain.FAQ, lang string) FAQView {
	base := FAQView{
		ID:       f.ID,
		Title:    f.Title,
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Lang:     baseLang,
	}
	if lang == baseLang {
		return base
	}

	if cached, ok := f.Translations[lang]; ok {
		base.Title = cached.Title
		base.Question = cached.Question
		base.Answer = cached.Answer
		base.Lang = lang
		return base
	}

	translated, err := s.translator.Translate(ctx, lang, domain.FAQTranslation{
		Title:    f.Title,
		Question: f.Question,
		Answer:   f.Answer,
	})
	if err != nil {
		log.Printf("faq: translate id=%s lang=%s error=%v", f.ID, lang, err)
		return base
	}

	if f.Translations == nil {
		f.Translations = make(map[string]domain.FAQTranslation)
	}
	f.Translations[lang] = translated
	if err := s.faqs.Update(ctx, f); err != nil {
		log.Printf("faq: cache translation id=%s lang=%s error=%v", f.ID, lang, err)
	}

	base.Title = translated.Title
	base.Question = translated.Question
	base.Answer = translated.Answer
	base.Lang = lang
	return base
}

func (s *Service) ListByStatus(ctx context.Context, actor domain.Actor, status domain.FAQStatus, category string) ([]domain.FAQ, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.faqs.List(ctx, status, category)
}

// Approve publishes a pending question with its answer. Any cached
// translations are discarded since the entry text changed.
func (s *Service) Approve(ctx context.Context, actor domain.Actor, id string, req ApproveRequest) (*domain.FAQ, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Answer) == "" {
		return nil, fmt.Errorf("%w: answer is required to approve", ErrValidation)
	}

	f, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		f.Title = req.Title
	}
	if req.Category != "" {
		f.Category = req.Category
	}
	f.Answer = req.Answer
	f.Status = domain.FAQApproved
	f.Translations = nil

	if err := s.faqs.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Reject(ctx context.Context, actor domain.Actor, id string) (*domain.FAQ, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	f, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	f.Status = domain.FAQRejected
	if err := s.faqs.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// SetTranslation stores a hand-written translation, overriding whatever
// the machine translation cache holds for that language.
func (s *Service) SetTranslation(ctx context.Context, actor domain.Actor, id, lang string, tr domain.FAQTranslation) (*domain.FAQ, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" || lang == baseLang {
		return nil, fmt.Errorf("%w: lang must name a non-default language", ErrValidation)
	}
	if strings.TrimSpace(tr.Question) == "" {
		return nil, fmt.Errorf("%w: translated question is required", ErrValidation)
	}

	f, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if f.Translations == nil {
		f.Translations = make(map[string]domain.FAQTranslation)
	}
	f.Translations[lang] = tr

	if err := s.faqs.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.faqs.Delete(ctx, id)
}

func (s *Service) get(ctx context.Context, id string) (*domain.FAQ, error) {
	f, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
