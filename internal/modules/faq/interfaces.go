package faq

import (
	"context"

	"sportshots/internal/domain"
)

type FAQRepository interface {
	Create(ctx context.Context, f *domain.FAQ) error
	GetByID(ctx context.Context, id string) (*domain.FAQ, error)
	List(ctx context.Context, status domain.FAQStatus, category string) ([]domain.FAQ, error)
	Update(ctx context.Context, f *domain.FAQ) error
	Delete(ctx context.Context, id string) error
}

// Translator produces a translation of an approved entry for one target
// language. Implementations may call an external service; translations
// are cached on the entry so each language is paid for once.
type Translator interface {
	Translate(ctx context.Context, target string, src domain.FAQTranslation) (domain.FAQTranslation, error)
}

// PassthroughTranslator returns the source text unchanged. It stands in
// when no translation backend is configured.
type PassthroughTranslator struct{}

func (PassthroughTranslator) Translate(_ context.Context, _ string, src domain.FAQTranslation) (domain.FAQTranslation, error) {
	return src, nil
}

type FeedPublisher interface {
	Publish(kind string, payload any)
}
