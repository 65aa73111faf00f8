package faq

type SubmitQuestionRequest struct {
	Question       string `json:"question" validate:"required"`
	Category       string `json:"category"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email" validate:"omitempty,email"`
}

type ApproveRequest struct {
	Title    string `json:"title"`
	Answer   string `json:"answer" validate:"required"`
	Category string `json:"category"`
}

// FAQView is the public shape of an approved entry, resolved to one
// language.
type FAQView struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Lang     string `json:"lang"`
}
