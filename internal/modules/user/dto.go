package user

type ProvisionPhotographerRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"required"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
	// Password is optional; when empty the account can only sign in via
	// magic link.
	Password string `json:"password"`
}

type UpdatePhotographerRequest struct {
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}
