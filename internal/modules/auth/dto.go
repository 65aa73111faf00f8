package auth

type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MagicLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

type PasswordLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}
