package apihandler

// Request bodies checked before forwarding. Only the fields this service needs
// to vouch for are declared; the original body is forwarded untouched.

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateSiteRequest struct {
	URL  string `json:"url"  validate:"required,url"`
	Name string `json:"name"`
}

type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required"`
}

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

type CheckoutRequest struct {
	Plan      string `json:"plan"      validate:"required,oneof=starter pro agency"`
	ProjectID string `json:"projectId" validate:"required"`
	Email     string `json:"email"     validate:"omitempty,email"`
}

type PortalRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}
