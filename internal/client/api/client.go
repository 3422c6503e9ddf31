package api

import (
	"context"

	"github.com/yashwakde/promptvault/internal/client/models"
)

// RegisterRequest is the body of POST /user/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// VerifyRequest is the body of POST /user/verify.
type VerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePromptRequest is the body of POST /prompt/createprompt.
type CreatePromptRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag,omitempty"`
	Author      string `json:"author,omitempty"`
}

// Client is the transport seam between the session store / page
// controllers and the backend. Auth operations return the decoded response
// payload as-is so the caller can run the payload normalizers over it;
// list operations return already-normalized prompt lists.
//
// Implementations must not retry and must not apply session policy (a 401
// is returned like any other server error; reacting to it belongs to the
// session store).
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (any, error)
	VerifyEmail(ctx context.Context, req VerifyRequest) (any, error)
	Login(ctx context.Context, req LoginRequest) (any, error)
	Logout(ctx context.Context) error
	FetchProfile(ctx context.Context) (any, error)

	CreatePrompt(ctx context.Context, req CreatePromptRequest) (any, error)
	AllPrompts(ctx context.Context) ([]models.Prompt, error)
	MyPrompts(ctx context.Context, userID string) ([]models.Prompt, error)

	Close() error
}
