package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleUser represents the key information extracted from the validated Google ID Token
type GoogleUser struct {
	UID           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// GoogleVerifier validates Google ID tokens
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleUser, error)
}

type idTokenVerifier struct {
	validator *idtoken.Validator
	clientID  string
}

// NewGoogleVerifier validates tokens against the given OAuth client id
func NewGoogleVerifier(ctx context.Context, clientID string) (GoogleVerifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("google client id is required")
	}

	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("create google token validator: %w", err)
	}
	return &idTokenVerifier{validator: v, clientID: clientID}, nil
}

func (g *idTokenVerifier) Verify(ctx context.Context, idToken string) (*GoogleUser, error) {
	payload, err := g.validator.Validate(ctx, idToken, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", err)
	}

	googleUser := &GoogleUser{
		UID: payload.Subject,
	}

	if email, ok := payload.Claims["email"].(string); ok {
		googleUser.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		googleUser.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		googleUser.Picture = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		googleUser.EmailVerified = verified
	}

	return googleUser, nil
}
