package dto

import "github.com/spec-kit/storefront-service/internal/domain"

// RegisterRequest payload for new accounts. AccountType defaults to regular.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	BusinessName string `json:"business_name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	AccountType  string `json:"account_type" validate:"omitempty,oneof=regular wholesale"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView is the public account representation. It never carries the
// password hash.
type UserView struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	BusinessName      string `json:"business_name"`
	AccountType       string `json:"account_type"`
	WholesaleApproved bool   `json:"wholesale_approved"`
}

// AuthResponse is the register/login response shape.
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserView `json:"user"`
}

// NewUserView projects a domain user to its public view.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:                user.ID,
		Email:             user.Email,
		BusinessName:      user.BusinessName,
		AccountType:       string(user.AccountType),
		WholesaleApproved: user.WholesaleApproved,
	}
}

// NewAuthResponse bundles a bearer token with the public user view.
func NewAuthResponse(token string, user *domain.User) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        NewUserView(user),
	}
}
