package handler

import "github.com/csvshipper/csv-shipper/internal/core/domain"

type signupRequest struct {
	FirstName       string `json:"first_name"       validate:"required,min=2,max=25"`
	LastName        string `json:"last_name"        validate:"required,min=2,max=25"`
	Email           string `json:"email"            validate:"required,email"`
	Username        string `json:"username"         validate:"required,min=8,max=20"`
	Password        string `json:"password"         validate:"required,min=8,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=8,max=20"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

type passwordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordResetConfirmRequest struct {
	Password        string `json:"password"         validate:"required,min=8,max=20"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type dashboardResponse struct {
	User      *domain.User          `json:"user"`
	Addresses []domain.SavedAddress `json:"addresses"`
}

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}
