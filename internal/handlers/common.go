package handlers

import "github.com/magnuscit/magnus-mail/internal/mail"

// APIResponse is the standard envelope for every API reply.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SendResponse extends the envelope with the campaign report.
type SendResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Report  *mail.Report `json:"report,omitempty"`
}
