package service

import (
	"context"

	"panel/internal/domain/entity"
)

// Mailer hands a message to the external email dispatcher. Delivery is
// best-effort: a failure is reported to the caller but never rolls back a
// state change that already happened.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SecurityNotifier decides which address receives a security notification
// for an account and dispatches the message through the Mailer.
type SecurityNotifier interface {
	// ResolveAddress returns the login identity when the account routes
	// mail there, the contact email otherwise. A missing contact email is
	// an error; profile validation makes that unreachable in practice.
	ResolveAddress(admin *entity.Admin) (string, error)

	// SendResetLink emails a password-reset link carrying the token to
	// the account's resolved notification address.
	SendResetLink(ctx context.Context, admin *entity.Admin, resetToken string) error

	// SendTemporaryPassword emails a freshly generated temporary password
	// to a provisioned account's address.
	SendTemporaryPassword(ctx context.Context, to, name, tempPassword string) error
}
