package mail

import (
	"context"
	"fmt"
	"html"
	"net/url"

	"panel/config"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/service"
)

// notifier routes security notifications to the right address for an
// account and renders the message bodies.
type notifier struct {
	mailer       service.Mailer
	resetBaseURL string
}

// NewSecurityNotifier is the constructor for notifier.
func NewSecurityNotifier(cfg *config.Config, mailer service.Mailer) service.SecurityNotifier {
	resetBaseURL := ""
	if cfg.Mail != nil {
		resetBaseURL = cfg.Mail.ResetBaseURL
	}

	return &notifier{
		mailer:       mailer,
		resetBaseURL: resetBaseURL,
	}
}

// ResolveAddress picks the notification address per the account's
// routing flag. Profile validation keeps the missing-contact branch
// unreachable in practice.
func (n *notifier) ResolveAddress(admin *entity.Admin) (string, error) {
	if admin.UsesLoginEmail {
		return admin.LoginID, nil
	}

	if admin.ContactEmail == "" {
		return "", domainerrors.ErrMissingContactEmail.WrapMessage("account routes mail to contact email but none is set")
	}

	return admin.ContactEmail, nil
}

// SendResetLink emails a password-reset link to the resolved address.
func (n *notifier) SendResetLink(ctx context.Context, admin *entity.Admin, resetToken string) error {
	address, err := n.ResolveAddress(admin)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", n.resetBaseURL, url.QueryEscape(resetToken))
	body := fmt.Sprintf(`<h2>Reset your password</h2>
<p>You requested a password reset. Click the link below:</p>
<a href="%s">%s</a>
<p>This link is valid for 10 minutes.</p>`, resetLink, html.EscapeString(resetLink))

	return n.mailer.Send(ctx, address, "Password Reset Request", body)
}

// SendTemporaryPassword emails a generated temporary password to a newly
// provisioned account.
func (n *notifier) SendTemporaryPassword(ctx context.Context, to, name, tempPassword string) error {
	body := fmt.Sprintf(`<h2>Your account is ready</h2>
<p>Hello %s,</p>
<p>An account has been created for you. Sign in with the temporary password below and change it immediately:</p>
<p><strong>%s</strong></p>`, html.EscapeString(name), html.EscapeString(tempPassword))

	return n.mailer.Send(ctx, to, "Your temporary password", body)
}
