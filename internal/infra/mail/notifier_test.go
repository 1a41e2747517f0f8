package mail

import (
	"context"
	"strings"
	"testing"

	"panel/config"
	"panel/internal/domain/entity"
	domainerrors "panel/internal/domain/errors"
	mockSvc "panel/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotifier(t *testing.T) (*mockSvc.MockMailer, *notifier) {
	mailer := mockSvc.NewMockMailer(t)
	cfg := &config.Config{Mail: &config.MailConfig{ResetBaseURL: "https://panel.example.com"}}

	return mailer, NewSecurityNotifier(cfg, mailer).(*notifier)
}

func TestResolveAddress(t *testing.T) {
	t.Parallel()

	_, n := createTestNotifier(t)

	testCases := []struct {
		name    string
		admin   *entity.Admin
		want    string
		wantErr error
	}{
		{
			name:  "login email routing",
			admin: &entity.Admin{LoginID: "admin@example.com", UsesLoginEmail: true},
			want:  "admin@example.com",
		},
		{
			name: "login email routing ignores a stored contact email",
			admin: &entity.Admin{
				LoginID:        "admin@example.com",
				ContactEmail:   "alerts@example.com",
				UsesLoginEmail: true,
			},
			want: "admin@example.com",
		},
		{
			name: "contact email routing",
			admin: &entity.Admin{
				LoginID:      "admin@example.com",
				ContactEmail: "alerts@example.com",
			},
			want: "alerts@example.com",
		},
		{
			name:    "contact routing without a contact email",
			admin:   &entity.Admin{LoginID: "admin@example.com"},
			wantErr: domainerrors.ErrMissingContactEmail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			address, err := n.ResolveAddress(tc.admin)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, address)
		})
	}
}

func TestSendResetLink(t *testing.T) {
	mailer, n := createTestNotifier(t)
	ctx := context.Background()
	admin := &entity.Admin{LoginID: "admin@example.com", UsesLoginEmail: true}

	var body string
	mailer.On("Send", ctx, "admin@example.com", "Password Reset Request", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	err := n.SendResetLink(ctx, admin, "tok/with+special chars")

	require.NoError(t, err)
	assert.Contains(t, body, "https://panel.example.com/reset-password?token=tok%2Fwith%2Bspecial+chars")
	assert.NotContains(t, body, "token=tok/with", "raw token must be query-escaped")
}

func TestSendResetLink_UnroutableAccount(t *testing.T) {
	mailer, n := createTestNotifier(t)
	admin := &entity.Admin{LoginID: "admin@example.com"}

	err := n.SendResetLink(context.Background(), admin, "token")

	assert.ErrorIs(t, err, domainerrors.ErrMissingContactEmail)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendTemporaryPassword_EscapesContent(t *testing.T) {
	mailer, n := createTestNotifier(t)
	ctx := context.Background()

	var body string
	mailer.On("Send", ctx, "new.user@example.com", "Your temporary password", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	err := n.SendTemporaryPassword(ctx, "new.user@example.com", "<Bob>", "p&ss<word>")

	require.NoError(t, err)
	assert.True(t, strings.Contains(body, "&lt;Bob&gt;"))
	assert.True(t, strings.Contains(body, "p&amp;ss&lt;word&gt;"))
}
