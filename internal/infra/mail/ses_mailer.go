// Package mail implements email dispatch and security-notification
// routing on top of Amazon SES.
package mail

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/pkg/errors"

	"panel/config"
	domainerrors "panel/internal/domain/errors"
	"panel/internal/domain/service"
)

// sesMailer hands messages to SES. Delivery failures surface to the
// caller as ErrMailDeliveryFailed and are never retried here.
type sesMailer struct {
	client *sesv2.Client
	sender string
}

// NewSESMailer is the constructor for sesMailer.
func NewSESMailer(ctx context.Context, cfg *config.Config) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Sender == "" {
		return nil, errors.New("mail sender must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Mail.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config for SES")
	}

	return &sesMailer{
		client: sesv2.NewFromConfig(awsCfg),
		sender: cfg.Mail.Sender,
	}, nil
}

// Send dispatches a single HTML message.
func (m *sesMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	})
	if err != nil {
		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	return nil
}
