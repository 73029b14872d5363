package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"

	"github.com/magnuscit/magnus-mail/internal/mail"
)

// ResendConfig holds the API key and sender identity for the Resend adapter.
type ResendConfig struct {
	APIKey     string
	Source     string
	SourceName string
}

// Resend sends email through the Resend API behind the same mail.Sender
// contract as the SES adapter. Attachments are passed through the structured
// request; the raw MIME form is not needed here.
type Resend struct {
	client *resend.Client
	from   string
}

// NewResend builds a Resend adapter.
func NewResend(cfg ResendConfig) *Resend {
	from := cfg.Source
	if cfg.SourceName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.SourceName, cfg.Source)
	}
	return &Resend{
		client: resend.NewClient(cfg.APIKey),
		from:   from,
	}
}

// Send implements mail.Sender.
func (r *Resend) Send(ctx context.Context, email *mail.Email) error {
	params := &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
	}
	if att := email.Attachment; att != nil {
		params.Attachments = []*resend.Attachment{
			{
				Filename: att.Filename,
				Content:  att.Content,
			},
		}
	}

	if _, err := r.client.Emails.SendWithContext(ctx, params); err != nil {
		return errors.Wrapf(err, "resend: send to %s failed", email.To)
	}
	return nil
}
