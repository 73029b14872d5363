package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/pkg/errors"

	"github.com/magnuscit/magnus-mail/internal/mail"
)

// SESConfig holds the credentials and sender identity for the SES adapter.
type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Source          string // verified sender address
	SourceName      string
}

// SES sends email through Amazon SES. Structured emails go through SendEmail;
// emails carrying an attachment are submitted as the composer's raw MIME
// message through SendRawEmail. The client is safe for concurrent use and is
// constructed once at startup.
type SES struct {
	client *ses.Client
	source string
}

// NewSES builds an SES adapter with static credentials.
func NewSES(ctx context.Context, cfg SESConfig) (*SES, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	source := cfg.Source
	if cfg.SourceName != "" {
		source = fmt.Sprintf("%s <%s>", cfg.SourceName, cfg.Source)
	}
	return &SES{
		client: ses.NewFromConfig(awsCfg),
		source: source,
	}, nil
}

// Send implements mail.Sender.
func (s *SES) Send(ctx context.Context, email *mail.Email) error {
	if email.Raw != nil {
		_, err := s.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
			Source:       aws.String(s.source),
			Destinations: []string{email.To},
			RawMessage:   &types.RawMessage{Data: email.Raw},
		})
		if err != nil {
			return errors.Wrapf(err, "ses: raw send to %s failed", email.To)
		}
		return nil
	}

	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.source),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(email.Subject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(email.HTML)},
				Text: &types.Content{Data: aws.String(email.Text)},
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "ses: send to %s failed", email.To)
	}
	return nil
}
