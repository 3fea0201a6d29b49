package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/example/engstudy/internal/config"
	"go.uber.org/zap"
)

// SESClient is the part of the SES API used for reminders
type SESClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailNotifier sends reminders through Amazon SES
type EmailNotifier struct {
	client    SESClient
	fromEmail string
	fromName  string
	log       *zap.Logger
}

// NewEmailNotifier loads AWS credentials from the environment. It returns
// nil when no sender address is configured.
func NewEmailNotifier(ctx context.Context, cfg config.SES, log *zap.Logger) (*EmailNotifier, error) {
	if cfg.FromEmail == "" {
		log.Info("email notifier disabled: SES_FROM_EMAIL not configured")
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info("email notifier enabled", zap.String("from", cfg.FromEmail), zap.String("region", cfg.Region))
	return NewEmailNotifierWithClient(sesv2.NewFromConfig(awsCfg), cfg, log), nil
}

// NewEmailNotifierWithClient wraps an existing SES client
func NewEmailNotifierWithClient(client SESClient, cfg config.SES, log *zap.Logger) *EmailNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailNotifier{
		client:    client,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}
}

func (n *EmailNotifier) fromAddress() string {
	if n.fromName != "" {
		return fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail)
	}
	return n.fromEmail
}

func (n *EmailNotifier) Notify(ctx context.Context, r Reminder) error {
	if r.User.Email == "" {
		return fmt.Errorf("email: %w", ErrNoAddress)
	}

	subject := Subject(r)
	textBody := Text(r)
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body>
	<h2>%s</h2>
	<p>%s</p>
</body>
</html>
`, html.EscapeString(subject), html.EscapeString(textBody))

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.fromAddress()),
		Destination: &types.Destination{
			ToAddresses: []string{r.User.Email},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := n.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", r.User.Email, err)
	}

	fields := []zap.Field{zap.Int64("user_id", r.User.ID), zap.Int("due", r.DueCount)}
	if result != nil && result.MessageId != nil {
		fields = append(fields, zap.String("message_id", *result.MessageId))
	}
	n.log.Debug("email reminder sent", fields...)
	return nil
}
