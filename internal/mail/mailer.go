// Package mail implements the outbound email gateway for the trip planner.
// It exposes a small Mailer interface consumed by the service layer, with an
// AWS SES implementation for production and a log-only implementation for
// local development.
package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Sender is the fixed identity outgoing messages are sent as.
type Sender struct {
	Name    string
	Address string
}

// Message is a single outbound email.
type Message struct {
	From    Sender
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single message and returns the provider's message id.
// Implementations must be safe for concurrent use: the trip confirmation
// fan-out calls Send from multiple goroutines at once.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SESMailer delivers messages through AWS SES using the SDK v2.
type SESMailer struct {
	client *sesv2.Client
}

// NewSESMailer creates an SES mailer with static credentials.
func NewSESMailer(ctx context.Context, region, accessKey, secretKey string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("mail.NewSESMailer: load AWS config: %w", err)
	}

	return &SESMailer{client: sesv2.NewFromConfig(cfg)}, nil
}

// Send delivers a single email through AWS SES and returns the SES message id.
func (m *SESMailer) Send(ctx context.Context, msg Message) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", msg.From.Name, msg.From.Address)),
		Destination:      &types.Destination{ToAddresses: []string{msg.To}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.HTML), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("mail.SESMailer.Send: %w", err)
	}

	var messageID string
	if out.MessageId != nil {
		messageID = *out.MessageId
	}
	return messageID, nil
}
