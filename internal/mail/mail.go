package mail

import (
	"bytes"
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type ResendMailer struct {
	client *resend.Client
	from   string
}

func NewResendMailer(apiKey, from string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

// PurchaseConfirmation builds the mail sent once a checkout is paid.
func PurchaseConfirmation(ctx context.Context, to, productName, assetURL string) (Message, error) {
	var body bytes.Buffer
	if err := purchaseBody(productName, assetURL).Render(ctx, &body); err != nil {
		return Message{}, fmt.Errorf("failed to render purchase mail: %w", err)
	}

	return Message{
		To:      to,
		Subject: "Your purchase: " + productName,
		HTML:    body.String(),
	}, nil
}
