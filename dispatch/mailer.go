package dispatch

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// AckMailer sends best-effort complaint receipt emails. A nil mailer or a
// send failure is logged and swallowed: simulated operations must never
// surface spurious failures to the complainant.
type AckMailer struct {
	client *sendgrid.Client
	from   string
}

// NewAckMailer returns nil when no API key is configured, which disables the
// email path entirely
func NewAckMailer(apiKey, from string) *AckMailer {
	if apiKey == "" {
		return nil
	}
	if from == "" {
		from = "no-reply@mppolice.gov.in"
	}
	return &AckMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
	}
}

// SendComplaintReceipt emails the generated complaint id to the complainant
func (m *AckMailer) SendComplaintReceipt(toName, toEmail, complaintID string) {
	if m == nil || toEmail == "" {
		return
	}

	from := mail.NewEmail("MP Police Cyber Cell", m.from)
	to := mail.NewEmail(toName, toEmail)
	subject := "Complaint Filed Successfully"
	plain := fmt.Sprintf("Your complaint has been registered. Your complaint ID is %s. Keep it for your records.", complaintID)
	html := fmt.Sprintf("<p>Your complaint has been registered.</p><p>Your complaint ID is <strong>%s</strong>. Keep it for your records.</p>", complaintID)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send complaint receipt email", "error", err, "to", toEmail)
		return
	}
	zap.S().Infow("complaint receipt email sent", "to", toEmail, "status", resp.StatusCode)
}
