package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

func (s *emailService) SendContractDocument(ctx context.Context, email, name string, reservationID int32, documentURL string) error {
	subject := fmt.Sprintf("Your rental agreement #%d", reservationID)
	plainText := fmt.Sprintf("Hello %s,\n\nYour rental agreement is ready:\n\n%s\n\nBest regards,\n%s", name, documentURL, s.fromName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hello %s,</p>
				<p>Your rental agreement is ready.</p>
				<p><a href="%s">Download your agreement</a></p>
				<p>Best regards,<br>%s</p>
			</body>
		</html>
	`, name, documentURL, s.fromName)

	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, name, vehicleLabel string, expectedEnd time.Time) error {
	subject := fmt.Sprintf("Return reminder — %s", vehicleLabel)
	plainText := fmt.Sprintf("Hello %s,\n\nThe %s was expected back on %s. Please contact us to arrange the return.\n\nBest regards,\n%s",
		name, vehicleLabel, expectedEnd.Format("2006-01-02 15:04"), s.fromName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>Hello %s,</p>
				<p>The <strong>%s</strong> was expected back on %s. Please contact us to arrange the return.</p>
				<p>Best regards,<br>%s</p>
			</body>
		</html>
	`, name, vehicleLabel, expectedEnd.Format("2006-01-02 15:04"), s.fromName)

	return s.send(email, name, subject, plainText, htmlContent)
}
