package utils

import (
	"fmt"
	"log"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a transactional email through SendGrid
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("Zero AI", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid error: %d", response.StatusCode)
	}

	return nil
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A1A2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.footer { padding: 20px; text-align: center; color: #999999; font-size: 12px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">Zero AI. Keep learning, one card at a time.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(toEmail, username string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Zero AI! Pick a learning path that matches your interests and start
		collecting cards. Your progress is saved as you go.</p>`, username)
	return SendEmail(toEmail, username, "Welcome to Zero AI", getEmailTemplate("Welcome!", body))
}

// SendAchievementEmail congratulates a user on a newly earned badge
func SendAchievementEmail(toEmail, username, achievementTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You just earned the <strong>%s</strong> badge. Nice work, keep the streak going!</p>`,
		username, achievementTitle)
	return SendEmail(toEmail, username, "New achievement unlocked!", getEmailTemplate("Achievement unlocked", body))
}
