package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// ContactEmailData describes a contact form submission forwarded to the site owner.
type ContactEmailData struct {
	MessageID   string
	Name        string
	Email       string
	Subject     string
	Content     string
	SubmittedAt time.Time
	SiteName    string
}

// BuildContactNotificationEmail creates the message sent to the owner when a
// visitor submits the contact form. Replies go straight to the visitor.
func BuildContactNotificationEmail(to string, data ContactEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Portfolio"
	}

	topic := strings.TrimSpace(data.Subject)
	if topic == "" {
		topic = "New message"
	}

	subject := fmt.Sprintf("[%s] %s from %s", siteName, topic, data.Name)
	submitted := data.SubmittedAt.UTC().Format(time.RFC1123)

	textBody := fmt.Sprintf(`New contact form submission

From: %s <%s>
Subject: %s
Received: %s
Reference: %s

%s
`,
		data.Name, data.Email, topic, submitted, data.MessageID, data.Content)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #dc2626;">New contact form submission</h2>
    <p><strong>From:</strong> %s &lt;%s&gt;<br>
    <strong>Subject:</strong> %s<br>
    <strong>Received:</strong> %s</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px; white-space: pre-wrap;">%s</p>
    <p style="color: #6b7280; font-size: 12px; margin-top: 30px;">Reference %s</p>
</body>
</html>`,
		html.EscapeString(data.Name), html.EscapeString(data.Email), html.EscapeString(topic),
		submitted, html.EscapeString(data.Content), html.EscapeString(data.MessageID))

	return Message{
		To:       []string{to},
		ReplyTo:  data.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
