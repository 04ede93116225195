package email

import (
	"bytes"
	"fmt"
	"html/template"

	"go-email-backend/config"
)

// All emails share one layout (header, content, footer); each kind
// provides its own "content" and "footer" blocks. User-supplied values
// are HTML-escaped by the template engine before interpolation.
const emailLayout = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #1a1a1a; color: #fff; padding: 20px; text-align: center; }
        .content { padding: 20px; }
        .booking-details { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-left: 4px solid #e0c080; }
        .contact-details { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-left: 4px solid #e0c080; }
        .message-box { background-color: #f9f9f9; padding: 15px; margin: 15px 0; border: 1px solid #ddd; }
        .footer { background-color: #f5f5f5; padding: 15px; font-size: 12px; text-align: center; }
        h1, h2 { color: #1a1a1a; }
        .highlight { color: #e0c080; font-weight: bold; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.HeaderTitle}}</h1>
            {{if .HeaderSubtitle}}<p>{{.HeaderSubtitle}}</p>{{end}}
        </div>
        <div class="content">
{{template "content" .}}
        </div>
        <div class="footer">
{{template "footer" .}}
        </div>
    </div>
</body>
</html>`

const companyFooter = `{{define "footer"}}            <p>{{.Company.Name}} | {{.Company.Street}}, {{.Company.Area}}, {{.Company.City}}</p>
            <p>{{.Company.Phone}} | {{.Company.Email}}</p>
{{end}}`

const bookingContent = `{{define "content"}}            <p>Dear {{.Name}},</p>
            <p>Thank you for booking a consultation with {{.Company.Name}}. We are excited to meet with you and discuss your {{.ProjectTypeLower}} project.</p>

            <div class="booking-details">
                <h2>Your Booking Details:</h2>
                <p><strong>Date:</strong> {{.FormattedDate}}</p>
                <p><strong>Time:</strong> {{.Time}}</p>
                <p><strong>Project Type:</strong> {{.ProjectType}}</p>
                <p><strong>Location:</strong> {{.Company.Street}}, {{.Company.Area}}, {{.Company.City}}, {{.Company.State}}, {{.Company.Zip}}</p>
            </div>

            <p>If you need to reschedule or have any questions before your appointment, please contact us at <span class="highlight">{{.Company.Phone}}</span> or reply to this email.</p>

            <p>We recommend arriving 5-10 minutes early. If you have any existing floor plans, images, or inspiration for your project, please bring them along or email them to us beforehand.</p>

            <p>We look forward to meeting you and discussing your architectural vision!</p>

            <p>Warm regards,<br>The {{.Company.Name}} Team</p>
{{end}}` + companyFooter

const contactNotificationContent = `{{define "content"}}            <p>You have received a new message from your website contact form.</p>

            <div class="contact-details">
                <h2>Contact Details:</h2>
                <p><strong>Name:</strong> {{.Name}}</p>
                <p><strong>Email:</strong> {{.Email}}</p>
                <p><strong>Subject:</strong> {{.Subject}}</p>
            </div>

            <h2>Message:</h2>
            <div class="message-box">
                <p>{{.Message}}</p>
            </div>

            <p>Please respond to this inquiry at your earliest convenience.</p>
{{end}}{{define "footer"}}            <p>This is an automated notification from your website.</p>
{{end}}`

const contactAckContent = `{{define "content"}}            <p>Dear {{.Name}},</p>
            <p>Thank you for contacting {{.Company.Name}}. We have received your message regarding <strong>&quot;{{.Subject}}&quot;</strong>.</p>

            <p>Our team will review your inquiry and get back to you as soon as possible, usually within 1-2 business days.</p>

            <p>If your matter is urgent, please call us directly at <span class="highlight">{{.Company.Phone}}</span> during our business hours:</p>
            <p>
                Monday-Friday: {{.Company.HoursWeekdays}}<br>
                Saturday: {{.Company.HoursSaturday}}<br>
                Sunday: {{.Company.HoursSunday}}
            </p>

            <p>We appreciate your interest in {{.Company.Name}} and look forward to assisting you with your architectural needs.</p>

            <p>Warm regards,<br>The {{.Company.Name}} Team</p>
{{end}}` + companyFooter

const testContent = `{{define "content"}}            <p>This is a test email from the {{.Company.Name}} email service.</p>
            <p>If you are reading this, the SMTP transport is configured correctly and outbound delivery is working.</p>
{{end}}` + companyFooter

// chrome carries the fields the shared layout needs.
type chrome struct {
	HeaderTitle    string
	HeaderSubtitle string
	Company        config.CompanyInfo
}

type bookingVars struct {
	chrome
	Name             string
	FormattedDate    string
	Time             string
	ProjectType      string
	ProjectTypeLower string
}

type contactNotificationVars struct {
	chrome
	Name    string
	Email   string
	Subject string
	Message string
}

type contactAckVars struct {
	chrome
	Name    string
	Subject string
}

type testVars struct {
	chrome
}

var (
	bookingTmpl             = mustTemplate("booking", bookingContent)
	contactNotificationTmpl = mustTemplate("contact-notification", contactNotificationContent)
	contactAckTmpl          = mustTemplate("contact-acknowledgment", contactAckContent)
	testTmpl                = mustTemplate("test", testContent)
)

func mustTemplate(name, content string) *template.Template {
	t := template.Must(template.New(name).Parse(emailLayout))
	return template.Must(t.Parse(content))
}

func render(tmpl *template.Template, data any) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s email template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}
