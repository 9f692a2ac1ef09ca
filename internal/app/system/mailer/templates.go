// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
	"time"
)

// ContactInquiryData contains the data for a contact-form inquiry
// notification sent to site staff.
type ContactInquiryData struct {
	SiteName    string
	ReferenceID string // short identifier quoted in replies
	Name        string
	Email       string
	Phone       string
	Company     string
	Service     string
	ProjectType string
	Message     string
	SubmittedAt time.Time
}

// ContactInquiryEmail generates both plain text and HTML versions of the
// inquiry notification.
func ContactInquiryEmail(data ContactInquiryData) (textBody, htmlBody string) {
	textBody = "New inquiry via the " + data.SiteName + " contact form.\n\n" +
		"Reference: " + data.ReferenceID + "\n" +
		"Submitted: " + data.SubmittedAt.Format(time.RFC1123) + "\n\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		orBlank("Phone: ", data.Phone) +
		orBlank("Company: ", data.Company) +
		orBlank("Service: ", data.Service) +
		orBlank("Project type: ", data.ProjectType) +
		"\nMessage:\n" + data.Message + "\n"

	var buf bytes.Buffer
	if err := contactInquiryTmpl.Execute(&buf, data); err != nil {
		// Fall back to text-only if the template fails
		return textBody, ""
	}
	htmlBody = buf.String()

	return textBody, htmlBody
}

// orBlank returns "label: value\n" or nothing if value is empty.
func orBlank(label, value string) string {
	if value == "" {
		return ""
	}
	return label + value + "\n"
}

var contactInquiryTmpl = template.Must(template.New("contact_inquiry").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #111827;">New inquiry - {{.SiteName}}</h2>
  <p style="color: #6b7280;">Reference {{.ReferenceID}} · submitted {{.SubmittedAt.Format "Jan 2, 2006 3:04 PM MST"}}</p>
  <table cellpadding="6" cellspacing="0" style="border-collapse: collapse; width: 100%;">
    <tr><td style="font-weight: bold; width: 130px;">Name</td><td>{{.Name}}</td></tr>
    <tr><td style="font-weight: bold;">Email</td><td><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
    {{if .Phone}}<tr><td style="font-weight: bold;">Phone</td><td>{{.Phone}}</td></tr>{{end}}
    {{if .Company}}<tr><td style="font-weight: bold;">Company</td><td>{{.Company}}</td></tr>{{end}}
    {{if .Service}}<tr><td style="font-weight: bold;">Service</td><td>{{.Service}}</td></tr>{{end}}
    {{if .ProjectType}}<tr><td style="font-weight: bold;">Project type</td><td>{{.ProjectType}}</td></tr>{{end}}
  </table>
  <h3 style="margin-bottom: 4px;">Message</h3>
  <p style="white-space: pre-wrap; background: #f9fafb; padding: 12px; border-radius: 6px;">{{.Message}}</p>
  <p style="color: #9ca3af; font-size: 12px;">Reply directly to this email to reach the sender.</p>
</body>
</html>`))
