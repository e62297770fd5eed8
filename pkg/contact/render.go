package contact

import (
	"fmt"
	"html"
	"strings"
)

// Subject returns the notification subject line for s.
func (s *Submission) Subject() string {
	return "New Contact Form Submission from " + s.Name
}

// HTML renders the notification body. Optional fields are included only
// when present and message line breaks become <br>.
func (s *Submission) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(s.Subject()))
	writeHTMLField(&b, "Name", s.Name)
	writeHTMLField(&b, "Email", s.Email)
	writeHTMLField(&b, "Phone", s.Phone)
	if s.EventDate != "" {
		writeHTMLField(&b, "Event Date", s.EventDate)
	}
	if s.EventType != "" {
		writeHTMLField(&b, "Event Type", s.EventType)
	}
	if s.Message != "" {
		msg := strings.ReplaceAll(s.Message, "\r\n", "\n")
		msg = strings.ReplaceAll(html.EscapeString(msg), "\n", "<br>")
		fmt.Fprintf(&b, "<p><strong>Message:</strong><br>%s</p>\n", msg)
	}
	return b.String()
}

func writeHTMLField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
}

// Text renders the plain text alternative of HTML.
func (s *Submission) Text() string {
	var b strings.Builder
	b.WriteString(s.Subject() + "\n\n")
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Phone: %s\n", s.Phone)
	if s.EventDate != "" {
		fmt.Fprintf(&b, "Event Date: %s\n", s.EventDate)
	}
	if s.EventType != "" {
		fmt.Fprintf(&b, "Event Type: %s\n", s.EventType)
	}
	if s.Message != "" {
		fmt.Fprintf(&b, "\nMessage:\n%s\n", s.Message)
	}
	return b.String()
}
