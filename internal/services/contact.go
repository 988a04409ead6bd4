package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/faithss/website/internal/forms"
	"github.com/faithss/website/internal/notify"
)

// ForwardContact sends a submitted contact form to the office. vals come from
// a successful forms.Result.
func ForwardContact(ctx context.Context, n notify.Notifier, vals forms.Values) error {
	name := CleanText(vals["name"])
	email, ok := NormEmail(vals["email"])
	if !ok {
		log.Printf("contact: reply address %q does not parse", email)
	}
	email = CleanText(email)
	subject := CleanText(vals["subject"])
	body := CleanText(vals["message"])
	if subject == "" {
		subject = "(no subject)"
	}
	log.Printf("contact: message from %s <%s> subject=%q (%d chars)", name, email, subject, len(body))

	var b strings.Builder
	fmt.Fprintf(&b, "📨 <b>Website contact</b>\nFrom: %s &lt;%s&gt;\nSubject: %s\n\n%s",
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(subject), html.EscapeString(body))
	return n.Notify(ctx, b.String())
}
