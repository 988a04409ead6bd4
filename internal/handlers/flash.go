package handlers

import (
	"net/http"
	"strings"

	"github.com/faithss/website/internal/forms"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = func() map[string]string {
	m := map[string]string{}
	for _, name := range forms.Names() {
		f, _ := forms.Lookup(name)
		m[name] = f.SuccessText()
	}
	return m
}()

var errText = map[string]string{
	"invalid": forms.FailureText,
	"notify":  "Your message could not be delivered. Please try again later.",
}

// MakeFlash reads ?ok= / ?error= and falls back to handler-provided messages.
// Unknown keys are dropped so a crafted link cannot put text on the page.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	if key := strings.ToLower(strings.TrimSpace(q.Get("error"))); key != "" {
		if t, ok := errText[key]; ok {
			return &Flash{Kind: "error", Text: t}
		}
	}
	if key := strings.ToLower(strings.TrimSpace(q.Get("ok"))); key != "" {
		if t, ok := okText[key]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
	}

	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
