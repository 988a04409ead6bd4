package services

import (
	"net/mail"
	"strings"
)

// NormEmail returns the bare, lowercased address from s, which may carry a
// display name ("Ada <ada@example.com>"). When s does not parse, the trimmed
// lowercase input is returned with ok false. Empty input is ok.
func NormEmail(s string) (addr string, ok bool) {
	e := strings.TrimSpace(s)
	if e == "" {
		return "", true
	}
	a, err := mail.ParseAddress(e)
	if err != nil {
		return strings.ToLower(e), false
	}
	return strings.ToLower(a.Address), true
}
