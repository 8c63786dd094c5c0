// Package whatsapp builds the browser deep links used to hand a message
// off to WhatsApp or to the phone dialer. The server never talks to
// WhatsApp itself; it returns these URLs for the client to open.
package whatsapp

import (
	"net/url"
	"strings"
)

// NormalizePhone strips every non-digit character from a phone number,
// matching the wa.me requirement of an international number without
// punctuation. Returns an empty string if no digits remain.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link returns a https://wa.me deep link for the given phone, optionally
// pre-filled with text. Returns an empty string if the phone has no digits.
func Link(phone, text string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	u := "https://wa.me/" + digits
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}

// TelLink returns a tel: deep link for the given phone.
// Returns an empty string if the phone has no digits.
func TelLink(phone string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	return "tel:" + digits
}
