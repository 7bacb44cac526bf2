package storefront

import (
	"net/url"
	"strings"
	"unicode"
)

const waMeBaseURL = "https://wa.me/"

// url.QueryEscape output differs from encodeURIComponent only in these sequences.
var uriComponentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// DeepLink builds https://wa.me/<digits>?text=<message>. Everything but digits
// is stripped from the number.
func DeepLink(whatsappNumber, message string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}

		return -1
	}, whatsappNumber)

	return waMeBaseURL + digits + "?text=" + EncodeURIComponent(message)
}

// EncodeURIComponent percent-encodes s like the browser function of the same name.
func EncodeURIComponent(s string) string {
	return uriComponentUnescaper.Replace(url.QueryEscape(s))
}
