package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, lowercased, the HTTP headers whose values must
// never be logged.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"x-api-key":     true,
}

// IsSensitiveHeader reports whether values of the named header must be
// masked.
func IsSensitiveHeader(name string) bool {
	return SensitiveHeaders[strings.ToLower(name)]
}

// maskedFields are masked wherever they appear, including as struct fields
// of logged values: Phone covers item.Friend and Number covers item.Card.
var maskedFields = []string{
	"password", "secret", "token",
	"phone", "Phone",
	"number", "Number",
}

var maskedPrefixes = []string{"secret_", "api_key"}

// maskedPatterns catch values that reach a record inside free text, such as
// an error message quoting a card number.
var maskedPatterns = []*regexp.Regexp{
	// Bearer credentials.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs. Segments of ten or more keep version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Card numbers: 13 to 19 digits, optionally grouped by spaces or dashes.
	regexp.MustCompile(`\b\d(?:[ -]?\d){12,18}\b`),
}

// redactor builds the masq ReplaceAttr hook used by every handler New
// creates.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(maskedFields)+len(maskedPrefixes)+len(maskedPatterns))
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range maskedFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range maskedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range maskedPatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
