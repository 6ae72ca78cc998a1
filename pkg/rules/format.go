package rules

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	// YYYY-MM-DD, month and day ranges only; no calendar check.
	timeStampRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])$`)

	// YYYY-MM
	yearMonthRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])$`)

	// Unanchored on purpose: a URL anywhere in the text is enough.
	urlRegex = regexp.MustCompile(`(?i)\b(?:(?:https?|ftp)://|www\.)[-a-z0-9+&@#/%?=~_|!:,.;]*[-a-z0-9+&@#/%=~_|]`)

	// Letters and spaces, empty allowed.
	nameRegex = regexp.MustCompile(`^[a-zA-Z ]*$`)
)

const (
	maxEmailLength     = 254
	maxEmailLocalPart  = 64
	maxEmailDomainPart = 253
)

// TimeStamp reports whether value looks like a YYYY-MM-DD date.
// Only the shape is checked: "2023-02-31" passes.
func TimeStamp(value string) bool {
	return timeStampRegex.MatchString(value)
}

// YearMonth reports whether value looks like YYYY-MM with a month in 01-12.
func YearMonth(value string) bool {
	return yearMonthRegex.MatchString(value)
}

// Email reports whether value is a bare e-mail address (local-part@domain).
// Display names and angle brackets are rejected. The local part must be ASCII
// and the domain a dotted host name made of letters, digits and hyphens.
func Email(value string) bool {
	if value == "" || len(value) > maxEmailLength {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}

	at := strings.LastIndexByte(value, '@')
	if at <= 0 {
		return false
	}
	local, domain := value[:at], value[at+1:]

	if len(local) > maxEmailLocalPart || len(domain) > maxEmailDomainPart {
		return false
	}
	if !allBytes(local, isASCII) || strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if !allBytes(label, isHostByte) || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}

	return true
}

func isASCII(c byte) bool {
	return c < 0x80
}

func isHostByte(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-'
}

// URL reports whether value contains an http, https or ftp URL, or a
// www.-prefixed host. Surrounding text is allowed.
func URL(value string) bool {
	return urlRegex.MatchString(value)
}

// Name reports whether value is made only of ASCII letters and spaces.
// The empty string passes.
func Name(value string) bool {
	return nameRegex.MatchString(value)
}
