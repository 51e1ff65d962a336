package privacy

import "strings"

const (
	maskRune       = '*'
	redactedSecret = "[REDACTED]"
)

// MaskPAN hides every digit of a card number except the last four.
// Numbers of four characters or fewer are fully masked.
func MaskPAN(pan string) string {
	pan = strings.TrimSpace(pan)
	if pan == "" {
		return ""
	}
	if len(pan) <= 4 {
		return strings.Repeat(string(maskRune), len(pan))
	}
	return strings.Repeat(string(maskRune), len(pan)-4) + pan[len(pan)-4:]
}

// MaskLast4 returns a display form for a stored last-four value.
func MaskLast4(last4 string) string {
	if last4 == "" {
		return ""
	}
	return "****" + last4
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		if email == "" {
			return ""
		}
		return redactedSecret
	}
	return email[:1] + "***" + email[at:]
}

// RedactSecret replaces a non-empty secret (API keys, tokens) with a fixed marker.
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedSecret
}
