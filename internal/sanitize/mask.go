package sanitize

import "strings"

// MaskKind selects the masking pattern applied by Mask.
type MaskKind string

// Supported masking kinds.
const (
	MaskEmail      MaskKind = "email"
	MaskPhone      MaskKind = "phone"
	MaskCreditCard MaskKind = "creditCard"
)

// maskPlaceholder replaces values that cannot be partially masked.
const maskPlaceholder = "***"

// Mask obscures a sensitive value with a fixed pattern per kind:
//
//   - email: first 2 local-part characters and the domain initial survive
//     ("jo***@e***.com")
//   - phone: first 3 and last 2 digits survive
//   - creditCard: first 4 and last 4 digits survive
//
// Unknown kinds and values too short for their pattern collapse to "***"
// rather than failing.
func Mask(value string, kind MaskKind) string {
	switch kind {
	case MaskEmail:
		return maskEmail(value)
	case MaskPhone:
		return maskMiddle(value, 3, 2)
	case MaskCreditCard:
		return maskMiddle(value, 4, 4)
	default:
		return maskPlaceholder
	}
}

// maskEmail keeps the first two local-part characters, the domain initial,
// and the top-level domain.
func maskEmail(value string) string {
	local, domain, found := strings.Cut(value, "@")
	if !found || local == "" || domain == "" {
		return maskPlaceholder
	}

	if len(local) > 2 {
		local = local[:2]
	}

	maskedDomain := domain[:1] + maskPlaceholder
	if dot := strings.LastIndex(domain, "."); dot > 0 {
		maskedDomain = domain[:1] + maskPlaceholder + domain[dot:]
	}

	return local + maskPlaceholder + "@" + maskedDomain
}

// maskMiddle keeps the first keepStart and last keepEnd characters, replacing
// everything between with asterisks.
func maskMiddle(value string, keepStart, keepEnd int) string {
	if len(value) <= keepStart+keepEnd {
		return maskPlaceholder
	}
	middle := strings.Repeat("*", len(value)-keepStart-keepEnd)
	return value[:keepStart] + middle + value[len(value)-keepEnd:]
}
