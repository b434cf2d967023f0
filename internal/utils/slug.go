package utils

import (
	"strings"
)

// Slugify leitet aus einem Titel das URL-Segment ab: klein, alphanumerisch
// (ASCII), Umlaute transliteriert, Bindestriche statt allem anderen, keine
// doppelten oder äußeren Bindestriche.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true // unterdrückt führende Bindestriche

	for _, r := range strings.ToLower(s) {
		switch {
		case r == 'ä':
			b.WriteString("ae")
			lastDash = false
		case r == 'ö':
			b.WriteString("oe")
			lastDash = false
		case r == 'ü':
			b.WriteString("ue")
			lastDash = false
		case r == 'ß':
			b.WriteString("ss")
			lastDash = false
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
