package format

import (
	"fmt"
	"strings"
	"time"
)

// FmtCurrency formats an amount in minor units.
// Example: FmtCurrency(4900, "EUR", "it") => "49,00 €"
func FmtCurrency(minor int64, currency, lang string) string {
	currency = strings.ToUpper(currency)
	switch currency {
	case "EUR":
		neg := minor < 0
		if neg {
			minor = -minor
		}
		major := minor / 100
		cents := minor % 100
		out := fmt.Sprintf("%s,%02d €", thousandSep(major), cents)
		if neg {
			return "-" + out
		}
		return out
	default:
		return fmt.Sprintf("%s %s", currency, thousandSep(minor))
	}
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += "."
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// FmtDate formats a date in a locale-friendly short form.
func FmtDate(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "it":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
