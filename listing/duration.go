package listing

import "strings"

// Duration is a parsed duration description. At most one field is set.
type Duration struct {
	Weeks *float64
	Days  *float64
}

var dashes = strings.NewReplacer("\u2013", "-", "\u2014", "-")

// ParseDuration reads text such as "2 weeks" or "1-2 days". The unit comes
// from the whole text ("week" wins over "day"), the amount from the first
// token, and a range keeps its lower bound. Anything unreadable yields an
// empty Duration.
func ParseDuration(text string) Duration {
	lower := strings.ToLower(text)
	weeks := strings.Contains(lower, "week")
	if !weeks && !strings.Contains(lower, "day") {
		return Duration{}
	}

	v, ok := leadingAmount(text)
	if !ok {
		return Duration{}
	}
	if weeks {
		return Duration{Weeks: &v}
	}
	return Duration{Days: &v}
}

func leadingAmount(text string) (float64, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	token := dashes.Replace(fields[0])
	if i := strings.IndexByte(token, '-'); i >= 0 {
		token = token[:i]
	}
	return parseNumber(token)
}
