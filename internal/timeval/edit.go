package timeval

// Edit applies raw as the new text of field f. It reports false and returns
// cur unchanged when raw is longer than two characters, is not a number, or
// exceeds the field's maximum. No padding is applied so digits can be typed
// one at a time.
func Edit(cur TimeValue, raw string, f Field) (TimeValue, bool) {
	if len(raw) > 2 {
		return cur, false
	}
	if raw != "" {
		if !isDigits(raw) {
			return cur, false
		}
		if number(raw) > f.Max() {
			return cur, false
		}
	}
	return cur.With(f, raw), true
}

// Normalize pads every field to two digits, turning empty fields into "00".
func Normalize(v TimeValue) TimeValue {
	return TimeValue{
		HH: normalizeField(v.HH),
		MM: normalizeField(v.MM),
		SS: normalizeField(v.SS),
	}
}

func normalizeField(s string) string {
	switch len(s) {
	case 0:
		return "00"
	case 1:
		return "0" + s
	default:
		return s
	}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
