package view

// Text renders a field value the way lists show it. Missing values, nil
// and zero dates, render as "".
func Text(v any) string {
	if missing(v) {
		return ""
	}
	return text(v)
}
