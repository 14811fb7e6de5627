package buyer

import "strconv"

// FormatBudget renders a budget range in rupees with Indian digit
// grouping, e.g. "₹50,00,000 - ₹80,00,000".
func FormatBudget(lo, hi *int) string {
	switch {
	case lo == nil && hi == nil:
		return "Not specified"
	case lo == nil:
		return "Up to " + formatINR(*hi)
	case hi == nil:
		return "From " + formatINR(*lo)
	default:
		return formatINR(*lo) + " - " + formatINR(*hi)
	}
}

func formatINR(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return sign + "₹" + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	out := tail
	for len(head) > 2 {
		out = head[len(head)-2:] + "," + out
		head = head[:len(head)-2]
	}
	return sign + "₹" + head + "," + out
}
