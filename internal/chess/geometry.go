package chess

// Abs returns the distance of a row or column difference.
func Abs(d int) int {
	if d < 0 {
		return -d
	}
	return d
}

// Sign returns the unit step (-1, 0 or 1) along a row or column difference.
func Sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	}
	return 0
}
