package citygrid

// maxf returns the highest of two floats
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
