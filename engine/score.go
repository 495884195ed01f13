package engine

// ScoreForLines returns the points awarded for clearing n rows with a
// single landing. Four or more rows all score as four.
func ScoreForLines(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 100
	case n == 2:
		return 300
	case n == 3:
		return 500
	default:
		return 800
	}
}
