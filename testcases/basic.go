package testcases

var basicCases = []TestCase{
	box("button", 100, 50, 4),
	box("card", 200, 80, 12),
	box("square", 64, 64, 8),
	box("wide_bar", 300, 20, 4),
	box("tall_bar", 20, 300, 6),
	box("fractional", 99.5, 33.25, 3.75),
}
