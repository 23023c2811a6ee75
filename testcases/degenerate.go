package testcases

var degenerateCases = []TestCase{
	box("zero_size", 0, 0, 4),
	box("zero_width", 0, 40, 4),
	box("zero_height", 40, 0, 4),
	box("zero_radius", 60, 30, 0),
}
