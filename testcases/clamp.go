package testcases

var clampCases = []TestCase{
	// both radii clamped: the outline is the inscribed rounded shape
	box("square_huge_radius", 10, 10, 100),
	box("half_square", 64, 64, 32),

	// only the vertical radius is clamped
	box("rect_height_clamped", 100, 50, 40),
	box("rect_huge_radius", 100, 50, 1000),

	// only the horizontal radius is clamped
	box("rect_width_clamped", 50, 100, 40),
}
