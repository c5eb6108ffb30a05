package gridworld

// DemoLayout returns a small 3x4 layout with a goal paying 1, a trap
// paying -1, and a single interior wall
func DemoLayout() Layout {
	return MustParseLayout([][]string{
		{"", "", "", "1"},
		{"", "x", "", "-1"},
		{"", "", "", ""},
	})
}

// Demo returns a GridWorld on DemoLayout with discount 0.95
func Demo(opts ...Option) (*GridWorld, error) {
	opts = append([]Option{WithDiscount(DefaultDiscount)}, opts...)
	return New(NewGrid(DemoLayout()), opts...)
}
