package schema

// comparedWindows returns how many windows of the given size fit in n readings.
func comparedWindows(n, window int) int {
	return max(0, n-window+1)
}

// WindowRows splits a report into one row per part, in part order.
func WindowRows(r Report) []WindowRow {
	return []WindowRow{
		{
			Part:      1,
			Window:    PairWindow,
			Compared:  comparedWindows(r.Readings, PairWindow),
			Increases: r.Increases,
		},
		{
			Part:      2,
			Window:    SumWindow,
			Compared:  comparedWindows(r.Readings, SumWindow),
			Increases: r.WindowIncreases,
		},
	}
}
