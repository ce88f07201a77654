// Package schema has models and constants shared by all parts of sonar.
package schema

// Window sizes for the two parts of the sweep.
const (
	PairWindow = 2 // Part 1 compares adjacent readings
	SumWindow  = 4 // Part 2 compares three-element sums offset by one
)

// DayLabel is the header printed before the counts in text output.
const DayLabel = "[Day 1]"

// Report holds the result of one sweep over a list of readings.
type Report struct {
	Source          string `json:"source"`           // Path the readings were loaded from
	Readings        int    `json:"readings"`         // Number of readings loaded
	Increases       int    `json:"increases"`        // Adjacent pairs where the second reading is larger
	WindowIncreases int    `json:"window_increases"` // Windows where the later three-element sum is larger
}

// WindowRow is a per-part view of a Report used by tabular outputs.
type WindowRow struct {
	Part      int
	Window    int
	Compared  int // Number of windows examined
	Increases int
}
