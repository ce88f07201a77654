package core

import (
	"strconv"
	"strings"
	"testing"
)

// FuzzCountIncreasingWindowSums checks the three-element sums against the
// equivalent direct comparison of readings three apart.
func FuzzCountIncreasingWindowSums(f *testing.F) {
	seeds := []string{
		"199,200,208,210,200,207,240,269,260,263",
		"5,4,3,2,1",
		"1,1,1,1",
		"",
		"-7,3",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, csv string) {
		var readings []int
		for part := range strings.SplitSeq(csv, ",") {
			// Bound values so the three-element sums cannot overflow
			v, err := strconv.ParseInt(part, 10, 32)
			if err != nil {
				continue
			}
			readings = append(readings, int(v))
		}

		want := 0
		for i := 3; i < len(readings); i++ {
			if readings[i-3] < readings[i] {
				want++
			}
		}
		if got := CountIncreasingWindowSums(readings); got != want {
			t.Errorf("CountIncreasingWindowSums(%v) = %d, want %d", readings, got, want)
		}

		pairs := CountIncreasingPairs(readings)
		if pairs < 0 || (len(readings) > 0 && pairs > len(readings)-1) {
			t.Errorf("CountIncreasingPairs(%v) = %d out of range", readings, pairs)
		}
	})
}

// FuzzParseReadings makes sure arbitrary content never panics and that
// successful parses round-trip through their decimal form.
func FuzzParseReadings(f *testing.F) {
	f.Add("199\n200\n208\n")
	f.Add("abc")
	f.Add("\r\n")
	f.Add("-0\n+1\n")

	f.Fuzz(func(t *testing.T, content string) {
		readings, err := ParseReadings(strings.NewReader(content))
		if err != nil {
			return
		}
		lines := make([]string, len(readings))
		for i, r := range readings {
			lines[i] = strconv.Itoa(r)
		}
		again, err := ParseReadings(strings.NewReader(strings.Join(lines, "\n")))
		if err != nil {
			t.Fatalf("re-parse failed: %v", err)
		}
		if len(again) != len(readings) {
			t.Fatalf("re-parse length %d, want %d", len(again), len(readings))
		}
	})
}
