package core

import "github.com/huangsam/sonar/schema"

// CountIncreasingPairs counts adjacent readings where the second is strictly larger.
func CountIncreasingPairs(readings []int) int {
	count := 0
	for i := 1; i < len(readings); i++ {
		if readings[i-1] < readings[i] {
			count++
		}
	}
	return count
}

// CountIncreasingWindowSums counts groups of four consecutive readings where the
// sum of the last three is strictly larger than the sum of the first three.
func CountIncreasingWindowSums(readings []int) int {
	count := 0
	for i := 0; i+schema.SumWindow <= len(readings); i++ {
		first := readings[i] + readings[i+1] + readings[i+2]
		second := readings[i+1] + readings[i+2] + readings[i+3]
		if first < second {
			count++
		}
	}
	return count
}

// BuildReport runs both counts over readings loaded from source.
func BuildReport(source string, readings []int) schema.Report {
	return schema.Report{
		Source:          source,
		Readings:        len(readings),
		Increases:       CountIncreasingPairs(readings),
		WindowIncreases: CountIncreasingWindowSums(readings),
	}
}
