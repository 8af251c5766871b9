package evalsrvc

import (
	"fmt"
	"strconv"
	"strings"
)

// summarize reduces comparisons to the stored summary. Missing or
// unparseable time and memory telemetry counts as zero; partial
// telemetry must never block verdict delivery.
func summarize(comparisons []ComparisonResult, verdict string) Summary {
	passed := 0
	totalTime := 0.0
	totalMemory := 0.0
	for _, c := range comparisons {
		if c.Passed {
			passed++
		}
		if t, err := strconv.ParseFloat(strings.TrimSpace(c.Time), 64); err == nil {
			totalTime += t
		}
		totalMemory += c.Memory
	}

	total := len(comparisons)
	percentage := "0.00%"
	if total > 0 {
		percentage = fmt.Sprintf("%.2f%%", float64(passed)/float64(total)*100)
	}

	return Summary{
		PassedCount:      passed,
		TotalCount:       total,
		PercentagePassed: percentage,
		TotalTime:        fmt.Sprintf("%.3fs", totalTime),
		TotalMemory:      formatMemory(totalMemory),
		Status:           verdict,
	}
}

func formatMemory(kb float64) string {
	return strconv.FormatFloat(kb, 'f', -1, 64) + " KB"
}
