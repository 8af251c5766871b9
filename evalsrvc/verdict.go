package evalsrvc

import (
	"strings"

	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

// per-case status descriptions owned by the judge
const (
	statusCompilationError  = "Compilation Error"
	statusRuntimeError      = "Runtime Error"
	statusTimeLimitExceeded = "Time Limit Exceeded"
)

// compareCase grades one test case. This is an exact-match grader:
// only leading and trailing whitespace is forgiven, internal
// whitespace must match. With no reference result the expected output
// stays empty and the case cannot pass.
func compareCase(tc problems.TestCase, cand judge0.JobResult, ref *judge0.JobResult) ComparisonResult {
	res := ComparisonResult{
		Input:  tc.Input,
		Output: cand.Stdout,
		Status: cand.StatusDescription,
		Time:   cand.Time,
		Memory: cand.Memory,
	}
	if ref != nil {
		res.Expected = ref.Stdout
		res.Passed = strings.TrimSpace(cand.Stdout) == strings.TrimSpace(ref.Stdout)
	}
	return res
}

// classify reduces a full submission to its verdict. Precedence is
// fixed and first match wins: one compile-error case makes the whole
// submission a compilation error no matter how many cases passed.
// Time limit folds into the runtime bucket at this level while the
// per-case Status keeps reporting it verbatim.
func classify(candidate []judge0.JobResult, comparisons []ComparisonResult) string {
	for _, r := range candidate {
		if r.StatusDescription == statusCompilationError {
			return VerdictCompilationError
		}
	}
	for _, r := range candidate {
		if r.Stderr != "" ||
			r.StatusDescription == statusRuntimeError ||
			r.StatusDescription == statusTimeLimitExceeded {
			return VerdictRuntimeError
		}
	}

	passed := 0
	for _, c := range comparisons {
		if c.Passed {
			passed++
		}
	}
	switch {
	case len(comparisons) > 0 && passed == len(comparisons):
		return VerdictAccepted
	case passed > 0:
		return VerdictPartiallyCorrect
	default:
		return VerdictWrongAnswer
	}
}
