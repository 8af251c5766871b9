package evalsrvc

import (
	"time"

	"github.com/google/uuid"
)

// user submitted solution
type CodeWithLang struct {
	SrcCode string // submitted source code
	LangID  int    // judge language id
}

// ComparisonResult is the outcome of one test case: candidate output
// against the reference solution's output on the same input.
type ComparisonResult struct {
	Input    string  `json:"input"`
	Output   string  `json:"output"`
	Expected string  `json:"expected"`
	Passed   bool    `json:"passed"`
	Status   string  `json:"status"` // per-case judge status, verbatim
	Time     string  `json:"time"`   // seconds, decimal string
	Memory   float64 `json:"memory"` // KB
}

// Summary reduces the per-case results to what gets persisted and
// shown next to a submission.
type Summary struct {
	PassedCount      int    `json:"passed_count"`
	TotalCount       int    `json:"total_count"`
	PercentagePassed string `json:"percentage_passed"` // "NN.NN%"
	TotalTime        string `json:"total_time"`        // "N.NNNs"
	TotalMemory      string `json:"total_memory"`      // "N KB"
	Status           string `json:"status"`            // final verdict
}

// Final verdicts, coarser than the per-case status diagnostics.
const (
	VerdictAccepted         = "Accepted"
	VerdictPartiallyCorrect = "Partially Correct"
	VerdictWrongAnswer      = "Wrong Answer"
	VerdictRuntimeError     = "Runtime Error"
	VerdictCompilationError = "Compilation Error"
)

const (
	EvalStageWaiting   = "waiting"
	EvalStageRunning   = "running"
	EvalStageFinished  = "finished"
	EvalStageInternalE = "internal_e"
)

// Evaluation is the stored record of one submission evaluation.
type Evaluation struct {
	UUID      uuid.UUID
	Stage     string
	ProblemID string
	LangID    int

	Comparisons []ComparisonResult
	Summary     *Summary

	ErrorMsg  *string // set when Stage is internal_e
	CreatedAt time.Time
}
