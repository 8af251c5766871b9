package problems

import "context"

// TestCase is one ordered problem test case. Position is the
// correlation key between the candidate run, the reference run and
// their results, so the slice order is load-bearing.
type TestCase struct {
	Input string
}

// Solution is a known-correct reference program whose stdout defines
// the expected output for every test case.
type Solution struct {
	SrcCode string
	LangID  int
}

type Problem struct {
	ID    string
	Title string

	Tests []TestCase

	// nil when the problem has no reference configured; graded
	// submissions reject such problems, practice runs accept them
	Reference *Solution
}

// Repo is the lookup interface the evaluation service depends on.
// Implementations are injected by the caller; the evaluation core
// never embeds fixtures.
type Repo interface {
	Get(ctx context.Context, problemID string) (Problem, error)
	List(ctx context.Context) ([]Problem, error)
}
