package evalsrvc

import (
	"context"
	"fmt"

	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/logger"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

type tokensOutcome struct {
	tokens []string
	err    error
}

type resultsOutcome struct {
	results []judge0.JobResult
	err     error
}

// runPipeline executes the candidate and, when configured, the
// reference solution over the same ordered test cases, pairs the
// results index-wise and reduces them to comparisons plus a summary.
//
// ref == nil is the practice path: no expected outputs, every case
// reports Passed == false and an empty Expected.
//
// Total latency is bounded by max(candidate, reference) runtime, not
// the sum: both submissions and later both polls run concurrently.
// No partial results survive a failure; the evaluation fails whole.
func (s *EvalSrvc) runPipeline(
	ctx context.Context,
	cand CodeWithLang,
	ref *CodeWithLang,
	tests []problems.TestCase,
) ([]ComparisonResult, Summary, error) {
	log := logger.FromContext(ctx)

	stdins := make([]string, len(tests))
	for i, tc := range tests {
		stdins[i] = tc.Input
	}

	// 1. dispatch both batches concurrently
	candSubmCh := make(chan tokensOutcome, 1)
	go func() {
		tokens, err := s.judge.SubmitBatch(ctx, cand.SrcCode, cand.LangID, stdins)
		candSubmCh <- tokensOutcome{tokens, err}
	}()

	refSubmCh := make(chan tokensOutcome, 1)
	if ref != nil {
		go func() {
			tokens, err := s.judge.SubmitBatch(ctx, ref.SrcCode, ref.LangID, stdins)
			refSubmCh <- tokensOutcome{tokens, err}
		}()
	}

	candSubm := <-candSubmCh
	var refSubm tokensOutcome
	if ref != nil {
		refSubm = <-refSubmCh
	}
	if candSubm.err != nil {
		return nil, Summary{}, fmt.Errorf("failed to submit candidate batch: %w", candSubm.err)
	}
	if refSubm.err != nil {
		return nil, Summary{}, fmt.Errorf("failed to submit reference batch: %w", refSubm.err)
	}
	if len(candSubm.tokens) != len(tests) {
		return nil, Summary{}, alignmentErr("candidate tokens", len(candSubm.tokens), len(tests))
	}
	if ref != nil && len(refSubm.tokens) != len(tests) {
		return nil, Summary{}, alignmentErr("reference tokens", len(refSubm.tokens), len(tests))
	}
	log.Debug("batches submitted", "tests", len(tests), "graded", ref != nil)

	// 2. poll both token sets to completion concurrently
	candPollCh := make(chan resultsOutcome, 1)
	go func() {
		results, err := s.judge.PollBatch(ctx, candSubm.tokens, s.pollInterval)
		candPollCh <- resultsOutcome{results, err}
	}()

	refPollCh := make(chan resultsOutcome, 1)
	if ref != nil {
		go func() {
			results, err := s.judge.PollBatch(ctx, refSubm.tokens, s.pollInterval)
			refPollCh <- resultsOutcome{results, err}
		}()
	}

	candPoll := <-candPollCh
	var refPoll resultsOutcome
	if ref != nil {
		refPoll = <-refPollCh
	}
	if candPoll.err != nil {
		return nil, Summary{}, fmt.Errorf("failed to poll candidate batch: %w", candPoll.err)
	}
	if refPoll.err != nil {
		return nil, Summary{}, fmt.Errorf("failed to poll reference batch: %w", refPoll.err)
	}
	if len(candPoll.results) != len(tests) {
		return nil, Summary{}, alignmentErr("candidate results", len(candPoll.results), len(tests))
	}
	if ref != nil && len(refPoll.results) != len(tests) {
		return nil, Summary{}, alignmentErr("reference results", len(refPoll.results), len(tests))
	}

	// 3. zip index-wise into comparisons
	comparisons := make([]ComparisonResult, len(tests))
	for i, tc := range tests {
		var refRes *judge0.JobResult
		if ref != nil {
			refRes = &refPoll.results[i]
		}
		comparisons[i] = compareCase(tc, candPoll.results[i], refRes)
	}

	verdict := classify(candPoll.results, comparisons)
	log.Debug("evaluation classified", "verdict", verdict)
	return comparisons, summarize(comparisons, verdict), nil
}

func alignmentErr(what string, got int, want int) error {
	return ErrResultMismatch().SetDebug(
		fmt.Errorf("%s: got %d for %d test cases", what, got, want))
}
