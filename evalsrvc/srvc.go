package evalsrvc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/langlist"
	"github.com/Himanshuraj677/codecatalyst-sub000/logger"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

// EvalRepo stores finished evaluation records
type EvalRepo interface {
	Save(ctx context.Context, eval Evaluation) error
	Get(ctx context.Context, id uuid.UUID) (Evaluation, error)
}

// EvalSrvc evaluates submissions against an external judge. Each
// evaluation's tokens, results and comparisons are local to that call;
// the only shared state is the repos and the in-flight tracking map.
type EvalSrvc struct {
	logger *slog.Logger

	judge    *judge0.Client
	problems problems.Repo
	evals    EvalRepo

	pollInterval time.Duration
	evalTimeout  time.Duration

	// maps in-flight eval ids to *sync.WaitGroup so Get can
	// block until completion
	evalWg sync.Map
}

func NewEvalSrvc(
	logger *slog.Logger,
	judge *judge0.Client,
	problemRepo problems.Repo,
	evalRepo EvalRepo,
) *EvalSrvc {
	return &EvalSrvc{
		logger:       logger,
		judge:        judge,
		problems:     problemRepo,
		evals:        evalRepo,
		pollInterval: judge0.DefaultPollInterval,
		evalTimeout:  60 * time.Second,
	}
}

// SetEvalTimeout bounds the wall clock of one whole evaluation,
// polling included. Expiry surfaces as a judge timeout.
func (s *EvalSrvc) SetEvalTimeout(d time.Duration) {
	s.evalTimeout = d
}

func (s *EvalSrvc) SetPollInterval(d time.Duration) {
	s.pollInterval = d
}

// Enqueue starts a graded evaluation in the background and returns its
// id. Graded evaluations require the problem to carry a reference
// solution; rejecting upfront beats discovering it mid-pipeline.
func (s *EvalSrvc) Enqueue(ctx context.Context, problemID string, cand CodeWithLang) (uuid.UUID, error) {
	problem, err := s.validate(ctx, problemID, cand)
	if err != nil {
		return uuid.Nil, err
	}
	if problem.Reference == nil {
		return uuid.Nil, ErrRefSolutionMissing()
	}

	evalUuid, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate UUID: %w", err)
	}

	eval := Evaluation{
		UUID:      evalUuid,
		Stage:     EvalStageWaiting,
		ProblemID: problemID,
		LangID:    cand.LangID,
		CreatedAt: time.Now(),
	}
	if err := s.evals.Save(ctx, eval); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	wg := &sync.WaitGroup{}
	wg.Add(1)
	s.evalWg.Store(evalUuid, wg)

	go func() {
		defer wg.Done()
		// detached from the request context: a client disconnect
		// must not abort an already accepted evaluation
		bgCtx, cancel := context.WithTimeout(context.Background(), s.evalTimeout)
		defer cancel()
		s.finish(bgCtx, eval, cand, problem)
	}()

	return evalUuid, nil
}

// Evaluate is the synchronous graded path: same pipeline as Enqueue,
// result returned inline.
func (s *EvalSrvc) Evaluate(ctx context.Context, problemID string, cand CodeWithLang) (Evaluation, error) {
	problem, err := s.validate(ctx, problemID, cand)
	if err != nil {
		return Evaluation{}, err
	}
	if problem.Reference == nil {
		return Evaluation{}, ErrRefSolutionMissing()
	}

	evalUuid, err := uuid.NewV7()
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to generate UUID: %w", err)
	}
	eval := Evaluation{
		UUID:      evalUuid,
		Stage:     EvalStageWaiting,
		ProblemID: problemID,
		LangID:    cand.LangID,
		CreatedAt: time.Now(),
	}

	evalCtx, cancel := context.WithTimeout(ctx, s.evalTimeout)
	defer cancel()
	evalCtx = logger.WithEvalID(logger.WithLogger(evalCtx, s.logger), evalUuid.String())

	ref := &CodeWithLang{
		SrcCode: problem.Reference.SrcCode,
		LangID:  problem.Reference.LangID,
	}
	comparisons, summary, err := s.runPipeline(evalCtx, cand, ref, problem.Tests)
	if err != nil {
		return Evaluation{}, err
	}
	eval.Stage = EvalStageFinished
	eval.Comparisons = comparisons
	eval.Summary = &summary
	if err := s.evals.Save(ctx, eval); err != nil {
		return Evaluation{}, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return eval, nil
}

// Practice runs the candidate over the problem's test cases without
// the reference solution: outputs only, nothing to grade against.
// Works on problems that have no reference configured.
func (s *EvalSrvc) Practice(ctx context.Context, problemID string, cand CodeWithLang) ([]ComparisonResult, Summary, error) {
	problem, err := s.validate(ctx, problemID, cand)
	if err != nil {
		return nil, Summary{}, err
	}

	evalCtx, cancel := context.WithTimeout(ctx, s.evalTimeout)
	defer cancel()

	return s.runPipeline(evalCtx, cand, nil, problem.Tests)
}

// Run executes one ad-hoc job in the judge's blocking mode. Used for
// "try your code" outside any problem.
func (s *EvalSrvc) Run(ctx context.Context, cand CodeWithLang, stdin string) (judge0.JobResult, error) {
	if _, err := langlist.GetLanguageByID(cand.LangID); err != nil {
		return judge0.JobResult{}, err
	}
	runCtx, cancel := context.WithTimeout(ctx, s.evalTimeout)
	defer cancel()
	return s.judge.RunSingle(runCtx, cand.SrcCode, cand.LangID, stdin)
}

// Get fetches an evaluation, waiting for completion when it is still
// in flight. Waiting honors ctx cancellation.
func (s *EvalSrvc) Get(ctx context.Context, evalUuid uuid.UUID) (Evaluation, error) {
	wgVal, inFlight := s.evalWg.Load(evalUuid)
	if !inFlight {
		return s.evals.Get(ctx, evalUuid)
	}

	wg := wgVal.(*sync.WaitGroup)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.evalWg.Delete(evalUuid)
		return s.evals.Get(ctx, evalUuid)
	case <-ctx.Done():
		return Evaluation{}, ctx.Err()
	}
}

func (s *EvalSrvc) validate(ctx context.Context, problemID string, cand CodeWithLang) (problems.Problem, error) {
	if _, err := langlist.GetLanguageByID(cand.LangID); err != nil {
		return problems.Problem{}, err
	}
	problem, err := s.problems.Get(ctx, problemID)
	if err != nil {
		return problems.Problem{}, err
	}
	if len(problem.Tests) == 0 {
		return problems.Problem{}, ErrNoTestCases()
	}
	return problem, nil
}

// finish drives a background evaluation to its stored terminal record
func (s *EvalSrvc) finish(ctx context.Context, eval Evaluation, cand CodeWithLang, problem problems.Problem) {
	ctx = logger.WithEvalID(logger.WithLogger(ctx, s.logger), eval.UUID.String())
	log := logger.FromContext(ctx)

	eval.Stage = EvalStageRunning
	ref := &CodeWithLang{
		SrcCode: problem.Reference.SrcCode,
		LangID:  problem.Reference.LangID,
	}
	comparisons, summary, err := s.runPipeline(ctx, cand, ref, problem.Tests)
	if err != nil {
		log.Error("evaluation failed", "error", err)
		errMsg := err.Error()
		eval.Stage = EvalStageInternalE
		eval.ErrorMsg = &errMsg
	} else {
		eval.Stage = EvalStageFinished
		eval.Comparisons = comparisons
		eval.Summary = &summary
	}

	saveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.evals.Save(saveCtx, eval); err != nil {
		log.Error("failed to save evaluation", "error", err)
	}
}
