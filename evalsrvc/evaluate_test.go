package evalsrvc

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/langlist"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
	"github.com/Himanshuraj677/codecatalyst-sub000/srvcerror"
)

// stubJudge runs code by table lookup: output = run[code][stdin]
type stubJudge struct {
	mu   sync.Mutex
	seq  int
	jobs map[string]stubJob

	run map[string]map[string]string

	// when submitting this source code, acknowledge one job fewer
	// than requested, breaking index alignment downstream
	dropTokenForCode string

	srv *httptest.Server
}

type stubJob struct {
	code  string
	stdin string
}

func newStubJudge(run map[string]map[string]string) *stubJudge {
	s := &stubJudge{
		jobs: make(map[string]stubJob),
		run:  run,
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *stubJudge) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		var batch struct {
			Submissions []struct {
				SourceCode string `json:"source_code"`
				Stdin      string `json:"stdin"`
			} `json:"submissions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		tokens := []map[string]string{}
		for i, sub := range batch.Submissions {
			code := b64dec(sub.SourceCode)
			if code == s.dropTokenForCode && i == len(batch.Submissions)-1 {
				continue
			}
			s.seq++
			token := fmt.Sprintf("tok-%d", s.seq)
			s.jobs[token] = stubJob{code: code, stdin: b64dec(sub.Stdin)}
			tokens = append(tokens, map[string]string{"token": token})
		}
		s.mu.Unlock()

		json.NewEncoder(w).Encode(tokens)
		return
	}

	// GET batch results, always terminal
	tokensParam := r.URL.Query().Get("tokens")
	s.mu.Lock()
	results := []map[string]any{}
	for token, job := range s.jobs {
		if !containsToken(tokensParam, token) {
			continue
		}
		results = append(results, map[string]any{
			"token":  token,
			"stdout": judge0.EncodeB64(s.run[job.code][job.stdin]),
			"time":   "0.010",
			"memory": 2048.0,
			"status": map[string]any{"id": 3, "description": "Accepted"},
		})
	}
	s.mu.Unlock()
	json.NewEncoder(w).Encode(map[string]any{"submissions": results})
}

func containsToken(csv string, token string) bool {
	for _, t := range splitCsv(csv) {
		if t == token {
			return true
		}
	}
	return false
}

func splitCsv(s string) []string {
	var res []string
	cur := ""
	for _, r := range s {
		if r == ',' {
			res = append(res, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	return append(res, cur)
}

func b64dec(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

const (
	candCode = "cand.py"
	refCode  = "ref.py"
)

func newTestSrvc(t *testing.T, judge *stubJudge, problem problems.Problem) *EvalSrvc {
	t.Helper()
	probRepo := problems.NewInMemRepo()
	probRepo.Upsert(problem)

	srvc := NewEvalSrvc(
		slog.Default(),
		judge0.NewClient(slog.Default(), nil, judge.srv.URL),
		probRepo,
		NewInMemEvalRepo(),
	)
	srvc.SetPollInterval(5 * time.Millisecond)
	return srvc
}

func sumProblem() problems.Problem {
	return problems.Problem{
		ID:    "sum",
		Title: "A+B",
		Tests: []problems.TestCase{
			{Input: "2 2"},
			{Input: "1 5"},
		},
		Reference: &problems.Solution{SrcCode: refCode, LangID: 71},
	}
}

func TestEvaluateAcceptedEndToEnd(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		// trailing newline on the candidate side must not matter
		candCode: {"2 2": "4\n", "1 5": "6\n"},
		refCode:  {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	eval, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.NoError(t, err)
	require.Equal(t, EvalStageFinished, eval.Stage)
	require.Len(t, eval.Comparisons, 2)
	for _, c := range eval.Comparisons {
		require.True(t, c.Passed)
	}
	require.Equal(t, VerdictAccepted, eval.Summary.Status)
	require.Equal(t, "100.00%", eval.Summary.PercentagePassed)
	require.Equal(t, "0.020s", eval.Summary.TotalTime)
	require.Equal(t, "4096 KB", eval.Summary.TotalMemory)
}

func TestEvaluateWrongAnswerEndToEnd(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		candCode: {"2 2": "5", "1 5": "7"},
		refCode:  {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	eval, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.NoError(t, err)
	require.Equal(t, VerdictWrongAnswer, eval.Summary.Status)
	require.Equal(t, "0.00%", eval.Summary.PercentagePassed)
	for _, c := range eval.Comparisons {
		require.False(t, c.Passed)
		require.NotEmpty(t, c.Expected)
	}
}

func TestEvaluatePartiallyCorrectEndToEnd(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		candCode: {"2 2": "4", "1 5": "7"},
		refCode:  {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	eval, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.NoError(t, err)
	require.Equal(t, VerdictPartiallyCorrect, eval.Summary.Status)
	require.Equal(t, 1, eval.Summary.PassedCount)
	require.Equal(t, "50.00%", eval.Summary.PercentagePassed)
}

func TestEvaluateAlignmentViolation(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		candCode: {"2 2": "4", "1 5": "6"},
		refCode:  {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	// the reference batch acknowledges one token fewer than the
	// test case count
	judge.dropTokenForCode = refCode
	srvc := newTestSrvc(t, judge, sumProblem())

	_, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.Error(t, err)
	requireErrCode(t, err, ErrCodeResultMismatch)
}

func TestEvaluateRequiresReference(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{})
	defer judge.srv.Close()
	problem := sumProblem()
	problem.Reference = nil
	srvc := newTestSrvc(t, judge, problem)

	_, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.Error(t, err)
	requireErrCode(t, err, ErrCodeRefSolutionMissing)
}

func TestEvaluateRejectsProblemWithoutTests(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{})
	defer judge.srv.Close()
	problem := sumProblem()
	problem.Tests = nil
	srvc := newTestSrvc(t, judge, problem)

	_, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.Error(t, err)
	requireErrCode(t, err, ErrCodeNoTestCases)
}

func TestEvaluateRejectsUnknownLanguage(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	_, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 9999})
	require.Error(t, err)
	requireErrCode(t, err, langlist.ErrCodeInvalidLanguage)
}

func TestPracticeRunsWithoutReference(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		candCode: {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	problem := sumProblem()
	problem.Reference = nil
	srvc := newTestSrvc(t, judge, problem)

	comparisons, summary, err := srvc.Practice(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.NoError(t, err)
	require.Len(t, comparisons, 2)
	for _, c := range comparisons {
		require.Equal(t, "", c.Expected)
		require.False(t, c.Passed)
		require.NotEmpty(t, c.Output)
	}
	require.Equal(t, 0, summary.PassedCount)
}

func TestEnqueueAndGetWaitsForCompletion(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{
		candCode: {"2 2": "4", "1 5": "6"},
		refCode:  {"2 2": "4", "1 5": "6"},
	})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	evalUuid, err := srvc.Enqueue(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	eval, err := srvc.Get(ctx, evalUuid)
	require.NoError(t, err)
	require.Equal(t, EvalStageFinished, eval.Stage)
	require.Equal(t, VerdictAccepted, eval.Summary.Status)
}

func TestGetUnknownEvaluation(t *testing.T) {
	judge := newStubJudge(map[string]map[string]string{})
	defer judge.srv.Close()
	srvc := newTestSrvc(t, judge, sumProblem())

	_, err := srvc.Get(context.Background(), uuid.Must(uuid.NewV7()))
	require.Error(t, err)
	requireErrCode(t, err, ErrCodeEvalNotFound)
}

func TestEvaluateJudgeUnreachable(t *testing.T) {
	probRepo := problems.NewInMemRepo()
	probRepo.Upsert(sumProblem())
	srvc := NewEvalSrvc(
		slog.Default(),
		judge0.NewClient(slog.Default(), nil, "http://127.0.0.1:1"),
		probRepo,
		NewInMemEvalRepo(),
	)

	_, err := srvc.Evaluate(context.Background(), "sum", CodeWithLang{SrcCode: candCode, LangID: 71})
	require.Error(t, err)
	requireErrCode(t, err, judge0.ErrCodeJudgeUnavailable)
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	srvcErr := &srvcerror.Error{}
	require.ErrorAs(t, err, &srvcErr)
	require.Equal(t, code, srvcErr.ErrorCode())
}
