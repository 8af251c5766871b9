package http

import "github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"

type ComparisonView struct {
	Input    string  `json:"input"`
	Output   string  `json:"output"`
	Expected string  `json:"expected"`
	Passed   bool    `json:"passed"`
	Status   string  `json:"status"`
	Time     string  `json:"time"`
	Memory   float64 `json:"memory"`
}

type SummaryView struct {
	PassedCount      int    `json:"passed_count"`
	TotalCount       int    `json:"total_count"`
	PercentagePassed string `json:"percentage_passed"`
	TotalTime        string `json:"total_time"`
	TotalMemory      string `json:"total_memory"`
	Status           string `json:"status"`
}

type EvaluationView struct {
	EvalUUID    string           `json:"eval_uuid"`
	Stage       string           `json:"stage"`
	ProblemID   string           `json:"problem_id"`
	LangID      int              `json:"lang_id"`
	Comparisons []ComparisonView `json:"comparisons,omitempty"`
	Summary     *SummaryView     `json:"summary,omitempty"`
	ErrorMsg    *string          `json:"error_msg,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

func mapComparisons(comparisons []evalsrvc.ComparisonResult) []ComparisonView {
	res := make([]ComparisonView, len(comparisons))
	for i, c := range comparisons {
		res[i] = ComparisonView{
			Input:    c.Input,
			Output:   c.Output,
			Expected: c.Expected,
			Passed:   c.Passed,
			Status:   c.Status,
			Time:     c.Time,
			Memory:   c.Memory,
		}
	}
	return res
}

func mapSummary(s *evalsrvc.Summary) *SummaryView {
	if s == nil {
		return nil
	}
	return &SummaryView{
		PassedCount:      s.PassedCount,
		TotalCount:       s.TotalCount,
		PercentagePassed: s.PercentagePassed,
		TotalTime:        s.TotalTime,
		TotalMemory:      s.TotalMemory,
		Status:           s.Status,
	}
}

func mapEval(eval evalsrvc.Evaluation) EvaluationView {
	return EvaluationView{
		EvalUUID:    eval.UUID.String(),
		Stage:       eval.Stage,
		ProblemID:   eval.ProblemID,
		LangID:      eval.LangID,
		Comparisons: mapComparisons(eval.Comparisons),
		Summary:     mapSummary(eval.Summary),
		ErrorMsg:    eval.ErrorMsg,
		CreatedAt:   eval.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
