package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/Himanshuraj677/codecatalyst-sub000/httpjson"
)

type ProblemView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	TestCount int    `json:"test_count"`
	Graded    bool   `json:"graded"` // has a reference solution
}

func (httpserver *HttpServer) listProblems(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	probs, err := httpserver.probRepo.List(r.Context())
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	views := make([]ProblemView, len(probs))
	for i, p := range probs {
		views[i] = ProblemView{
			ID:        p.ID,
			Title:     p.Title,
			TestCount: len(p.Tests),
			Graded:    p.Reference != nil,
		}
	}

	httpjson.WriteSuccessJson(w, views)
}
