package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"
	"github.com/Himanshuraj677/codecatalyst-sub000/httpjson"
)

type CreateEvaluationResponse struct {
	EvalUUID string `json:"eval_uuid"`
}

func (httpserver *HttpServer) createEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type request struct {
		ProblemID string `json:"problem_id"`
		SrcCode   string `json:"src_code"`
		LangID    int    `json:"lang_id"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	evalUuid, err := httpserver.evalSrvc.Enqueue(r.Context(), req.ProblemID, evalsrvc.CodeWithLang{
		SrcCode: req.SrcCode,
		LangID:  req.LangID,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, &CreateEvaluationResponse{
		EvalUUID: evalUuid.String(),
	})
}
