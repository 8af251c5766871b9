package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/Himanshuraj677/codecatalyst-sub000/httpjson"
)

func (httpserver *HttpServer) getEvaluation(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	evalUuidStr := chi.URLParam(r, "evalUuid")
	evalUuid, err := uuid.Parse(evalUuidStr)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// blocks until the evaluation finishes or the client goes away
	eval, err := httpserver.evalSrvc.Get(r.Context(), evalUuid)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapEval(eval))
}
