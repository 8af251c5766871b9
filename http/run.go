package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"
	"github.com/Himanshuraj677/codecatalyst-sub000/httpjson"
)

type RunResponse struct {
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	CompileOutput string  `json:"compile_output"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	Time          string  `json:"time"`
	Memory        float64 `json:"memory"`
}

// adhocRun executes one piece of code against one stdin, synchronously
func (httpserver *HttpServer) adhocRun(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type request struct {
		SrcCode string `json:"src_code"`
		LangID  int    `json:"lang_id"`
		Stdin   string `json:"stdin"`
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := httpserver.evalSrvc.Run(r.Context(), evalsrvc.CodeWithLang{
		SrcCode: req.SrcCode,
		LangID:  req.LangID,
	}, req.Stdin)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, &RunResponse{
		Stdout:        res.Stdout,
		Stderr:        res.Stderr,
		CompileOutput: res.CompileOutput,
		Message:       res.Message,
		Status:        res.StatusDescription,
		Time:          res.Time,
		Memory:        res.Memory,
	})
}
