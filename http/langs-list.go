package http

import (
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/Himanshuraj677/codecatalyst-sub000/httpjson"
	"github.com/Himanshuraj677/codecatalyst-sub000/langlist"
)

func (httpserver *HttpServer) listLanguages(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	languages, err := langlist.ListLanguages()
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, languages)
}
