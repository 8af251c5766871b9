package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	"github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

type HttpServer struct {
	evalSrvc *evalsrvc.EvalSrvc
	probRepo problems.Repo
	router   *chi.Mux
}

func NewHttpServer(
	evalSrvc *evalsrvc.EvalSrvc,
	probRepo problems.Repo,
	allowedOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("codecatalyst", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		evalSrvc: evalSrvc,
		probRepo: probRepo,
		router:   router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/evaluations", httpserver.createEvaluation)
	r.Get("/evaluations/{evalUuid}", httpserver.getEvaluation)
	r.Post("/practice", httpserver.practiceRun)
	r.Post("/run", httpserver.adhocRun)
	r.Get("/languages", httpserver.listLanguages)
	r.Get("/problems", httpserver.listProblems)
}

// SplitOrigins parses a comma-separated origin list from config
func SplitOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
