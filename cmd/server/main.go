package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"
	"github.com/Himanshuraj677/codecatalyst-sub000/http"
	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

func main() {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	logger := slog.Default()

	judge := judge0.NewClientFromEnv(logger.With("module", "judge0"))

	probRepo := problems.NewInMemRepo()
	problemsDir := os.Getenv("PROBLEMS_DIR")
	if problemsDir == "" {
		problemsDir = "./problems.d"
	}
	loaded, err := problems.LoadDir(probRepo, problemsDir)
	if err != nil {
		slog.Error("failed to load problems", "dir", problemsDir, "error", err)
		os.Exit(1)
	}
	log.Printf("loaded %d problems from %s", loaded, problemsDir)

	var evalRepo evalsrvc.EvalRepo = evalsrvc.NewInMemEvalRepo()
	if os.Getenv("EVAL_S3_BUCKET") != "" {
		evalRepo = evalsrvc.NewS3EvalRepo(
			logger.With("module", "eval-repo"),
			evalsrvc.GetS3ClientFromEnv(),
			evalsrvc.GetEvalS3BucketFromEnv(),
		)
	}

	evalSrvc := evalsrvc.NewEvalSrvc(
		logger.With("module", "eval"),
		judge,
		probRepo,
		evalRepo,
	)

	httpServer := http.NewHttpServer(evalSrvc, probRepo,
		http.SplitOrigins(os.Getenv("ALLOWED_ORIGINS")))

	address := os.Getenv("ADDRESS")
	if address == "" {
		address = ":8080"
	}
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
