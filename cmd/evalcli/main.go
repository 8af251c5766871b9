package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Himanshuraj677/codecatalyst-sub000/evalsrvc"
	"github.com/Himanshuraj677/codecatalyst-sub000/judge0"
	"github.com/Himanshuraj677/codecatalyst-sub000/problems"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	partialStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func main() {
	_ = godotenv.Load()

	problemID := flag.String("problem", "", "problem id to evaluate against")
	srcPath := flag.String("file", "", "path to the solution source file")
	langID := flag.Int("lang", 0, "judge language id")
	practice := flag.Bool("practice", false, "run without grading against the reference")
	problemsDir := flag.String("problems-dir", "./problems.d", "directory with problem definitions")
	flag.Parse()

	if *problemID == "" || *srcPath == "" || *langID == 0 {
		flag.Usage()
		os.Exit(2)
	}

	src, err := os.ReadFile(*srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", *srcPath, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	probRepo := problems.NewInMemRepo()
	if _, err := problems.LoadDir(probRepo, *problemsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load problems: %v\n", err)
		os.Exit(1)
	}

	srvc := evalsrvc.NewEvalSrvc(
		logger,
		judge0.NewClientFromEnv(logger),
		probRepo,
		evalsrvc.NewInMemEvalRepo(),
	)

	cand := evalsrvc.CodeWithLang{SrcCode: string(src), LangID: *langID}

	var comparisons []evalsrvc.ComparisonResult
	var summary evalsrvc.Summary
	if *practice {
		comparisons, summary, err = srvc.Practice(context.Background(), *problemID, cand)
	} else {
		var eval evalsrvc.Evaluation
		eval, err = srvc.Evaluate(context.Background(), *problemID, cand)
		if err == nil {
			comparisons = eval.Comparisons
			summary = *eval.Summary
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("evaluation failed: ")+err.Error())
		os.Exit(1)
	}

	render(comparisons, summary, *practice)
}

func render(comparisons []evalsrvc.ComparisonResult, summary evalsrvc.Summary, practice bool) {
	fmt.Println(headerStyle.Render("Test cases"))
	for i, c := range comparisons {
		mark := failStyle.Render("FAIL")
		if c.Passed {
			mark = passStyle.Render("PASS")
		}
		if practice {
			mark = dimStyle.Render("RUN ")
		}
		fmt.Printf("  %s  #%d  %s\n", mark, i+1, dimStyle.Render(c.Status))
		if !c.Passed && !practice {
			fmt.Printf("        input:    %q\n", c.Input)
			fmt.Printf("        output:   %q\n", c.Output)
			fmt.Printf("        expected: %q\n", c.Expected)
		}
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Summary"))
	fmt.Printf("  verdict: %s\n", verdictStyle(summary.Status).Render(summary.Status))
	fmt.Printf("  passed:  %d/%d (%s)\n", summary.PassedCount, summary.TotalCount, summary.PercentagePassed)
	fmt.Printf("  time:    %s\n", summary.TotalTime)
	fmt.Printf("  memory:  %s\n", summary.TotalMemory)
}

func verdictStyle(verdict string) lipgloss.Style {
	switch verdict {
	case evalsrvc.VerdictAccepted:
		return passStyle
	case evalsrvc.VerdictPartiallyCorrect:
		return partialStyle
	default:
		return failStyle
	}
}
