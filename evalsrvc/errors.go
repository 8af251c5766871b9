package evalsrvc

import (
	"net/http"

	"github.com/Himanshuraj677/codecatalyst-sub000/srvcerror"
)

const ErrCodeEvalNotFound = "eval_not_found"

func ErrEvalNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEvalNotFound,
		"Evaluation not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNoTestCases = "no_test_cases"

func ErrNoTestCases() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNoTestCases,
		"Problem has no test cases",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeRefSolutionMissing = "ref_solution_missing"

// graded submissions require a reference solution to compare against;
// only the explicit practice mode runs without one
func ErrRefSolutionMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeRefSolutionMissing,
		"Problem has no reference solution configured",
	).SetHttpStatusCode(http.StatusUnprocessableEntity)
}

const ErrCodeResultMismatch = "result_mismatch"

// ErrResultMismatch means candidate and reference result sequences
// lost index alignment. Truncating or padding would silently grade
// outputs against the wrong inputs, so the whole evaluation fails.
func ErrResultMismatch() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeResultMismatch,
		"Evaluation results do not align with test cases",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
