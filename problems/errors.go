package problems

import (
	"net/http"

	"github.com/Himanshuraj677/codecatalyst-sub000/srvcerror"
)

const ErrCodeProblemNotFound = "problem_not_found"

func ErrProblemNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeProblemNotFound,
		"Problem not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidProblemFile = "invalid_problem_file"

func ErrInvalidProblemFile() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidProblemFile,
		"Problem definition file is invalid",
	).SetHttpStatusCode(http.StatusBadRequest)
}
