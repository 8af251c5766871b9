package langlist

import (
	"net/http"

	"github.com/Himanshuraj677/codecatalyst-sub000/srvcerror"
)

const ErrCodeInvalidLanguage = "invalid_programming_language"

func ErrInvalidLanguage() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidLanguage,
		"Invalid programming language",
	).SetHttpStatusCode(http.StatusBadRequest)
}
