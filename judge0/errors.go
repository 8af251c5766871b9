package judge0

import (
	"net/http"

	"github.com/Himanshuraj677/codecatalyst-sub000/srvcerror"
)

const ErrCodeJudgeProtocol = "judge_protocol_error"

// ErrJudgeProtocol means the judge answered with a shape the client
// does not recognize. Unrecoverable; retrying would not help.
func ErrJudgeProtocol() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeProtocol,
		"Code execution service returned an unexpected response",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeJudgeUnavailable = "judge_unavailable"

func ErrJudgeUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeUnavailable,
		"Code execution service is unreachable",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeJudgeTimeout = "judge_timeout"

// ErrJudgeTimeout is distinct from unavailability: the judge accepted
// the batch but never finished it within the polling deadline.
func ErrJudgeTimeout() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeJudgeTimeout,
		"Code execution did not finish in time",
	).SetHttpStatusCode(http.StatusGatewayTimeout)
}
