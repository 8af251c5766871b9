package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a stateless façade over a Judge0-compatible execution
// service. It performs outbound network I/O only; retry policy for
// the polling phase lives in PollBatch, everything else propagates
// failures to the caller immediately.
type Client struct {
	logger *slog.Logger
	httpc  *http.Client

	baseUrl string

	// optional auth header, e.g. X-Auth-Token or X-RapidAPI-Key.
	// sent on every request when both are non-empty.
	authHeader string
	authValue  string
}

func NewClient(logger *slog.Logger, httpc *http.Client, baseUrl string) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		logger:  logger,
		httpc:   httpc,
		baseUrl: strings.TrimRight(baseUrl, "/"),
	}
}

// NewClientFromEnv builds a client from JUDGE_URL and the optional
// JUDGE_AUTH_HEADER / JUDGE_AUTH_KEY pair.
func NewClientFromEnv(logger *slog.Logger) *Client {
	c := NewClient(logger, nil, getJudgeUrlFromEnv())
	c.authHeader, c.authValue = getJudgeAuthFromEnv()
	return c
}

func (c *Client) SetAuth(header string, value string) {
	c.authHeader = header
	c.authValue = value
}

// SubmitBatch dispatches one job per stdin entry, all running the same
// source code, and returns the judge's tokens in input order. The
// response may be a bare array of job descriptors or an envelope
// object wrapping one; any other shape aborts with a protocol error.
func (c *Client) SubmitBatch(ctx context.Context, code string, langID int, stdins []string) ([]string, error) {
	subs := make([]submission, len(stdins))
	for i, stdin := range stdins {
		subs[i] = submission{
			SourceCode: EncodeB64(code),
			LanguageID: langID,
			Stdin:      EncodeB64(stdin),
		}
	}

	body, err := json.Marshal(submissionBatch{Submissions: subs})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission batch: %w", err)
	}

	reqUrl := c.baseUrl + "/submissions/batch?base64_encoded=true&wait=false"
	raw, err := c.do(ctx, http.MethodPost, reqUrl, body)
	if err != nil {
		return nil, err
	}

	descriptors, err := parseBatchSubmitResponse(raw)
	if err != nil {
		return nil, err
	}

	// count alignment with the input test cases is the caller's
	// invariant to enforce; the client only guarantees order
	tokens := make([]string, len(descriptors))
	for i, d := range descriptors {
		if d.Token == "" {
			debug := fmt.Errorf("job descriptor %d has no token", i)
			return nil, ErrJudgeProtocol().SetDebug(debug)
		}
		tokens[i] = d.Token
	}
	c.logger.Debug("batch submitted", "jobs", len(tokens), "lang_id", langID)
	return tokens, nil
}

// GetBatchResults fetches the current state of every token. Results are
// re-keyed by token into the requested order; the judge's documented
// behavior of preserving order is not relied upon. An empty token list
// short-circuits without a network call.
func (c *Client) GetBatchResults(ctx context.Context, tokens []string) ([]JobResult, error) {
	if len(tokens) == 0 {
		return []JobResult{}, nil
	}

	reqUrl := fmt.Sprintf("%s/submissions/batch?tokens=%s&base64_encoded=true",
		c.baseUrl, url.QueryEscape(strings.Join(tokens, ",")))
	raw, err := c.do(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}

	var batch jobResultBatchWire
	if err := json.Unmarshal(raw, &batch); err != nil || batch.Submissions == nil {
		debug := fmt.Errorf("batch result is not a submissions envelope: %v", err)
		return nil, ErrJudgeProtocol().SetDebug(debug)
	}

	byToken := make(map[string]JobResult, len(batch.Submissions))
	for _, wire := range batch.Submissions {
		res, err := wire.decode()
		if err != nil {
			return nil, ErrJudgeProtocol().SetDebug(err)
		}
		byToken[res.Token] = res
	}

	results := make([]JobResult, len(tokens))
	for i, token := range tokens {
		res, ok := byToken[token]
		if !ok {
			debug := fmt.Errorf("judge returned no result for token %s", token)
			return nil, ErrJudgeProtocol().SetDebug(debug)
		}
		results[i] = res
	}
	return results, nil
}

// RunSingle executes one ad-hoc job in the judge's blocking mode,
// outside the batch path.
func (c *Client) RunSingle(ctx context.Context, code string, langID int, stdin string) (JobResult, error) {
	body, err := json.Marshal(submission{
		SourceCode: EncodeB64(code),
		LanguageID: langID,
		Stdin:      EncodeB64(stdin),
	})
	if err != nil {
		return JobResult{}, fmt.Errorf("failed to marshal submission: %w", err)
	}

	reqUrl := c.baseUrl + "/submissions?base64_encoded=true&wait=true"
	raw, err := c.do(ctx, http.MethodPost, reqUrl, body)
	if err != nil {
		return JobResult{}, err
	}

	var wire jobResultWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		debug := fmt.Errorf("single-run result is not a job result: %w", err)
		return JobResult{}, ErrJudgeProtocol().SetDebug(debug)
	}
	res, err := wire.decode()
	if err != nil {
		return JobResult{}, ErrJudgeProtocol().SetDebug(err)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method string, reqUrl string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build judge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authHeader != "" && c.authValue != "" {
		req.Header.Set(c.authHeader, c.authValue)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrJudgeUnavailable().SetDebug(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrJudgeUnavailable().SetDebug(err)
	}

	if resp.StatusCode >= 500 {
		debug := fmt.Errorf("judge answered %d: %s", resp.StatusCode, truncate(raw, 512))
		return nil, ErrJudgeUnavailable().SetDebug(debug)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		debug := fmt.Errorf("judge answered %d: %s", resp.StatusCode, truncate(raw, 512))
		return nil, ErrJudgeProtocol().SetDebug(debug)
	}
	return raw, nil
}

// parseBatchSubmitResponse accepts the two documented response shapes
// for batch submission: a bare array of job descriptors, or an object
// exposing them under "submissions". Anything else fails closed.
func parseBatchSubmitResponse(raw []byte) ([]tokenWire, error) {
	var bare []tokenWire
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var envelope struct {
		Submissions []tokenWire `json:"submissions"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Submissions != nil {
		return envelope.Submissions, nil
	}

	debug := fmt.Errorf("batch submit response is neither an array nor an envelope: %s", truncate(raw, 512))
	return nil, ErrJudgeProtocol().SetDebug(debug)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
