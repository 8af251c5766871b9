package judge0

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"golang.org/x/exp/rand"
)

// execResult is what the fake judge "computes" for one job
type execResult struct {
	stdout     string
	stderr     string
	statusID   int
	statusDesc string
	time       string
	memory     float64
}

func accepted(stdout string) execResult {
	return execResult{
		stdout:     stdout,
		statusID:   3,
		statusDesc: "Accepted",
		time:       "0.010",
		memory:     1024,
	}
}

type fakeJob struct {
	code  string
	stdin string
}

// fakeJudge emulates the judge's batch protocol in-process. Knobs
// cover the wire variations the client has to survive: both submit
// response shapes, pending rounds before terminal results, and
// shuffled result order.
type fakeJudge struct {
	mu     sync.Mutex
	seq    int
	jobs   map[string]fakeJob
	rounds map[string]int

	exec           func(code, stdin string) execResult
	pendingRounds  int    // GET rounds reporting "Processing" first
	submitEnvelope bool   // wrap batch submit response in an object
	submitGarbage  string // when set, returned verbatim on submit
	shuffleResults bool

	srv *httptest.Server
}

func newFakeJudge(exec func(code, stdin string) execResult) *fakeJudge {
	f := &fakeJudge{
		jobs:   make(map[string]fakeJob),
		rounds: make(map[string]int),
		exec:   exec,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *fakeJudge) Close() {
	f.srv.Close()
}

func (f *fakeJudge) URL() string {
	return f.srv.URL
}

// getCount reports how many batch-result fetches have been served
func (f *fakeJudge) getCount(token string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rounds[token]
}

func (f *fakeJudge) handle(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/submissions/batch":
		f.handleBatchSubmit(w, r)
	case r.Method == http.MethodGet && r.URL.Path == "/submissions/batch":
		f.handleBatchGet(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/submissions":
		f.handleSingle(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeJudge) handleBatchSubmit(w http.ResponseWriter, r *http.Request) {
	var batch struct {
		Submissions []struct {
			SourceCode string `json:"source_code"`
			LanguageID int    `json:"language_id"`
			Stdin      string `json:"stdin"`
		} `json:"submissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if f.submitGarbage != "" {
		w.Write([]byte(f.submitGarbage))
		return
	}

	f.mu.Lock()
	tokens := make([]map[string]string, len(batch.Submissions))
	for i, sub := range batch.Submissions {
		f.seq++
		token := fmt.Sprintf("tok-%d", f.seq)
		f.jobs[token] = fakeJob{
			code:  mustDecode(sub.SourceCode),
			stdin: mustDecode(sub.Stdin),
		}
		tokens[i] = map[string]string{"token": token}
	}
	f.mu.Unlock()

	if f.submitEnvelope {
		json.NewEncoder(w).Encode(map[string]any{"submissions": tokens})
		return
	}
	json.NewEncoder(w).Encode(tokens)
}

func (f *fakeJudge) handleBatchGet(w http.ResponseWriter, r *http.Request) {
	tokens := strings.Split(r.URL.Query().Get("tokens"), ",")

	f.mu.Lock()
	results := make([]map[string]any, 0, len(tokens))
	for _, token := range tokens {
		job, ok := f.jobs[token]
		if !ok {
			continue
		}
		f.rounds[token]++
		if f.rounds[token] <= f.pendingRounds {
			results = append(results, map[string]any{
				"token":  token,
				"status": map[string]any{"id": 2, "description": "Processing"},
			})
			continue
		}
		results = append(results, f.wireResult(token, job))
	}
	f.mu.Unlock()

	if f.shuffleResults {
		rand.Shuffle(len(results), func(i, j int) {
			results[i], results[j] = results[j], results[i]
		})
	}

	json.NewEncoder(w).Encode(map[string]any{"submissions": results})
}

func (f *fakeJudge) handleSingle(w http.ResponseWriter, r *http.Request) {
	var sub struct {
		SourceCode string `json:"source_code"`
		Stdin      string `json:"stdin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	job := fakeJob{code: mustDecode(sub.SourceCode), stdin: mustDecode(sub.Stdin)}
	json.NewEncoder(w).Encode(f.wireResult("tok-single", job))
}

func (f *fakeJudge) wireResult(token string, job fakeJob) map[string]any {
	res := f.exec(job.code, job.stdin)
	wire := map[string]any{
		"token":  token,
		"stdout": EncodeB64(res.stdout),
		"time":   res.time,
		"memory": res.memory,
		"status": map[string]any{
			"id":          res.statusID,
			"description": res.statusDesc,
		},
	}
	// absent stderr mirrors the real judge omitting empty fields
	if res.stderr != "" {
		wire["stderr"] = EncodeB64(res.stderr)
	}
	return wire
}

func mustDecode(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}
