package judge0

// one (code, language, stdin) job inside a batch request
type submission struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submissionBatch struct {
	Submissions []submission `json:"submissions"`
}

// tokenWire is one job descriptor in a batch-submit response
type tokenWire struct {
	Token string `json:"token"`
}

// wire shape of a judge job result. Textual fields stay base64-encoded
// pointers here; absent fields mean "no output", not an error.
type jobResultWire struct {
	Token         string   `json:"token"`
	Stdout        *string  `json:"stdout"`
	Stderr        *string  `json:"stderr"`
	CompileOutput *string  `json:"compile_output"`
	Message       *string  `json:"message"`
	Time          *string  `json:"time"`
	Memory        *float64 `json:"memory"`
	StatusID      int      `json:"status_id"`
	Status        *struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
}

type jobResultBatchWire struct {
	Submissions []jobResultWire `json:"submissions"`
}

// JobResult is the decoded terminal-or-pending state of one judge job.
type JobResult struct {
	Token             string
	Stdout            string
	Stderr            string
	CompileOutput     string
	Message           string
	StatusID          int
	StatusDescription string
	Time              string  // cpu time in seconds, decimal string
	Memory            float64 // memory usage in KB
}

// Terminal reports whether execution has finished, successfully or not.
// The exact status enumeration is owned by the judge; ids 1 and 2 are
// its queued and processing states, everything above is final.
func (r JobResult) Terminal() bool {
	return r.StatusID > 2
}

func (w jobResultWire) decode() (JobResult, error) {
	res := JobResult{
		Token:    w.Token,
		StatusID: w.StatusID,
		Memory:   0,
	}
	if w.Status != nil {
		res.StatusID = w.Status.ID
		res.StatusDescription = w.Status.Description
	}
	if w.Time != nil {
		res.Time = *w.Time
	}
	if w.Memory != nil {
		res.Memory = *w.Memory
	}

	var err error
	if res.Stdout, err = DecodeB64(w.Stdout); err != nil {
		return JobResult{}, err
	}
	if res.Stderr, err = DecodeB64(w.Stderr); err != nil {
		return JobResult{}, err
	}
	if res.CompileOutput, err = DecodeB64(w.CompileOutput); err != nil {
		return JobResult{}, err
	}
	if res.Message, err = DecodeB64(w.Message); err != nil {
		return JobResult{}, err
	}
	return res, nil
}
