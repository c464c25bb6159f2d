package harness

// TraceEntry records one executed step.
type TraceEntry struct {
	Seq    int64            `json:"seq"`
	Op     string           `json:"op"`
	Args   map[string]int64 `json:"args,omitempty"`
	Result any              `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`

	// ID is the content-addressed hash of the entry and the run token.
	ID string `json:"id"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// Trace holds one entry per step, in order.
	Trace []TraceEntry `json:"trace"`

	// Errors describes every failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEntry{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// canonical returns the entry in a form accepted by canon.Marshal.
func (e TraceEntry) canonical() map[string]any {
	m := map[string]any{
		"seq": e.Seq,
		"op":  e.Op,
	}
	if len(e.Args) > 0 {
		args := make(map[string]any, len(e.Args))
		for k, v := range e.Args {
			args[k] = v
		}
		m["args"] = args
	}
	if e.Error != "" {
		m["error"] = e.Error
	} else if e.Result != nil {
		m["result"] = e.Result
	}
	if e.ID != "" {
		m["id"] = e.ID
	}
	return m
}
