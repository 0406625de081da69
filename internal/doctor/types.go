package doctor

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "ok"
	// StatusWarn means formatting may not work but nothing is broken.
	StatusWarn Status = "warn"
	// StatusFail means formatting cannot work.
	StatusFail Status = "fail"
)

// Result is the outcome of one check.
type Result struct {
	Name   string // short check name, e.g. "program"
	Status Status
	Detail string // human-readable description
}

// Failed reports whether any result has StatusFail.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
