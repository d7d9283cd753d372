package entity

import "time"

// ActionRecord is one executed tool invocation.
type ActionRecord struct {
	Tool       string    `json:"ferramenta"`
	Parameters []string  `json:"parametros"`
	Result     string    `json:"resultado"`
	Timestamp  time.Time `json:"timestamp"`
}

// History is the append-only action log of a single task run.
type History struct {
	records []ActionRecord
}

func (h *History) Append(rec ActionRecord) {
	params := make([]string, len(rec.Parameters))
	copy(params, rec.Parameters)
	rec.Parameters = params
	h.records = append(h.records, rec)
}

func (h *History) Len() int {
	return len(h.records)
}

// Records returns a copy; callers cannot mutate the log.
func (h *History) Records() []ActionRecord {
	out := make([]ActionRecord, len(h.records))
	copy(out, h.records)
	return out
}
