package entity

import (
	"bytes"
	"encoding/json"
)

const (
	// DecisionDone is returned by the model when the task is complete.
	DecisionDone = "CONCLUIDO"
	// decisionDoneAlt is the English spelling some models emit.
	decisionDoneAlt = "DONE"
	// DecisionError marks a planning failure.
	DecisionError = "ERRO"
	// decisionErrorAlt is the English spelling some models emit.
	decisionErrorAlt = "ERROR"
)

// Decision is the wire object the model answers with on every step.
type Decision struct {
	Reasoning  string `json:"raciocinio"`
	Tool       string `json:"ferramenta"`
	Parameters Params `json:"parametros"`
}

func (d Decision) IsDone() bool {
	return d.Tool == DecisionDone || d.Tool == decisionDoneAlt
}

func (d Decision) IsError() bool {
	return d.Tool == DecisionError || d.Tool == decisionErrorAlt
}

// ErrorDecision builds the synthetic decision used when planning fails.
func ErrorDecision(reasoning string) Decision {
	return Decision{
		Reasoning:  reasoning,
		Tool:       DecisionError,
		Parameters: Params{},
	}
}

// Params is the ordered positional argument list of a decision.
//
// Models do not always follow the format: a bare scalar becomes the sole
// argument and non-string elements keep their JSON text. Empty values
// ("", {}, false, 0) mean no arguments.
type Params []string

func (p *Params) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = Params{}
		return nil
	}

	if trimmed[0] != '[' {
		if isEmptyValue(trimmed) {
			*p = Params{}
			return nil
		}
		*p = Params{rawToArg(trimmed)}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}

	out := make(Params, 0, len(items))
	for _, item := range items {
		out = append(out, rawToArg(item))
	}
	*p = out
	return nil
}

func rawToArg(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(raw))
}

func isEmptyValue(raw []byte) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case map[string]any:
		return len(val) == 0
	}
	return false
}
