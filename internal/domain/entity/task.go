package entity

type TaskStatus string

const (
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusDone      TaskStatus = "done"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusExhausted TaskStatus = "exhausted"
)

func (s TaskStatus) Terminal() bool {
	return s == TaskStatusDone || s == TaskStatusFailed || s == TaskStatusExhausted
}

type TaskResult struct {
	ID        string         `json:"id"`
	Goal      string         `json:"goal"`
	Status    TaskStatus     `json:"status"`
	Steps     int            `json:"steps"`
	Reasoning string         `json:"reasoning,omitempty"`
	History   []ActionRecord `json:"history"`
	FinalTask string         `json:"final_task"`
}
