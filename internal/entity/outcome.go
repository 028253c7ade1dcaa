package entity

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWin        Status = "win"
	StatusDraw       Status = "draw"
)

// Outcome is the result of evaluating a board. Winner and Line are set only for StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Line   [3]int `json:"line"`
}

func (that Outcome) InProgress() bool {
	return that.Status == StatusInProgress
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// WonBy reports whether mark completed a line.
func (that Outcome) WonBy(mark Mark) bool {
	return that.Status == StatusWin && that.Winner == mark
}
