package entity

// Score tallies finished games from the human's point of view.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

// Record counts a finished game. Outcomes still in progress are ignored.
func (that *Score) Record(outcome Outcome, human Mark) {
	switch {
	case outcome.IsDraw():
		that.Draws++
	case outcome.WonBy(human):
		that.Wins++
	case outcome.IsWin():
		that.Losses++
	}
}

func (that *Score) Reset() {
	*that = Score{}
}
