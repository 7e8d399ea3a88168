package core

// Result is how a level ended.
type Result uint8

const (
	ResultWin Result = iota
	ResultLose
)

func (r Result) String() string {
	if r == ResultWin {
		return "win"
	}
	return "lose"
}

// Outcome summarises a finished level.
type Outcome struct {
	LevelID   string
	Result    Result
	Score     int
	Stars     int
	MovesLeft int
}

// Hooks receives lifecycle notifications. Services such as music or
// interstitials attach here; the engine never depends on them.
type Hooks interface {
	GameBegan(levelID, music string)
	GameOver(o Outcome)
}

// NopHooks ignores every notification.
type NopHooks struct{}

func (NopHooks) GameBegan(string, string) {}
func (NopHooks) GameOver(Outcome)         {}
