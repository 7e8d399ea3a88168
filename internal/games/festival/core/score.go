package core

// ScoreTable maps chain types to points.
type ScoreTable struct {
	Run3     int
	Run4     int
	Five     int
	Locks    int
	Single   int
	Enhanced int
}

// DefaultScoreTable returns the canonical points table.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Run3:     60,
		Run4:     120,
		Five:     200,
		Locks:    20,
		Single:   20,
		Enhanced: 100,
	}
}

// Score returns the points for one chain of type t.
func (s ScoreTable) Score(t ChainType) int {
	switch t {
	case ChainHorizontal3, ChainVertical3:
		return s.Run3
	case ChainHorizontal4, ChainVertical4:
		return s.Run4
	case ChainFive:
		return s.Five
	case ChainLocks:
		return s.Locks
	case ChainSingle:
		return s.Single
	case ChainEnhanced:
		return s.Enhanced
	default:
		return 0
	}
}
