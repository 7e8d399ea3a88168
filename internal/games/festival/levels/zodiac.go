package levels

import "strings"

// Zodiac names a chapter. Chapters follow the order of the zodiac cycle.
type Zodiac int

const (
	Rat Zodiac = iota
	Ox
	Tiger
	Rabbit
	Dragon
	Snake
	Horse
	Goat
	Monkey
	Rooster
	Dog
	Pig
)

var zodiacNames = [...]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

func (z Zodiac) String() string {
	if z < Rat || z > Pig {
		return "Unknown"
	}
	return zodiacNames[z]
}

// ParseZodiac resolves a chapter name, ignoring case.
func ParseZodiac(name string) (Zodiac, bool) {
	for i, n := range zodiacNames {
		if strings.EqualFold(n, name) {
			return Zodiac(i), true
		}
	}
	return 0, false
}

// Zodiacs returns all chapters in cycle order.
func Zodiacs() []Zodiac {
	out := make([]Zodiac, len(zodiacNames))
	for i := range out {
		out[i] = Zodiac(i)
	}
	return out
}
