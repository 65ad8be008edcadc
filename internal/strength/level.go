package strength

import "fmt"

// Level is the qualitative strength of a password. Levels are ordered.
type Level int

const (
	Weak Level = iota
	Medium
	Strong
)

var levelNames = [...]string{"Weak", "Medium", "Strong"}

func (l Level) String() string {
	if l < Weak || l > Strong {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText encodes the level as its name, so JSON carries "Weak", "Medium" or "Strong".
func (l Level) MarshalText() ([]byte, error) {
	if l < Weak || l > Strong {
		return nil, fmt.Errorf("strength: invalid level %d", int(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	for i, name := range levelNames {
		if string(text) == name {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("strength: unknown level %q", text)
}
