package hal

import (
	"fmt"
	"strings"
)

var buttonNames = [...]struct {
	name   string
	button Button
}{
	{"a", ButtonA},
	{"b", ButtonB},
	{"select", ButtonSelect},
	{"start", ButtonStart},
	{"right", ButtonRight},
	{"left", ButtonLeft},
	{"up", ButtonUp},
	{"down", ButtonDown},
	{"r", ButtonR},
	{"l", ButtonL},
}

func (b Button) String() string {
	for _, n := range buttonNames {
		if n.button == b {
			return n.name
		}
	}
	return fmt.Sprintf("button(%#x)", uint16(b))
}

func (m ButtonMask) String() string {
	var names []string
	for _, n := range buttonNames {
		if m.Has(n.button) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseButtons parses a comma-separated list of button names such as
// "up,right". Names are case-insensitive; an empty string is no buttons.
func ParseButtons(s string) (ButtonMask, error) {
	var m ButtonMask
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		found := false
		for _, n := range buttonNames {
			if n.name == f {
				m |= ButtonMask(n.button)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown button %q", f)
		}
	}
	return m, nil
}
