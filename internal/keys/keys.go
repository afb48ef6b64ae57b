// Package keys defines the closed set of logical key and modifier names the
// synthesizer accepts. Names are validated here, at the boundary, so platform
// dispatch code never sees an unresolvable key.
package keys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedKey is returned for any key, modifier, or character outside
// the supported table.
var ErrUnsupportedKey = errors.New("unsupported key")

// Key is a logical key name from the supported-key table.
type Key string

// Modifier is a logical modifier name.
type Modifier string

const (
	ModCommand      Modifier = "command"
	ModShift        Modifier = "shift"
	ModControl      Modifier = "control"
	ModOption       Modifier = "option"
	ModRightShift   Modifier = "right_shift"
	ModRightOption  Modifier = "right_option"
	ModRightControl Modifier = "right_control"
)

// Named special keys. Letters a-z and digits 0-9 are also valid Key values.
const (
	KeyReturn     Key = "return"
	KeyTab        Key = "tab"
	KeySpace      Key = "space"
	KeyDelete     Key = "delete"
	KeyEscape     Key = "escape"
	KeyUpArrow    Key = "up_arrow"
	KeyDownArrow  Key = "down_arrow"
	KeyLeftArrow  Key = "left_arrow"
	KeyRightArrow Key = "right_arrow"
)

// supported is the exhaustive set of valid key names. The table is fixed:
// letters, digits, named special keys, arrows, and modifier keys (which may
// be pressed on their own).
var supported = buildSupported()

func buildSupported() map[Key]struct{} {
	set := make(map[Key]struct{})
	for c := 'a'; c <= 'z'; c++ {
		set[Key(c)] = struct{}{}
	}
	for c := '0'; c <= '9'; c++ {
		set[Key(c)] = struct{}{}
	}
	for _, k := range []Key{
		KeyReturn, KeyTab, KeySpace, KeyDelete, KeyEscape,
		KeyUpArrow, KeyDownArrow, KeyLeftArrow, KeyRightArrow,
		Key(ModCommand), Key(ModShift), Key(ModControl), Key(ModOption),
		Key(ModRightShift), Key(ModRightOption), Key(ModRightControl),
	} {
		set[k] = struct{}{}
	}
	return set
}

var modifiers = map[Modifier]struct{}{
	ModCommand: {}, ModShift: {}, ModControl: {}, ModOption: {},
	ModRightShift: {}, ModRightOption: {}, ModRightControl: {},
}

// Chord is one logical key with zero or more held modifiers, dispatched as a
// single down/up event pair.
type Chord struct {
	Key       Key
	Modifiers []Modifier
}

// ParseKey validates a key name. Names are case-insensitive.
func ParseKey(name string) (Key, error) {
	k := Key(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := supported[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKey, name)
	}
	return k, nil
}

// ParseModifiers validates a list of modifier names.
func ParseModifiers(names []string) ([]Modifier, error) {
	var mods []Modifier
	for _, name := range names {
		m := Modifier(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := modifiers[m]; !ok {
			return nil, fmt.Errorf("%w: modifier %q", ErrUnsupportedKey, name)
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// ParseChord validates a key plus modifiers in one step.
func ParseChord(key string, modifierNames []string) (Chord, error) {
	k, err := ParseKey(key)
	if err != nil {
		return Chord{}, err
	}
	mods, err := ParseModifiers(modifierNames)
	if err != nil {
		return Chord{}, err
	}
	return Chord{Key: k, Modifiers: mods}, nil
}

// ChordForChar resolves a single character to the chord that types it.
// Uppercase letters imply shift; space, newline, and tab map to their named
// keys. Characters outside the supported set are rejected.
func ChordForChar(r rune) (Chord, error) {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return Chord{Key: Key(r)}, nil
	case r >= 'A' && r <= 'Z':
		return Chord{Key: Key(r + ('a' - 'A')), Modifiers: []Modifier{ModShift}}, nil
	case r == ' ':
		return Chord{Key: KeySpace}, nil
	case r == '\n':
		return Chord{Key: KeyReturn}, nil
	case r == '\t':
		return Chord{Key: KeyTab}, nil
	default:
		return Chord{}, fmt.Errorf("%w: character %q", ErrUnsupportedKey, r)
	}
}
