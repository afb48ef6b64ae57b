package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey_SupportedNames(t *testing.T) {
	for _, name := range []string{
		"a", "z", "0", "9", "return", "tab", "space", "delete", "escape",
		"up_arrow", "down_arrow", "left_arrow", "right_arrow",
		"command", "shift", "control", "option",
		"right_shift", "right_option", "right_control",
	} {
		k, err := ParseKey(name)
		require.NoError(t, err, "key %q", name)
		assert.Equal(t, Key(name), k)
	}
}

func TestParseKey_CaseInsensitive(t *testing.T) {
	k, err := ParseKey("RETURN")
	require.NoError(t, err)
	assert.Equal(t, KeyReturn, k)

	k, err = ParseKey("A")
	require.NoError(t, err)
	assert.Equal(t, Key("a"), k)
}

func TestParseKey_Unsupported(t *testing.T) {
	for _, name := range []string{"f1", "enter", "backspace", "home", "", "ab"} {
		_, err := ParseKey(name)
		assert.ErrorIs(t, err, ErrUnsupportedKey, "key %q", name)
	}
}

func TestParseModifiers(t *testing.T) {
	mods, err := ParseModifiers([]string{"Command", "shift", "right_option"})
	require.NoError(t, err)
	assert.Equal(t, []Modifier{ModCommand, ModShift, ModRightOption}, mods)
}

func TestParseModifiers_Unsupported(t *testing.T) {
	_, err := ParseModifiers([]string{"command", "hyper"})
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestParseChord(t *testing.T) {
	chord, err := ParseChord("return", []string{"command"})
	require.NoError(t, err)
	assert.Equal(t, KeyReturn, chord.Key)
	assert.Equal(t, []Modifier{ModCommand}, chord.Modifiers)
}

func TestParseChord_RejectsBeforeDispatch(t *testing.T) {
	_, err := ParseChord("pageup", nil)
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestChordForChar_Lowercase(t *testing.T) {
	chord, err := ChordForChar('q')
	require.NoError(t, err)
	assert.Equal(t, Key("q"), chord.Key)
	assert.Empty(t, chord.Modifiers)
}

func TestChordForChar_UppercaseImpliesShift(t *testing.T) {
	chord, err := ChordForChar('Q')
	require.NoError(t, err)
	assert.Equal(t, Key("q"), chord.Key)
	assert.Equal(t, []Modifier{ModShift}, chord.Modifiers)
}

func TestChordForChar_Whitespace(t *testing.T) {
	cases := map[rune]Key{' ': KeySpace, '\n': KeyReturn, '\t': KeyTab}
	for r, want := range cases {
		chord, err := ChordForChar(r)
		require.NoError(t, err)
		assert.Equal(t, want, chord.Key)
	}
}

func TestChordForChar_Unsupported(t *testing.T) {
	for _, r := range []rune{'!', '@', 'é', '€'} {
		_, err := ChordForChar(r)
		assert.ErrorIs(t, err, ErrUnsupportedKey, "char %q", r)
	}
}
