package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		patternType PatternType
		opts        *Options
		wantType    PatternType
		wantErr     bool
	}{
		{name: "valid glob", pattern: "z3*", patternType: Glob, wantType: Glob},
		{name: "valid regex", pattern: "^e36-[78]", patternType: Regex, wantType: Regex},
		{name: "invalid regex", pattern: "(unclosed", patternType: Regex, wantErr: true},
		{name: "invalid glob", pattern: "[unclosed", patternType: Glob, wantErr: true},
		{name: "auto detects glob", pattern: "e46*", patternType: Auto, wantType: Glob},
		{name: "auto detects regex", pattern: "(bus|truck)", patternType: Auto, wantType: Regex},
		{name: "case insensitive", pattern: "Z3*", patternType: Glob, opts: &Options{CaseInsensitive: true}, wantType: Glob},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.patternType, tt.pattern, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, m.Type())
			assert.Equal(t, tt.pattern, m.Pattern())
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		patternType PatternType
		opts        *Options
		input       string
		want        bool
	}{
		{"glob prefix", "z3*", Glob, nil, "z3-coupe", true},
		{"glob exact", "z3", Glob, nil, "z3", true},
		{"glob miss", "z3*", Glob, nil, "z4-roadster", false},
		{"glob single char", "e36-?", Glob, nil, "e36-8", true},
		{"glob class", "e36-[78]*", Glob, nil, "e36-7-roadster", true},
		{"glob case sensitive", "Z3*", Glob, nil, "z3-coupe", false},
		{"glob case insensitive", "Z3*", Glob, &Options{CaseInsensitive: true}, "z3-coupe", true},
		{"regex unanchored", "truck", Regex, nil, "volvo-trucks", true},
		{"regex anchored", "truck", Regex, &Options{Anchored: true}, "volvo-trucks", false},
		{"regex case insensitive", "(bus|coach)", Regex, &Options{CaseInsensitive: true}, "Setra-Coach", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustNew(tt.patternType, tt.pattern, tt.opts)
			assert.Equal(t, tt.want, m.Match(tt.input))
		})
	}
}

func TestMatcher_MatchAll(t *testing.T) {
	m := MustNew(Glob, "e9*")
	got := m.MatchAll("e90", "e46", "e92-coupe", "f30")
	assert.Equal(t, []string{"e90", "e92-coupe"}, got)
	assert.Empty(t, m.MatchAll())
}

func TestMultiMatcher(t *testing.T) {
	mm, err := NewMultiMatcher([]string{"z3*", "e36-7*", "e36-8*"}, Glob)
	require.NoError(t, err)

	assert.Equal(t, 3, mm.Len())
	assert.Equal(t, []string{"z3*", "e36-7*", "e36-8*"}, mm.Patterns())
	assert.True(t, mm.Match("z3-coupe"))
	assert.True(t, mm.Match("e36-8"))
	assert.False(t, mm.Match("e36"))
	assert.True(t, mm.MatchAny("x5", "e36-7-roadster"))
	assert.False(t, mm.MatchAny("x5", "m3"))

	_, err = NewMultiMatcher([]string{"ok*", "(bad"}, Regex)
	assert.Error(t, err)

	assert.Panics(t, func() {
		MustNewMultiMatcher([]string{"[bad"}, Glob)
	})
}

func TestPatternTypeString(t *testing.T) {
	assert.Equal(t, "glob", Glob.String())
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "unknown", PatternType(99).String())
}
