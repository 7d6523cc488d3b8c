package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BMW", "bmw"},
		{"Mercedes-Benz", "mercedes-benz"},
		{"Citroën", "citroen"},
		{"Škoda", "skoda"},
		{"  Alfa   Romeo  ", "alfa-romeo"},
		{"Z3 Coupe (E36/8)", "z3-coupe-e36-8"},
		{"--GT86--", "gt86"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestStripBrandPrefix(t *testing.T) {
	assert.Equal(t, "Z3 Coupe", stripBrandPrefix("BMW Z3 Coupe", "BMW"))
	assert.Equal(t, "Z3 Coupe", stripBrandPrefix("bmw Z3 Coupe", "BMW"))
	assert.Equal(t, "Z3", stripBrandPrefix("Z3", "BMW"))
	assert.Equal(t, "", stripBrandPrefix("BMW", "BMW"))
	assert.Equal(t, "Golf", stripBrandPrefix("Golf", ""))
}

func TestTokenSet(t *testing.T) {
	a := newTokenSet("bmw-z3-coupe")
	b := newTokenSet("z3")

	assert.ElementsMatch(t, []string{"z3"}, a.shared(b))
	assert.True(t, b.subsetOf(a))
	assert.False(t, a.subsetOf(b))
	assert.False(t, newTokenSet("").subsetOf(a))
	assert.Len(t, a.without(newTokenSet("bmw")), 2)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, isNumeric("911"))
	assert.False(t, isNumeric("z3"))
	assert.False(t, isNumeric(""))
	assert.True(t, anyNumeric([]string{"golf", "2"}))
	assert.False(t, anyNumeric([]string{"golf", "gti"}))
}
