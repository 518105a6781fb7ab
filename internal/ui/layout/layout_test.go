package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab…", Truncate("abcdef", 3))
	assert.Equal(t, "…", Truncate("abcdef", 1))
	assert.Equal(t, "", Truncate("abc", 0))

	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcd…", Pad("abcdefgh", 5))
	assert.Equal(t, "día  ", Pad("día", 5))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "Go    BASIC", Row([]string{"Go", "BASIC"}, []int{4, 8}))
	assert.Equal(t, "Negot…  x", Row([]string{"Negotiation", "x"}, []int{6, 3}))
	assert.Equal(t, "a  extra", Row([]string{"a", "extra"}, []int{1}))
}

func TestRenderHeaderDropsOldCrumbs(t *testing.T) {
	wide := RenderHeader([]string{"Home", "Development Paths", "Leadership"}, "ada · manager", 120)
	assert.Contains(t, wide, "Home")
	assert.Contains(t, wide, "Leadership")
	assert.Contains(t, wide, "ada · manager")

	narrow := RenderHeader([]string{"Home", "Development Paths", "Leadership"}, "ada · manager", 50)
	assert.NotContains(t, narrow, "Home")
	assert.Contains(t, narrow, "Leadership")
}

func TestContentHeight(t *testing.T) {
	header := strings.Repeat("x\n", 2) + "x"
	assert.Equal(t, 14, ContentHeight(header, header, 20))
	assert.Equal(t, 0, ContentHeight(header, header, 4))
}
