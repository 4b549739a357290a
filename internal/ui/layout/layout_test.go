package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 18, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(4))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 24))
	assert.True(t, IsTooSmall(80, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Profil", HeaderInfo{Username: "Jozef", Completed: 4}, 80)

	assert.Contains(t, h, "Svet")
	assert.Contains(t, h, "Profil")
	assert.Contains(t, h, "Jozef")
	assert.Contains(t, h, "✔ 4")
}

func TestRenderHeader_NoUsername(t *testing.T) {
	h := RenderHeader("Domov", HeaderInfo{}, 80)
	assert.Contains(t, h, "✔ 0")
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{"enter", "Vybrať"}, {"esc", "Späť"}}, 80)
	assert.Contains(t, f, "enter")
	assert.Contains(t, f, "Späť")
}

func TestRenderFrame(t *testing.T) {
	out := RenderFrame("H", "body", "F", 20, 10)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "H", lines[0])
	assert.Equal(t, "F", lines[len(lines)-1])
	assert.Len(t, lines, 10)
}
