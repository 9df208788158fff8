package theme

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, Dark, ParseMode(" DARK "))
	assert.Equal(t, Light, ParseMode("light"))
	assert.Equal(t, Light, ParseMode("sepia"))
}

func TestHolder_Toggle(t *testing.T) {
	h := NewHolder(ForMode(Light))

	assert.Equal(t, Dark, h.Toggle().Mode)
	assert.Equal(t, Dark, h.Current().Mode)
	assert.Equal(t, darkPalette, h.Current().Palette)
	assert.Equal(t, Light, h.Toggle().Mode)
}

func TestHolder_ZeroValue(t *testing.T) {
	var h Holder
	assert.Equal(t, Light, h.Current().Mode)
	assert.Equal(t, Dark, h.Toggle().Mode)
}

func TestHolder_ConcurrentTogglesAreWholesale(t *testing.T) {
	h := NewHolder(ForMode(Light))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Toggle()
			cur := h.Current()
			// Mode and palette always belong to the same theme.
			assert.Equal(t, ForMode(cur.Mode), cur)
		}()
	}
	wg.Wait()

	assert.Equal(t, Light, h.Current().Mode, "an even number of toggles lands back on light")
}

func TestPaint(t *testing.T) {
	assert.Equal(t, "x", Plain().Paint(Plain().Palette.Danger, "x"))
	assert.Equal(t, "\033[31mx"+Reset, ForMode(Light).Paint(lightPalette.Danger, "x"))
}
