package simulation

import "strings"

// DebugRender renders a plate's height map as an ASCII grid for test
// failure output and manual inspection, the same convenience the
// teacher's prototype package offers via Virtual2DWorld.Render(). It is
// additive tooling only, built on Plate's public accessors.
func DebugRender(p *Plate) string {
	heights, _ := p.GetMap()
	width, height := p.Width(), p.Height()

	var b strings.Builder
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			b.WriteByte(renderGlyph(heights[y*width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderGlyph(z float32) byte {
	switch {
	case z <= 0:
		return '.'
	case z < 0.3:
		return '~'
	case z < 0.6:
		return '-'
	case z < 1.0:
		return '^'
	default:
		return '#'
	}
}
