package smartedge

import "fmt"

// Size is a 2D size, such as the extent of a diagram node.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size (width, height).
func Sz(width, height float64) Size {
	return Size{Width: width, Height: height}
}

func (sz Size) String() string {
	return fmt.Sprintf("(%gW×%gH)", sz.Width, sz.Height)
}

// AsVec2 returns the size as the vector ⟨width, height⟩.
func (sz Size) AsVec2() Vec2 {
	return Vec2{X: sz.Width, Y: sz.Height}
}
