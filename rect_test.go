package smartedge

import (
	"testing"
)

func TestRectFromOrigin(t *testing.T) {
	r := NewRectFromOrigin(Pt(10, 20), Sz(-4, 6))
	diff(t, Rect{6, 20, 10, 26}, r)
	diff(t, Pt(8, 23), r.Center())
}

func TestRectUnionInflate(t *testing.T) {
	r := Rect{0, 0, 10, 10}.Union(Rect{5, -5, 20, 5}).UnionPoint(Pt(-1, 30))
	diff(t, Rect{-1, -5, 20, 30}, r)
	diff(t, Rect{-3, -8, 22, 33}, r.Inflate(2, 3))
	diff(t, 21.0, r.Width())
	diff(t, 35.0, r.Height())
}

func TestSizeString(t *testing.T) {
	diff(t, "(120W×80H)", Sz(120, 80).String())
}
