// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// Tri is a triangle.
// Brightness is a shading value owned by the rasterizer.
// The padding makes a Tri exactly 64 bytes.
type Tri struct {
	V          [3]V4
	Brightness float32
	_          [3]float32
}

// Mul sets t to contain the vertices of u transformed by m.
// Brightness is copied from u.
func (t *Tri) Mul(m *M4, u *Tri) {
	for i := range t.V {
		t.V[i].Mul(m, &u.V[i])
	}
	t.Brightness = u.Brightness
}
