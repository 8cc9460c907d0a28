package scene

import "github.com/richinsley/glscene/vertex"

// Range is a run of vertices inside a Mesh.
type Range struct {
	Offset, Count int
}

// Mesh packs the geometry of several objects into one vertex batch so a
// single buffer can serve all of them.
type Mesh struct {
	Vertices []vertex.Lit
	Parts    []Range
}

// Add appends vs as a new part and returns where it landed.
func (m *Mesh) Add(vs []vertex.Lit) Range {
	r := Range{Offset: len(m.Vertices), Count: len(vs)}
	m.Vertices = append(m.Vertices, vs...)
	m.Parts = append(m.Parts, r)
	return r
}
