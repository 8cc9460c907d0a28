package vertex

// Colored is the record of the unlit triangle pipeline.
type Colored struct {
	Pos F32x4
	Clr U2U10U10U10RevFloat
}

func (v Colored) Fields() []Codec { return []Codec{v.Pos, v.Clr} }

// Lit is the record of the lit and solid-color object pipelines.
type Lit struct {
	Pos  F32x3
	Clr  U2U10U10U10RevFloat
	Norm F32x3
}

func (v Lit) Fields() []Codec { return []Codec{v.Pos, v.Clr, v.Norm} }
