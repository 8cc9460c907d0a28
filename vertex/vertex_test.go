package vertex

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
	"github.com/richinsley/glscene/glapi/glfake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatsOf(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

func TestPackedColorRoundTrip(t *testing.T) {
	const steps = 40
	for i := 0; i <= steps; i++ {
		for j := 0; j <= steps; j += 4 {
			r := float32(i) / steps
			g := float32(steps-i) / steps
			b := float32(j) / steps
			a := float32(j) / steps
			c := PackColor(r, g, b, a)
			assert.InDelta(t, r, c.R(), 1.0/1023)
			assert.InDelta(t, g, c.G(), 1.0/1023)
			assert.InDelta(t, b, c.B(), 1.0/1023)
			assert.InDelta(t, a, c.A(), 1.0/3)
		}
	}
}

func TestPackedColorBits(t *testing.T) {
	assert.Equal(t, U2U10U10U10RevFloat(0xFFFFFFFF), PackColor(1, 1, 1, 1))
	assert.Equal(t, U2U10U10U10RevFloat(0x3FF), PackColor(1, 0, 0, 0))
	assert.Equal(t, U2U10U10U10RevFloat(0x3FF<<10), PackColor(0, 1, 0, 0))
	assert.Equal(t, U2U10U10U10RevFloat(0x3FF<<20), PackColor(0, 0, 1, 0))
	assert.Equal(t, U2U10U10U10RevFloat(3<<30), PackColor(0, 0, 0, 1))

	assert.Equal(t, []byte{0xFF, 0x03, 0, 0}, PackColor(1, 0, 0, 0).AppendBytes(nil))
}

func TestPackedColorScale(t *testing.T) {
	c := PackColor(0.8, 0.5, 1, 1).Scale(mgl32.Vec3{0.5, 1, 0})
	assert.InDelta(t, 0.4, c.R(), 1.0/1023)
	assert.InDelta(t, 0.5, c.G(), 1.0/1023)
	assert.InDelta(t, 0.0, c.B(), 1.0/1023)
	assert.Equal(t, float32(1), c.A())
}

func TestExactCodecRoundTrip(t *testing.T) {
	values := []float32{0, 1, -1, 0.1, -123.456, 3.4e38, -1e-38, float32(math.Pi)}
	for _, x := range values {
		for _, y := range values {
			v3 := F32x3{x, y, -x}
			assert.Equal(t, []float32{x, y, -x}, floatsOf(v3.AppendBytes(nil)))
			v4 := F32x4{x, y, x, y}
			assert.Equal(t, []float32{x, y, x, y}, floatsOf(v4.AppendBytes(nil)))
		}
	}
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, NewF32x3(mgl32.Vec3{1, 2, 3}).Vec3())
	assert.Equal(t, F32x4{1, 2, 3, 1}, PointF32x4(mgl32.Vec3{1, 2, 3}))
}

func TestCodecFormats(t *testing.T) {
	tests := []struct {
		name   string
		codec  Codec
		format Format
	}{
		{"f32x3", F32x3{}, Format{3, glapi.Float, false, 12}},
		{"f32x4", F32x4{}, Format{4, glapi.Float, false, 16}},
		{"color", U2U10U10U10RevFloat(0), Format{4, glapi.UnsignedInt2_10_10_10Rev, true, 4}},
		{"f32", F32(0), Format{1, glapi.Float, false, 4}},
		{"i8", I8(0), Format{1, glapi.Byte, false, 1}},
		{"i8float", I8Float(0), Format{1, glapi.Byte, true, 1}},
		{"mat3", Mat3F32{}, Format{9, glapi.Float, false, 36}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.format, tt.codec.Format())
			assert.Len(t, tt.codec.AppendBytes(nil), tt.format.Size)
		})
	}
}

func TestDeriveOffsets(t *testing.T) {
	l, err := Derive(F32x3{}.Format(), F32(0).Format(), F32x3{}.Format())
	require.NoError(t, err)
	assert.Equal(t, 28, l.Stride)
	require.Len(t, l.Bindings, 3)
	for i, want := range []int{0, 12, 16} {
		assert.Equal(t, want, l.Bindings[i].Offset)
		assert.Equal(t, uint32(i), l.Bindings[i].Location)
	}
}

func TestDeriveKeepsDeclarationOrder(t *testing.T) {
	l, err := Derive(I8(0).Format(), F32(0).Format(), U2U10U10U10RevFloat(0).Format(), I8Float(0).Format())
	require.NoError(t, err)
	assert.Equal(t, 10, l.Stride)
	assert.Equal(t, glapi.Float, l.Bindings[1].Type)
	assert.Equal(t, glapi.UnsignedInt2_10_10_10Rev, l.Bindings[2].Type)
	assert.Equal(t, []int{0, 1, 5, 9}, []int{
		l.Bindings[0].Offset, l.Bindings[1].Offset, l.Bindings[2].Offset, l.Bindings[3].Offset,
	})
}

type emptyRecord struct{}

func (emptyRecord) Fields() []Codec { return nil }

func TestDeriveRejectsEmptyRecord(t *testing.T) {
	_, err := Derive()
	assert.ErrorIs(t, err, ErrNoFields)

	l, err := LayoutOf(emptyRecord{})
	assert.ErrorIs(t, err, ErrNoFields)
	assert.Nil(t, l)
}

func TestLayoutOfLit(t *testing.T) {
	l, err := LayoutOf(Lit{})
	require.NoError(t, err)
	assert.Equal(t, 28, l.Stride)
	assert.Equal(t, 12, l.Bindings[1].Offset)
	assert.Equal(t, 16, l.Bindings[2].Offset)
	assert.True(t, l.Bindings[1].Normalized)

	l, err = LayoutOf(Colored{})
	require.NoError(t, err)
	assert.Equal(t, 20, l.Stride)
}

func TestLayoutApply(t *testing.T) {
	gl := glfake.New()
	vao := gl.GenVertexArray()
	vbo := gl.GenBuffer()
	gl.BindVertexArray(vao)
	gl.BindBuffer(glapi.ArrayBuffer, vbo)

	l, err := LayoutOf(Lit{})
	require.NoError(t, err)
	l.Apply(gl)

	require.Len(t, gl.Attribs, 3)
	for i, a := range gl.Attribs {
		assert.Equal(t, uint32(i), a.Index)
		assert.Equal(t, int32(28), a.Stride)
		assert.Equal(t, vao, a.VAO)
		assert.Equal(t, vbo, a.Buffer)
		assert.True(t, gl.AttribEnabled(vao, uint32(i)))
	}
	assert.Equal(t, 16, gl.Attribs[2].Offset)
}

func TestPack(t *testing.T) {
	records := []Lit{
		{Pos: F32x3{1, 2, 3}, Clr: PackColor(1, 0, 0, 1), Norm: F32x3{0, 0, 1}},
		{Pos: F32x3{4, 5, 6}, Clr: PackColor(0, 1, 0, 1), Norm: F32x3{0, 1, 0}},
	}
	b := Pack(records)
	require.Len(t, b, 56)
	assert.Equal(t, []float32{1, 2, 3}, floatsOf(b[0:12]))
	assert.Equal(t, uint32(PackColor(1, 0, 0, 1)), binary.LittleEndian.Uint32(b[12:16]))
	assert.Equal(t, []float32{0, 0, 1}, floatsOf(b[16:28]))
	assert.Equal(t, []float32{4, 5, 6}, floatsOf(b[28:40]))

	assert.Nil(t, Pack[Lit](nil))
}
