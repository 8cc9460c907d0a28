package vertex

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
)

const (
	max10 = 1<<10 - 1
	max2  = 1<<2 - 1
)

// U2U10U10U10RevFloat is an RGBA color packed into 32 bits in the
// GL_UNSIGNED_INT_2_10_10_10_REV arrangement: red in bits 0-9, green in
// 10-19, blue in 20-29 and alpha in 30-31. The GPU normalizes it back to [0, 1].
type U2U10U10U10RevFloat uint32

func quantize(c float32, max uint32) uint32 {
	c = mgl32.Clamp(c, 0, 1)
	return uint32(math.Round(float64(c) * float64(max)))
}

// PackColor encodes r, g, b and a, each expected in [0, 1].
func PackColor(r, g, b, a float32) U2U10U10U10RevFloat {
	return U2U10U10U10RevFloat(quantize(r, max10) |
		quantize(g, max10)<<10 |
		quantize(b, max10)<<20 |
		quantize(a, max2)<<30)
}

// NewU2U10U10U10RevFloat encodes an RGBA vector.
func NewU2U10U10U10RevFloat(c mgl32.Vec4) U2U10U10U10RevFloat {
	return PackColor(c[0], c[1], c[2], c[3])
}

func (U2U10U10U10RevFloat) Format() Format {
	return Format{Components: 4, Type: glapi.UnsignedInt2_10_10_10Rev, Normalized: true, Size: 4}
}

func (c U2U10U10U10RevFloat) AppendBytes(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(c))
}

func (c U2U10U10U10RevFloat) R() float32 { return float32(uint32(c)&max10) / max10 }
func (c U2U10U10U10RevFloat) G() float32 { return float32(uint32(c)>>10&max10) / max10 }
func (c U2U10U10U10RevFloat) B() float32 { return float32(uint32(c)>>20&max10) / max10 }
func (c U2U10U10U10RevFloat) A() float32 { return float32(uint32(c)>>30&max2) / max2 }

// Vec4 decodes the color.
func (c U2U10U10U10RevFloat) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R(), c.G(), c.B(), c.A()}
}

// Scale multiplies the rgb channels component-wise by f, keeping alpha.
func (c U2U10U10U10RevFloat) Scale(f mgl32.Vec3) U2U10U10U10RevFloat {
	return PackColor(c.R()*f[0], c.G()*f[1], c.B()*f[2], c.A())
}
