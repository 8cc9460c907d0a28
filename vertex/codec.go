// Package vertex holds the packed attribute encodings used in vertex records
// and derives the GPU attribute layout of a record from its field list.
package vertex

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/glscene/glapi"
)

// Format is the binding description of one attribute field.
type Format struct {
	Components int32
	Type       glapi.Enum
	Normalized bool
	// Size is the exact number of bytes the field occupies in a record.
	Size int
}

// Codec is a fixed-size attribute value that knows how it is bound and how it
// is laid out in memory.
type Codec interface {
	Format() Format
	// AppendBytes appends the little-endian encoding of the value to b.
	AppendBytes(b []byte) []byte
}

func appendFloat(b []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

// F32x3 is three tightly packed 32-bit floats.
type F32x3 [3]float32

func (F32x3) Format() Format {
	return Format{Components: 3, Type: glapi.Float, Size: 12}
}

func (v F32x3) AppendBytes(b []byte) []byte {
	for _, f := range v {
		b = appendFloat(b, f)
	}
	return b
}

// Vec3 converts back to a vector.
func (v F32x3) Vec3() mgl32.Vec3 { return mgl32.Vec3(v) }

// NewF32x3 converts a 3-vector.
func NewF32x3(v mgl32.Vec3) F32x3 { return F32x3(v) }

// F32x4 is four tightly packed 32-bit floats.
type F32x4 [4]float32

func (F32x4) Format() Format {
	return Format{Components: 4, Type: glapi.Float, Size: 16}
}

func (v F32x4) AppendBytes(b []byte) []byte {
	for _, f := range v {
		b = appendFloat(b, f)
	}
	return b
}

func (v F32x4) Vec4() mgl32.Vec4 { return mgl32.Vec4(v) }

func (v F32x4) Vec3() mgl32.Vec3 { return mgl32.Vec3{v[0], v[1], v[2]} }

// NewF32x4 converts a 4-vector.
func NewF32x4(v mgl32.Vec4) F32x4 { return F32x4(v) }

// PointF32x4 converts a position, with w set to 1.
func PointF32x4(v mgl32.Vec3) F32x4 { return F32x4{v[0], v[1], v[2], 1} }

// F32 is a single 32-bit float, e.g. an angle.
type F32 float32

func (F32) Format() Format {
	return Format{Components: 1, Type: glapi.Float, Size: 4}
}

func (v F32) AppendBytes(b []byte) []byte { return appendFloat(b, float32(v)) }

// I8 is a signed byte passed to the shader as an integer-valued float.
type I8 int8

func (I8) Format() Format {
	return Format{Components: 1, Type: glapi.Byte, Size: 1}
}

func (v I8) AppendBytes(b []byte) []byte { return append(b, byte(v)) }

// I8Float is a signed byte normalized by the GPU to [-1, 1].
type I8Float int8

func (I8Float) Format() Format {
	return Format{Components: 1, Type: glapi.Byte, Normalized: true, Size: 1}
}

func (v I8Float) AppendBytes(b []byte) []byte { return append(b, byte(v)) }

// Mat3F32 is a 3x3 float matrix stored column after column.
type Mat3F32 [9]float32

func (Mat3F32) Format() Format {
	return Format{Components: 9, Type: glapi.Float, Size: 36}
}

func (m Mat3F32) AppendBytes(b []byte) []byte {
	for _, f := range m {
		b = appendFloat(b, f)
	}
	return b
}

// NewMat3F32 converts a matrix.
func NewMat3F32(m mgl32.Mat3) Mat3F32 { return Mat3F32(m) }

func (m Mat3F32) Mat3() mgl32.Mat3 { return mgl32.Mat3(m) }
