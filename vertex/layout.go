package vertex

import (
	"errors"
	"fmt"

	"github.com/richinsley/glscene/glapi"
)

// ErrNoFields is returned when a layout is derived from a record without fields.
var ErrNoFields = errors.New("vertex record has no fields")

// Record is a vertex record: an ordered, fixed set of codec fields. Fields
// must return the same codec types in the same order for every value of a
// record type.
type Record interface {
	Fields() []Codec
}

// Binding registers one field at an attribute location.
type Binding struct {
	Location uint32
	Format
	Offset int
}

// Layout is the attribute layout of a record type.
type Layout struct {
	Stride   int
	Bindings []Binding
}

// Derive lays the formats out back to back in the order given. Locations
// start at 0 and follow declaration order.
func Derive(formats ...Format) (*Layout, error) {
	if len(formats) == 0 {
		return nil, ErrNoFields
	}
	l := &Layout{Bindings: make([]Binding, 0, len(formats))}
	offset := 0
	for i, f := range formats {
		if f.Size <= 0 || f.Components <= 0 {
			return nil, fmt.Errorf("field %d has invalid format %+v", i, f)
		}
		l.Bindings = append(l.Bindings, Binding{Location: uint32(i), Format: f, Offset: offset})
		offset += f.Size
	}
	l.Stride = offset
	return l, nil
}

// LayoutOf derives the layout of r's record type.
func LayoutOf(r Record) (*Layout, error) {
	fields := r.Fields()
	formats := make([]Format, len(fields))
	for i, f := range fields {
		formats[i] = f.Format()
	}
	l, err := Derive(formats...)
	if err != nil {
		return nil, fmt.Errorf("deriving layout of %T: %w", r, err)
	}
	return l, nil
}

// Apply enables and describes every binding against the currently bound
// vertex array and array buffer.
func (l *Layout) Apply(gl glapi.GL) {
	for _, b := range l.Bindings {
		gl.EnableVertexAttribArray(b.Location)
		gl.VertexAttribPointer(b.Location, b.Components, b.Type, b.Normalized, int32(l.Stride), b.Offset)
	}
}

// Pack serializes records into one contiguous little-endian byte slice with
// no padding between fields or records.
func Pack[R Record](records []R) []byte {
	if len(records) == 0 {
		return nil
	}
	var stride int
	for _, f := range records[0].Fields() {
		stride += f.Format().Size
	}
	b := make([]byte, 0, stride*len(records))
	for _, r := range records {
		for _, f := range r.Fields() {
			b = f.AppendBytes(b)
		}
	}
	return b
}
