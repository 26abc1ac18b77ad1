package render

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// WriteSTL writes the triangles to w in binary STL format: an 80-byte
// header, a uint32 triangle count and one 50-byte record per triangle.
func WriteSTL(w io.Writer, model []Triangle) error {
	if len(model) == 0 {
		return errors.New("render: empty triangle slice")
	}
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var rec stlTriangle
	for _, t := range model {
		n := t.Normal()
		rec.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		for i := 0; i < 3; i++ {
			rec.Vertex[i] = [3]float32{
				float32(t.V[i].X),
				float32(t.V[i].Y),
				float32(t.V[i].Z),
			}
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL writes the triangles to a new file at path.
func CreateSTL(path string, model []Triangle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSTL(f, model)
}

// stlHeader is the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle is one 50-byte binary STL triangle record.
type stlTriangle struct {
	Normal [3]float32
	Vertex [3][3]float32
	_      uint16 // attribute byte count
}
