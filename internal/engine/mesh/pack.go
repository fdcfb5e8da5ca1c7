package mesh

import "encoding/binary"

// IndexSize returns the narrowest index width in bytes that can address
// every vertex: 1 for up to 256 vertices, 2 for up to 65536, else 4.
func (m *Mesh) IndexSize() int {
	return IndexSizeFor(len(m.Vertices))
}

// IndexSizeFor returns the index width for a vertex count.
func IndexSizeFor(vertexCount int) int {
	switch {
	case vertexCount <= 1<<8:
		return 1
	case vertexCount <= 1<<16:
		return 2
	default:
		return 4
	}
}

// VertexBuffer packs every vertex with the mesh layout.
// The result is len(Vertices) * Layout.Stride() bytes long.
func (m *Mesh) VertexBuffer() []byte {
	buf := make([]byte, 0, len(m.Vertices)*m.Layout.Stride())
	for i := range m.Vertices {
		buf = m.Layout.AppendVertex(buf, m.Vertices[i])
	}
	return buf
}

// IndexBuffer encodes Indices little-endian at IndexSize bytes each.
func (m *Mesh) IndexBuffer() []byte {
	return AppendIndices(nil, m.Indices, m.IndexSize())
}

// AppendIndices encodes indices at the given width (1, 2 or 4 bytes).
// Values are truncated to the width; callers pick the width with IndexSizeFor.
func AppendIndices(dst []byte, indices []uint32, size int) []byte {
	switch size {
	case 1:
		for _, idx := range indices {
			dst = append(dst, byte(idx))
		}
	case 2:
		for _, idx := range indices {
			dst = binary.LittleEndian.AppendUint16(dst, uint16(idx))
		}
	default:
		for _, idx := range indices {
			dst = binary.LittleEndian.AppendUint32(dst, idx)
		}
	}
	return dst
}
