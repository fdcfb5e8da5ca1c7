package mesh

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/x448/float16"
)

// Codec encodes and decodes single vertex attributes.
// Put* methods write exactly Size(attr) bytes at the start of dst.
type Codec interface {
	Name() string
	Size(attr Attribute) int
	Format(attr Attribute) Format

	PutPosition(dst []byte, p mgl64.Vec3)
	PutNormal(dst []byte, n mgl64.Vec3)
	PutTangent(dst []byte, t mgl64.Vec3, handedness float64)
	PutTexCoord(dst []byte, uv mgl64.Vec2)

	Position(src []byte) mgl64.Vec3
	Normal(src []byte) mgl64.Vec3
	Tangent(src []byte) (mgl64.Vec3, float64)
	TexCoord(src []byte) mgl64.Vec2
}

// CodecByName returns the codec registered under name ("packed" or "float32").
func CodecByName(name string) (Codec, bool) {
	switch name {
	case "", PackedCodec{}.Name():
		return PackedCodec{}, true
	case Float32Codec{}.Name():
		return Float32Codec{}, true
	}
	return nil, false
}

// PackedCodec is the compact GPU layout: float32 positions, 2_10_10_10
// directions and half-float texture coordinates.
type PackedCodec struct{}

func (PackedCodec) Name() string { return "packed" }

func (PackedCodec) Size(attr Attribute) int {
	switch attr {
	case AttrPosition:
		return 3 * 4
	case AttrNormal, AttrTangent:
		return 4
	case AttrTexCoord:
		return 2 * 2
	}
	return 0
}

func (PackedCodec) Format(attr Attribute) Format {
	switch attr {
	case AttrPosition:
		return Format{Components: 3, Type: ComponentFloat32}
	case AttrNormal, AttrTangent:
		return Format{Components: 4, Type: ComponentInt2_10_10_10, Normalized: true}
	case AttrTexCoord:
		return Format{Components: 2, Type: ComponentFloat16}
	}
	return Format{}
}

func (PackedCodec) PutPosition(dst []byte, p mgl64.Vec3) { putFloat32s(dst, p[:]) }

func (PackedCodec) PutNormal(dst []byte, n mgl64.Vec3) {
	binary.LittleEndian.PutUint32(dst, PackInt2_10_10_10(n, 0))
}

func (PackedCodec) PutTangent(dst []byte, t mgl64.Vec3, handedness float64) {
	binary.LittleEndian.PutUint32(dst, PackInt2_10_10_10(t, handedness))
}

func (PackedCodec) PutTexCoord(dst []byte, uv mgl64.Vec2) {
	binary.LittleEndian.PutUint16(dst[0:], PackHalf(uv[0]))
	binary.LittleEndian.PutUint16(dst[2:], PackHalf(uv[1]))
}

func (PackedCodec) Position(src []byte) mgl64.Vec3 {
	var p mgl64.Vec3
	getFloat32s(src, p[:])
	return p
}

func (PackedCodec) Normal(src []byte) mgl64.Vec3 {
	n, _ := UnpackInt2_10_10_10(binary.LittleEndian.Uint32(src))
	return n
}

func (PackedCodec) Tangent(src []byte) (mgl64.Vec3, float64) {
	return UnpackInt2_10_10_10(binary.LittleEndian.Uint32(src))
}

func (PackedCodec) TexCoord(src []byte) mgl64.Vec2 {
	return mgl64.Vec2{
		UnpackHalf(binary.LittleEndian.Uint16(src[0:])),
		UnpackHalf(binary.LittleEndian.Uint16(src[2:])),
	}
}

// Float32Codec stores every component as a float32. Tangents carry the
// handedness as a fourth component.
type Float32Codec struct{}

func (Float32Codec) Name() string { return "float32" }

func (Float32Codec) Size(attr Attribute) int {
	return Float32Codec{}.Format(attr).Components * 4
}

func (Float32Codec) Format(attr Attribute) Format {
	switch attr {
	case AttrPosition, AttrNormal:
		return Format{Components: 3, Type: ComponentFloat32}
	case AttrTangent:
		return Format{Components: 4, Type: ComponentFloat32}
	case AttrTexCoord:
		return Format{Components: 2, Type: ComponentFloat32}
	}
	return Format{}
}

func (Float32Codec) PutPosition(dst []byte, p mgl64.Vec3) { putFloat32s(dst, p[:]) }
func (Float32Codec) PutNormal(dst []byte, n mgl64.Vec3)   { putFloat32s(dst, n[:]) }

func (Float32Codec) PutTangent(dst []byte, t mgl64.Vec3, handedness float64) {
	putFloat32s(dst, []float64{t[0], t[1], t[2], handedness})
}

func (Float32Codec) PutTexCoord(dst []byte, uv mgl64.Vec2) { putFloat32s(dst, uv[:]) }

func (Float32Codec) Position(src []byte) mgl64.Vec3 {
	var p mgl64.Vec3
	getFloat32s(src, p[:])
	return p
}

func (Float32Codec) Normal(src []byte) mgl64.Vec3 {
	var n mgl64.Vec3
	getFloat32s(src, n[:])
	return n
}

func (Float32Codec) Tangent(src []byte) (mgl64.Vec3, float64) {
	var v [4]float64
	getFloat32s(src, v[:])
	return mgl64.Vec3{v[0], v[1], v[2]}, v[3]
}

func (Float32Codec) TexCoord(src []byte) mgl64.Vec2 {
	var uv mgl64.Vec2
	getFloat32s(src, uv[:])
	return uv
}

// PackInt2_10_10_10 packs a direction and a w sign into one word:
// ceil(v*511) for x, y, z at bits 0, 10 and 20, ceil(w) at bit 30.
// Components are clamped to the signed field range first so that
// rounding noise on unit vectors cannot wrap the sign.
func PackInt2_10_10_10(v mgl64.Vec3, w float64) uint32 {
	return packNormalized(v[0], 511)&0x3ff |
		(packNormalized(v[1], 511)&0x3ff)<<10 |
		(packNormalized(v[2], 511)&0x3ff)<<20 |
		(packNormalized(w, 1)&0x3)<<30
}

// UnpackInt2_10_10_10 reverses PackInt2_10_10_10.
func UnpackInt2_10_10_10(word uint32) (mgl64.Vec3, float64) {
	x := int32(word<<22) >> 22
	y := int32(word<<12) >> 22
	z := int32(word<<2) >> 22
	w := int32(word) >> 30
	return mgl64.Vec3{float64(x) / 511, float64(y) / 511, float64(z) / 511}, float64(w)
}

func packNormalized(val, max float64) uint32 {
	q := math.Ceil(val * max)
	if math.IsNaN(q) {
		return 0
	}
	q = math.Max(-max, math.Min(max, q))
	return uint32(int32(q))
}

// PackHalf wraps val into [-1, 1] and converts it to IEEE half precision bits.
func PackHalf(val float64) uint16 {
	return float16.Fromfloat32(float32(WrapUnit(val))).Bits()
}

// UnpackHalf converts half precision bits back to float64.
func UnpackHalf(bits uint16) float64 {
	return float64(float16.Frombits(bits).Float32())
}

// WrapUnit tolerates texture coordinates that a bad export pushed slightly out
// of range. Values above 1 lose whole units until they are <= 1, values below
// -1 gain whole units until they are >= -1. The result equals what stepping by
// one at a time would produce: (0, 1] from above and [-1, 0) from below.
// Infinities and NaN pass through unchanged.
func WrapUnit(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	if x > 1 {
		return x - (math.Ceil(x) - 1)
	}
	if x < -1 {
		return x + (math.Ceil(-x) - 1)
	}
	return x
}

func putFloat32s(dst []byte, vals []float64) {
	for i, v := range vals {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(v)))
	}
}

func getFloat32s(src []byte, out []float64) {
	for i := range out {
		out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
	}
}
