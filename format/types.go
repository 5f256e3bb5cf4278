// Package format defines the small enumerations shared across the bipf
// codec and its optional compression wrapper.
package format

// WireType identifies the on-wire shape of a frame's body. It occupies the
// low 3 bits of every frame's packed tag.
type WireType uint8

const (
	TypeString   WireType = 0 // UTF-8 bytes.
	TypeBuffer   WireType = 1 // Raw opaque bytes.
	TypeInt      WireType = 2 // 32-bit signed integer, little-endian, 4 bytes.
	TypeDouble   WireType = 3 // 64-bit IEEE-754 float, little-endian, 8 bytes.
	TypeArray    WireType = 4 // Concatenation of child frames.
	TypeObject   WireType = 5 // Concatenation of (key, value) frame pairs.
	TypeBoolNull WireType = 6 // length=0 -> null, length=1 -> bool.
	typeReserved WireType = 7 // Must never be produced.
)

func (t WireType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeBuffer:
		return "Buffer"
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	case TypeBoolNull:
		return "BoolNull"
	default:
		return "Unknown"
	}
}

// Reserved reports whether t is the reserved-and-must-not-be-produced type.
func (t WireType) Reserved() bool {
	return t == typeReserved
}

// CompressionType selects the whole-buffer compression algorithm applied
// outside the codec by the compress package.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0
	CompressionZstd CompressionType = 1
	CompressionS2   CompressionType = 2
	CompressionLZ4  CompressionType = 3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
