package codec

import (
	"fmt"
	"math"

	"github.com/bipfgo/bipf/errs"
	"github.com/bipfgo/bipf/format"
	"github.com/bipfgo/bipf/internal/tag"
	"github.com/bipfgo/bipf/internal/varint"
	"github.com/bipfgo/bipf/value"
)

// twoPow32 is the magnitude threshold that decides INT vs DOUBLE for both
// integer and integral-float values, per the wire rule: INT iff |v| < 2^32.
const twoPow32 = 1 << 32

// pairModel is one key/value entry of an OBJECT frame. The key is always a
// STRING frame and is kept as a raw slice rather than a full model, since
// its shape never varies.
type pairModel struct {
	key []byte
	val model
}

// model is the sized, bottom-up value tree built by buildModel. Every node
// already knows its own body length, so emit can write each frame's tag in
// a single forward pass with no backpatching.
type model struct {
	wireType format.WireType
	bodyLen  int

	strVal  string
	rawVal  []byte
	i32     int32
	f64     float64
	isNull  bool
	boolVal bool

	children []model
	pairs    []pairModel
}

// frameSize is the total number of bytes this node occupies on the wire:
// tag varint plus body.
func (m model) frameSize() int {
	return varint.Size(tag.Pack(m.wireType, m.bodyLen)) + m.bodyLen
}

func absInt64AtLeast(v int64, bound int64) bool {
	if v < 0 {
		if v == math.MinInt64 {
			return true
		}
		v = -v
	}

	return v >= bound
}

// classifyInt decides whether an integer fits the INT wire type's 4-byte
// body. INT iff |v| < 2^32, else DOUBLE.
func classifyInt(i int64) (isInt bool, i32 int32, f64 float64) {
	if absInt64AtLeast(i, twoPow32) {
		return false, 0, float64(i)
	}

	return true, int32(i), 0
}

// classifyFloat decides whether a float with an integral value and small
// enough magnitude should be packed as INT instead of DOUBLE.
func classifyFloat(f float64) (isInt bool, i32 int32, f64 float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false, 0, f
	}

	if f != math.Trunc(f) {
		return false, 0, f
	}

	if math.Abs(f) >= twoPow32 {
		return false, 0, f
	}

	return true, int32(int64(f)), 0
}

func addSize(a, b int) (int, error) {
	sum := a + b
	if sum < a || sum < b {
		return 0, errs.ErrEncodeOverflow
	}

	return sum, nil
}

// buildModel performs the value-model sizing pass: a single
// bottom-up recursion that computes every frame's body length before any
// bytes are written.
func buildModel(v value.Value, depth, maxDepth int) (model, error) {
	if depth > maxDepth {
		return model{}, fmt.Errorf("%w: depth %d exceeds limit %d", errs.ErrDepthExceeded, depth, maxDepth)
	}

	switch v.Kind() {
	case value.KindNull:
		return model{wireType: format.TypeBoolNull, bodyLen: 0, isNull: true}, nil

	case value.KindBool:
		b, _ := v.AsBool()
		return model{wireType: format.TypeBoolNull, bodyLen: 1, boolVal: b}, nil

	case value.KindString:
		s, _ := v.AsString()
		return model{wireType: format.TypeString, bodyLen: len(s), strVal: s}, nil

	case value.KindBytes:
		b, _ := v.AsBytes()
		return model{wireType: format.TypeBuffer, bodyLen: len(b), rawVal: b}, nil

	case value.KindInt:
		i, _ := v.AsInt()
		isInt, i32, f64 := classifyInt(i)
		if isInt {
			return model{wireType: format.TypeInt, bodyLen: 4, i32: i32}, nil
		}

		return model{wireType: format.TypeDouble, bodyLen: 8, f64: f64}, nil

	case value.KindFloat:
		f, _ := v.AsFloat()
		if isInt, i32, _ := classifyFloat(f); isInt {
			return model{wireType: format.TypeInt, bodyLen: 4, i32: i32}, nil
		}

		return model{wireType: format.TypeDouble, bodyLen: 8, f64: f}, nil

	case value.KindArray:
		elems, _ := v.AsArray()
		children := make([]model, len(elems))
		total := 0

		for i, e := range elems {
			cm, err := buildModel(e, depth+1, maxDepth)
			if err != nil {
				return model{}, err
			}

			children[i] = cm

			var err2 error
			total, err2 = addSize(total, cm.frameSize())
			if err2 != nil {
				return model{}, err2
			}
		}

		return model{wireType: format.TypeArray, bodyLen: total, children: children}, nil

	case value.KindObject:
		entries, _ := v.AsObject()
		pairs := make([]pairModel, len(entries))
		total := 0

		for i, e := range entries {
			if e.Key == nil {
				return model{}, errs.ErrNonStringKey
			}

			keySize := varint.Size(tag.Pack(format.TypeString, len(e.Key))) + len(e.Key)

			valModel, err := buildModel(e.Value, depth+1, maxDepth)
			if err != nil {
				return model{}, err
			}

			pairs[i] = pairModel{key: e.Key, val: valModel}

			var err2 error
			total, err2 = addSize(total, keySize)
			if err2 != nil {
				return model{}, err2
			}

			total, err2 = addSize(total, valModel.frameSize())
			if err2 != nil {
				return model{}, err2
			}
		}

		return model{wireType: format.TypeObject, bodyLen: total, pairs: pairs}, nil

	default:
		return model{}, fmt.Errorf("%w: unrecognized value kind %v", errs.ErrUnsupportedValue, v.Kind())
	}
}
