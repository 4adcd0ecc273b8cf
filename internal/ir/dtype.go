package ir

// DataType identifies a tensor element type, using the ONNX
// TensorProto.DataType numbering.
type DataType int32

// Supported element type tags.
const (
	Undefined DataType = 0
	Float     DataType = 1 // float32
	Uint8     DataType = 2
	Int8      DataType = 3
	Uint16    DataType = 4
	Int16     DataType = 5
	Int32     DataType = 6
	Int64     DataType = 7
	String    DataType = 8
	Bool      DataType = 9
	Float16   DataType = 10
	Double    DataType = 11 // float64
	Uint32    DataType = 12
	Uint64    DataType = 13
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float:
		return "float32"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Float16:
		return "float16"
	case Double:
		return "float64"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	default:
		return "undefined"
	}
}
