package query

// SemanticType is the logical type a result column materializes to.
type SemanticType int

const (
	TypeUnknown SemanticType = iota
	TypeNull
	TypeInt64
	TypeFloat64
	TypeDecimal
	TypeDate
	TypeDatetime
	TypeString
	TypeBinary
)

var semanticTypeNames = map[SemanticType]string{
	TypeUnknown:  "unknown",
	TypeNull:     "null",
	TypeInt64:    "int64",
	TypeFloat64:  "float64",
	TypeDecimal:  "decimal",
	TypeDate:     "date",
	TypeDatetime: "datetime",
	TypeString:   "string",
	TypeBinary:   "binary",
}

func (t SemanticType) String() string {
	if name, ok := semanticTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// StrMode decides how type codes that MySQL uses for both textual and
// binary columns are resolved.
type StrMode string

const (
	// StrModeDefault lets Fetch pick a mode from the statement shape:
	// structured statements resolve as StrModeStr, raw SQL strings as
	// StrModeBytes.
	StrModeDefault StrMode = ""
	StrModeStr     StrMode = "str"
	StrModeBytes   StrMode = "bytes"
	StrModeGuess   StrMode = "guess"
)

// strType marks the wire codes MySQL shares between textual and binary
// columns; the actual type depends on the StrMode in force.
const strType = -1

// typeCodeMapping maps MySQL wire protocol type codes to semantic
// types. Code 6 is the server's NULL type; its mapping is uncertain so
// it stays an explicit null rather than a guess. Codes absent from the
// table (e.g. 12, 251, 254) deliberately resolve to TypeUnknown.
var typeCodeMapping = map[int]SemanticType{
	1:   TypeInt64,
	2:   TypeInt64,
	3:   TypeInt64,
	4:   TypeFloat64,
	5:   TypeFloat64,
	6:   TypeNull, // uncertain
	7:   TypeDatetime,
	8:   TypeInt64,
	10:  TypeDate,
	246: TypeDecimal,
	247: strType,
	248: strType,
	249: strType,
	250: strType,
	252: strType,
	253: strType,
}

// MapTypeCode maps a driver type code to a semantic type under the
// given string mode.
//
// For example, code 3 (a MySQL LONG column) maps to TypeInt64.
// Unrecognized codes always map to TypeUnknown; one exotic column never
// fails a whole query.
func MapTypeCode(code int, mode StrMode) SemanticType {
	mapped, ok := typeCodeMapping[code]
	if !ok {
		LogWarnf("type code %d not recognized, mapping to unknown", code)
		return TypeUnknown
	}
	if mapped != strType {
		return mapped
	}
	switch mode {
	case StrModeStr:
		return TypeString
	case StrModeBytes:
		return TypeBinary
	}
	// "guess" performs no inference and falls through to unknown.
	return TypeUnknown
}

// databaseTypeNameCodes translates the DatabaseTypeName strings exposed
// by go-sql-driver/mysql back to the wire protocol type codes the
// mapper keys on.
var databaseTypeNameCodes = map[string]int{
	"TINYINT":    1,
	"SMALLINT":   2,
	"INT":        3,
	"FLOAT":      4,
	"DOUBLE":     5,
	"NULL":       6,
	"TIMESTAMP":  7,
	"BIGINT":     8,
	"MEDIUMINT":  9,
	"DATE":       10,
	"TIME":       11,
	"DATETIME":   12,
	"YEAR":       13,
	"BIT":        16,
	"JSON":       245,
	"DECIMAL":    246,
	"ENUM":       247,
	"SET":        248,
	"TINYBLOB":   249,
	"MEDIUMBLOB": 250,
	"LONGBLOB":   251,
	"BLOB":       252,
	"TEXT":       252,
	"VARCHAR":    253,
	"VARBINARY":  253,
	"CHAR":       254,
	"BINARY":     254,
}

// typeCodeForName returns the wire code for a driver type name, or 0
// when the name is not recognized (0 is not a valid wire code and maps
// to TypeUnknown).
func typeCodeForName(name string) int {
	return databaseTypeNameCodes[name]
}
