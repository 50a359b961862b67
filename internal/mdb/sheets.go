package mdb

// Sheet names a worksheet.
type Sheet string

const (
	SheetGeneral    Sheet = "General"
	SheetDataTypes  Sheet = "DataTypes"
	SheetEnumValues Sheet = "EnumValues"
	SheetParameters Sheet = "Parameters"
	SheetContainers Sheet = "Containers"
	SheetCommands   Sheet = "Commands"
)

// Sheets lists every worksheet in output order.
var Sheets = []Sheet{
	SheetGeneral,
	SheetDataTypes,
	SheetEnumValues,
	SheetParameters,
	SheetContainers,
	SheetCommands,
}

// FormatVersion is the spreadsheet loader format version written to General.
const FormatVersion = "7.2"

var headers = map[Sheet][]string{
	SheetGeneral:    {"format version", "name", "document version"},
	SheetDataTypes:  {"type name", "eng type", "raw type", "encoding"},
	SheetEnumValues: {"type name", "value", "label"},
	SheetParameters: {"parameter name", "type", "data source"},
	SheetContainers: {"container name", "condition", "entry", "type", "array length"},
	SheetCommands:   {"command name", "assignment", "argument name", "type"},
}

// Filename returns the file name of a sheet for the given MDB.
func Filename(mdbName string, sheet Sheet) string {
	return mdbName + "_" + string(sheet) + ".csv"
}
