// Package mdb renders a translated schema as YAMCS spreadsheet worksheets.
//
// Each worksheet is written as its own delimited text file named
// {mdbName}_{Sheet}.csv:
//
//	General     format version, MDB name and document version
//	DataTypes   one row per primitive, enum, aggregate and array type
//	EnumValues  one row per enumeration label
//	Parameters  one row per telemetered channel
//	Containers  one container per packet, selected by packet id
//	Commands    one row per command argument, opcode as an assignment
package mdb
