// Package delimited decodes header-led, delimiter separated lines into Go structs.
//
// Columns are bound to exported struct fields by the csvName tag or the field name,
// each column value is trimmed of spaces and double quotes and converted with a
// conv.Registry, which callers can extend with converters for their own types.
//
//	type Trade struct {
//		ID     int
//		Symbol string   `csvName:"ticker"`
//		Price  *float64
//	}
//
//	decoder, err := delimited.NewDecoder[Trade](delimited.NewLineReader(file))
//	if err != nil {
//		return err
//	}
//	for trade, err := range decoder.All() {
//		...
//	}
package delimited
