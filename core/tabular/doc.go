// Package tabular decodes and encodes the comma-delimited text used by the
// OpenFlights feeds, the override tables and the generated output tables.
//
// Decoding follows the feeds' conventions rather than RFC 4180: a line is split
// on every comma that is followed by an even number of double quotes, each field
// loses one leading and one trailing quote, and any comma left inside a value is
// removed. Encoding never quotes; values are expected to be comma-free, which the
// decoder guarantees for everything it produced.
package tabular
