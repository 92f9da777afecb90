// Package kernel provides the value objects shared by the order and pricing
// models.
//
// The package includes:
//   - UUID: identifier value object with validation and comparison
//   - Date: a calendar date without time of day, with an explicit absent value
//   - Clock: the source of "today" for the status rules
//
// Upstream records carry dates as loosely formatted strings. ParseDate is the
// single boundary where those strings are validated: an empty string is the
// absent date, anything unparsable is an error. Once a Date exists, code that
// consumes it never has to deal with malformed input.
package kernel
