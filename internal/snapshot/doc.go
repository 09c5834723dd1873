// Package snapshot renders host configuration sources into the text blocks
// that make up a configuration snapshot.
//
// Every formatter is a pure function of its input: the same input always
// produces byte-identical text, and nothing is ever sorted, deduplicated or
// repaired. Formatters accept a context and check it between independent units
// of work; a cancelled formatter returns the context error and no text.
//
// The literal vocabulary is part of the external contract:
//
//	// [Field]: value         single scalar header
//	// Name:                   list header
//	//   | item                list item
//	//   |> [key]  = "value"   embedded option table
//
// Values in option tables render as one of `<- key not found ->`,
// `<- null ->`, `<- empty ->`, `<- whitespace ->` or the quoted value.
// Every line ends with NewLine.
package snapshot
