// Package dictionary loads line-oriented dictionary files into a model.Dictionary.
//
// Each non-comment line has the form
//
//	<traditional> <simplified> [<pronunciation>] /<def1>/<def2>/.../
//
// Lines starting with '#' are comments. Lines that do not match the format
// are reported through the logger and skipped; they never abort a load.
// When the same simplified headword appears more than once, the later line wins.
package dictionary
