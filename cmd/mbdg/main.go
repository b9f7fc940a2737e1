// Package main provides the entry point for the mbdg CLI.
//
// mbdg looks up words in a line-oriented bilingual dictionary file.
//
// Usage:
//
//	mbdg                          # interactive lookup, Q to quit
//	mbdg --word 你好               # single lookup
//	mbdg --lookup words.txt       # bulk lookup into words_lookup.txt
//
// See --help for all available options.
package main

func main() {
	Execute()
}
