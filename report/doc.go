// Package report renders solver results for people and spreadsheets:
// the "A -> B -> ... -> A" tour notation, a short plain-text summary, and a
// CSV table of sweep outcomes. Writers take an io.Writer; SaveFile is the
// only function that touches the filesystem.
package report
