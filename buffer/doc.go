// Package buffer implements the line-addressed document model for dosedit.
//
// Lines are addressed by 0-based index and hold Unicode scalar values; columns
// count runes. A Buffer always holds at least one line and no line contains a
// newline. The buffer knows nothing about cursors or viewports.
package buffer
