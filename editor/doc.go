// Package editor provides a Bubble Tea model that hosts the dosedit engine.
//
// The package maps terminal key messages onto engine keys, implements the
// engine's drawable surface on top of a bubbles viewport, and draws the
// DOS-Edit chrome around it: a menu bar above the text area, a status bar
// below it, and a help box on F1. It also owns the document's file
// lifecycle (save, modified state) and clipboard integration.
package editor
