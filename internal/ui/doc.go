// Package ui is the Bubble Tea front end for photopick.
//
// Pieces:
//   - View: a screen or region with its own Init/Update/View (Elm-style)
//   - ImagePanel: draws the picker's ImageState into a fixed cell box
//   - PhotoPickerModal: the selection control, a filterable list of library photos
//   - OverlayStack: modals on top of the main view, topmost gets input first
//   - KeybindRegistry / KeyHandler: single keys plus SPC-prefixed leader sequences
//
// All picker state changes happen inside appModelAdapter.Update, i.e. on the
// program's event loop.
package ui
