// Package picker holds the image state machine behind the photo picker view.
//
// A Picker owns exactly one ImageState and the current Selection. All
// transitions run inside the Bubble Tea update loop; loader callbacks only
// post a LoadResultMsg, and results for a selection that is no longer
// current are dropped before they can touch the state.
package picker
