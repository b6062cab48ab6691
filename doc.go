// Package gui provides a retained tree of rectangular controls whose bounds
// follow their parents through anchors and offsets.
//
// Users import this package for the control tree, events, anchored layout and
// the offscreen Window. Drawing goes through the paint package.
package gui
