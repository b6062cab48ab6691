package gui

import "fmt"

// AnchorPreset names a common anchor.
type AnchorPreset int

const (
	PresetTopLeft AnchorPreset = iota
	PresetTopRight
	PresetBottomLeft
	PresetBottomRight
	PresetTopWide
	PresetBottomWide
	PresetLeftWide
	PresetRightWide
	PresetCenter
	PresetHCenterWide
	PresetVCenterWide
	PresetFill
)

var presets = [...]struct {
	name   string
	anchor AnchorRect
}{
	PresetTopLeft:     {"top_left", NewAnchor(0, 0, 0, 0)},
	PresetTopRight:    {"top_right", NewAnchor(1, 0, 1, 0)},
	PresetBottomLeft:  {"bottom_left", NewAnchor(0, 1, 0, 1)},
	PresetBottomRight: {"bottom_right", NewAnchor(1, 1, 1, 1)},
	PresetTopWide:     {"top_wide", NewAnchor(0, 0, 1, 0)},
	PresetBottomWide:  {"bottom_wide", NewAnchor(0, 1, 1, 1)},
	PresetLeftWide:    {"left_wide", NewAnchor(0, 0, 0, 1)},
	PresetRightWide:   {"right_wide", NewAnchor(1, 0, 1, 1)},
	PresetCenter:      {"center", NewAnchor(0.5, 0.5, 0.5, 0.5)},
	PresetHCenterWide: {"hcenter_wide", NewAnchor(0, 0.5, 1, 0.5)},
	PresetVCenterWide: {"vcenter_wide", NewAnchor(0.5, 0, 0.5, 1)},
	PresetFill:        {"fill", NewAnchor(0, 0, 1, 1)},
}

// Rect returns the anchor the preset stands for. Unknown presets map to the
// zero anchor.
func (p AnchorPreset) Rect() AnchorRect {
	if p < 0 || int(p) >= len(presets) {
		return AnchorRect{}
	}
	return presets[p].anchor
}

func (p AnchorPreset) String() string {
	if p < 0 || int(p) >= len(presets) {
		return fmt.Sprintf("AnchorPreset(%d)", int(p))
	}
	return presets[p].name
}

// ParseAnchorPreset returns the preset with the given name.
func ParseAnchorPreset(s string) (AnchorPreset, error) {
	for i, p := range presets {
		if p.name == s {
			return AnchorPreset(i), nil
		}
	}
	return 0, fmt.Errorf("unknown anchor preset %q", s)
}
