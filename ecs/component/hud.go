package component

import "image/color"

// HUD styles the on-screen overlay. ShowHints adds key reminders.
type HUD struct {
	PipColor  color.Color
	TextColor color.Color
	ShowHints bool
}

var HUDComponent = NewComponent[HUD]()
