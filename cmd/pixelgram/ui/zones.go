package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones wraps a bubblezone manager for click and hover hit-testing.
// A nil *Zones (or one without a manager) is valid and disables mouse
// support: marks pass through unchanged and nothing is ever hit.
type Zones struct {
	manager *zone.Manager
	prefix  string
}

// NewZones binds a manager. Pass nil to run without mouse support.
func NewZones(m *zone.Manager) *Zones {
	return &Zones{manager: m}
}

// Scoped returns a view of z whose IDs are namespaced under prefix, so
// several component instances can mark the same local IDs without clashing.
func (z *Zones) Scoped(prefix string) *Zones {
	if z == nil {
		return nil
	}
	return &Zones{manager: z.manager, prefix: z.prefix + prefix + ":"}
}

// Enabled reports whether hit-testing is active.
func (z *Zones) Enabled() bool {
	return z != nil && z.manager != nil
}

// Mark wraps content with the zone markers for id.
func (z *Zones) Mark(id, content string) string {
	if !z.Enabled() {
		return content
	}
	return z.manager.Mark(z.prefix+id, content)
}

// Hit reports whether the mouse event falls inside zone id.
func (z *Zones) Hit(id string, msg tea.MouseMsg) bool {
	if !z.Enabled() {
		return false
	}
	info := z.manager.Get(z.prefix + id)
	if info == nil {
		return false
	}
	return info.InBounds(msg)
}

// Scan strips markers from the final frame and records zone positions.
// Only the root model calls this.
func (z *Zones) Scan(frame string) string {
	if !z.Enabled() {
		return frame
	}
	return z.manager.Scan(frame)
}

// isClick reports a left-button release, the point at which a click is
// treated as complete.
func isClick(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
}

// isMotion reports pointer movement with no button held.
func isMotion(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionMotion
}
