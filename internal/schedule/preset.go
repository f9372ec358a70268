package schedule

import (
	"strings"

	"github.com/google/uuid"
)

// Preset is a named activity from the picker catalog.
type Preset struct {
	Key   string `json:"-"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Class string `json:"class"`
}

// Assignment converts the preset into a cell assignment.
func (p Preset) Assignment() Assignment {
	return Assignment{Icon: p.Icon, Text: p.Name, Class: p.Class}
}

var builtinPresets = []Preset{
	{Key: "sleep", Name: "Sleep", Icon: "😴", Class: "sleep"},
	{Key: "wake", Name: "Wake up", Icon: "⏰", Class: "ritual"},
	{Key: "shower", Name: "Shower", Icon: "🚿", Class: "ritual"},
	{Key: "meditate", Name: "Meditate", Icon: "🧘", Class: "ritual"},
	{Key: "journal", Name: "Journal", Icon: "📓", Class: "ritual"},
	{Key: "breakfast", Name: "Breakfast", Icon: "🍳", Class: "meal"},
	{Key: "lunch", Name: "Lunch", Icon: "🥗", Class: "meal"},
	{Key: "dinner", Name: "Dinner", Icon: "🍝", Class: "meal"},
	{Key: "work", Name: "Work", Icon: "💼", Class: "work"},
	{Key: "deep-work", Name: "Deep work", Icon: "🎯", Class: "work"},
	{Key: "meeting", Name: "Meeting", Icon: "📅", Class: "work"},
	{Key: "commute", Name: "Commute", Icon: "🚆", Class: "work"},
	{Key: "gym", Name: "Gym", Icon: "▲", Class: "exercise"},
	{Key: "walk", Name: "Walk", Icon: "🚶", Class: "exercise"},
	{Key: "read", Name: "Read", Icon: "📚", Class: "learning"},
	{Key: "study", Name: "Study", Icon: "🧠", Class: "learning"},
	{Key: "chores", Name: "Chores", Icon: "🧹", Class: "home"},
	{Key: "family", Name: "Family", Icon: "👪", Class: "social"},
	{Key: "free", Name: "Free time", Icon: "🎈", Class: "free"},
}

// BuiltinPresets returns the fixed catalog.
func BuiltinPresets() []Preset {
	out := make([]Preset, len(builtinPresets))
	copy(out, builtinPresets)
	return out
}

// CustomKey derives the stable catalog key for a custom activity name.
func CustomKey(name string) string {
	return "custom-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Catalog is the built-in presets plus the user's custom ones.
type Catalog struct {
	custom []Preset
}

// NewCatalog builds a catalog from persisted custom presets.
// Entries with empty or repeated names are dropped.
func NewCatalog(custom []Preset) *Catalog {
	c := &Catalog{}
	for _, p := range custom {
		_, _, _ = c.AddCustom(p.Name, p.Icon, p.Class)
	}
	return c
}

// All returns built-in presets followed by custom ones.
func (c *Catalog) All() []Preset {
	return append(BuiltinPresets(), c.Custom()...)
}

// Custom returns the custom presets in insertion order.
func (c *Catalog) Custom() []Preset {
	out := make([]Preset, len(c.custom))
	copy(out, c.custom)
	return out
}

// Find returns the preset with the exact display name.
func (c *Catalog) Find(name string) (Preset, bool) {
	for _, p := range c.All() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Lookup returns the preset with the given key.
func (c *Catalog) Lookup(key string) (Preset, bool) {
	for _, p := range c.All() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// AddCustom adds a custom preset. If a preset with the same name already
// exists it is returned unchanged and added is false.
func (c *Catalog) AddCustom(name, icon, class string) (p Preset, added bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, false, ErrEmptyPresetName
	}
	if existing, ok := c.Find(name); ok {
		return existing, false, nil
	}
	icon = strings.TrimSpace(icon)
	if icon == "" {
		icon = "⭐"
	}
	class = strings.TrimSpace(class)
	if class == "" {
		class = "custom"
	}
	p = Preset{Key: CustomKey(name), Name: name, Icon: icon, Class: class}
	c.custom = append(c.custom, p)
	return p, true, nil
}
