// Package model defines the core chatbot data types.
package model

// Category is a catalog section such as "action" or "puzzle".
type Category string

const (
	Action    Category = "action"
	Adventure Category = "adventure"
	Strategy  Category = "strategy"
	Puzzle    Category = "puzzle"
	Racing    Category = "racing"
	Indie     Category = "indie"
)

// Platform is a canonical platform name.
type Platform string

const (
	PC          Platform = "PC"
	PlayStation Platform = "PlayStation"
	Xbox        Platform = "Xbox"
	Switch      Platform = "Switch"
	Mobile      Platform = "Mobile"
	WiiU        Platform = "Wii U"
)

// SessionLength classifies the expected time to complete a game.
type SessionLength string

const (
	Short  SessionLength = "short"
	Medium SessionLength = "medium"
	Long   SessionLength = "long"
)

// ValidLengths are the allowed session-length classes.
var ValidLengths = map[SessionLength]bool{
	Short:  true,
	Medium: true,
	Long:   true,
}

// Item is a single catalog entry. It does not know its own category;
// see Entry.
type Item struct {
	Name        string        `json:"name" yaml:"name"`
	Platforms   []Platform    `json:"platforms" yaml:"platforms"`
	Rating      float64       `json:"rating" yaml:"rating"`
	Year        int           `json:"year" yaml:"year"`
	Length      SessionLength `json:"length" yaml:"length"`
	Description string        `json:"description" yaml:"description"`
	Features    []string      `json:"features,omitempty" yaml:"features,omitempty"`
}

// HasPlatform reports whether the item is available on any of the given platforms.
func (it Item) HasPlatform(platforms ...Platform) bool {
	for _, want := range platforms {
		for _, p := range it.Platforms {
			if p == want {
				return true
			}
		}
	}
	return false
}

// Entry pairs an item with the category it was listed under.
type Entry struct {
	Item
	Category Category `json:"category"`
}

// Preferences is the sparse set of cues extracted from one utterance.
// Empty fields are unconstrained.
type Preferences struct {
	Categories []Category    `json:"categories,omitempty"`
	Platforms  []Platform    `json:"platforms,omitempty"`
	Length     SessionLength `json:"length,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p Preferences) IsEmpty() bool {
	return len(p.Categories) == 0 && len(p.Platforms) == 0 && p.Length == ""
}

// Matches reports whether e satisfies every set field of p.
func (p Preferences) Matches(e Entry) bool {
	if len(p.Categories) > 0 {
		found := false
		for _, c := range p.Categories {
			if c == e.Category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(p.Platforms) > 0 && !e.HasPlatform(p.Platforms...) {
		return false
	}
	if p.Length != "" && e.Length != p.Length {
		return false
	}
	return true
}
