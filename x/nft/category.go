package nft

import (
	"github.com/chill-token/chill/errors"
)

// Category classifies an asset. This is just a string type alias, but using
// it increase the clarity of the API.
type Category string

// Supported asset categories.
const (
	Character Category = "character"
	Pet       Category = "pet"
	Emote     Category = "emote"
	Tileset   Category = "tileset"
	Item      Category = "item"
)

// Categories lists all supported categories.
var Categories = []Category{Character, Pet, Emote, Tileset, Item}

// ParseCategory returns the category with given name.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate returns an error if this is not a supported category.
func (c Category) Validate() error {
	for _, known := range Categories {
		if c == known {
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown category %q", string(c))
}
