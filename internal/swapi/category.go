package swapi

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory indicates a category name outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// Category names one of the resource collections served by the API.
type Category string

// The browsable categories, in display order.
const (
	People    Category = "people"
	Planets   Category = "planets"
	Species   Category = "species"
	Starships Category = "starships"
	Vehicles  Category = "vehicles"
)

// DefaultCategory is selected when the application starts.
const DefaultCategory = People

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{People, Planets, Species, Starships, Vehicles}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case People, Planets, Species, Starships, Vehicles:
		return true
	}
	return false
}

// Title returns the category name with its first letter capitalized.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory converts a case-insensitive name into a Category.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}
