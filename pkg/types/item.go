package types

import "strings"

// Item is the single catalog entity.
// Items compare by value: two Items with equal fields are the same item.
type Item struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// Validate checks the fields a caller controls.
// Returns ErrInvalidName if the name is empty or only whitespace.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrInvalidName
	}
	return nil
}
