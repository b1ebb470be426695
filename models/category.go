package models

import (
	"encoding/json"
	"time"
)

type CategoryList struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Data    []Category `json:"data"`
}

type Category struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Id          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	IsActive    bool      `json:"isActive"`
	SortOrder   int       `json:"sortOrder"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
	SortOrder   *int   `json:"sortOrder"`
}

// CategoryPatch works like ProductPatch: updates are keyed by which fields the
// request body actually carried.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"sortOrder"`

	provided map[string]bool
}

func (p *CategoryPatch) UnmarshalJSON(data []byte) error {
	type patch CategoryPatch
	var v patch

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = CategoryPatch(v)
	p.provided = make(map[string]bool, len(keys))
	for k := range keys {
		p.provided[k] = true
	}

	return nil
}

func (p *CategoryPatch) Has(key string) bool {
	return p.provided[key]
}
