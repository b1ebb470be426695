package models

import (
	"encoding/json"
	"time"
)

type ProductList struct {
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Total   int32     `json:"total"`
	Page    int       `json:"page"`
	Pages   int       `json:"pages"`
	Data    []Product `json:"data"`
}

type CategoryProductList struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count"`
	Category string    `json:"category"`
	Data     []Product `json:"data"`
}

// CategoryRef is the category summary embedded into a product result.
type CategoryRef struct {
	Id          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type NutritionalInfo struct {
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

type Product struct {
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Id          string           `json:"_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Category    CategoryRef      `json:"categoryId"`
	Images      []string         `json:"images"`
	Ingredients []string         `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
	IsActive    bool             `json:"isActive"`
	IsPopular   bool             `json:"isPopular"`
	SortOrder   int              `json:"sortOrder"`
	Nutritional *NutritionalInfo `json:"nutritionalInfo,omitempty"`
}

type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *float64         `json:"price"`
	CategoryId  string           `json:"categoryId"`
	Images      []string         `json:"images"`
	Ingredients []string         `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
	IsActive    *bool            `json:"isActive"`
	IsPopular   *bool            `json:"isPopular"`
	SortOrder   *int             `json:"sortOrder"`
	Nutritional *NutritionalInfo `json:"nutritionalInfo"`
}

// ProductPatch carries a partial update keyed by presence: a field left out of
// the request body keeps its stored value, an explicit null clears it.
type ProductPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *float64         `json:"price"`
	CategoryId  *string          `json:"categoryId"`
	Images      []string         `json:"images"`
	Ingredients []string         `json:"ingredients"`
	Allergens   []string         `json:"allergens"`
	IsActive    *bool            `json:"isActive"`
	IsPopular   *bool            `json:"isPopular"`
	SortOrder   *int             `json:"sortOrder"`
	Nutritional *NutritionalInfo `json:"nutritionalInfo"`

	provided map[string]bool
}

func (p *ProductPatch) UnmarshalJSON(data []byte) error {
	type patch ProductPatch
	var v patch

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = ProductPatch(v)
	p.provided = make(map[string]bool, len(keys))
	for k := range keys {
		p.provided[k] = true
	}

	return nil
}

func (p *ProductPatch) Has(key string) bool {
	return p.provided[key]
}

// ProductQuery is the normalized filter/sort/page plan for the general product
// listing. Page and Limit are always positive.
type ProductQuery struct {
	Category string
	Popular  bool
	Search   string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
	Page     int
	Limit    int
}
