package models

import (
	"encoding/json"
	"time"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	District   string `json:"district,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

type WorkingHours struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Restaurant struct {
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Id           string       `json:"_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email,omitempty"`
	Address      Address      `json:"address"`
	WorkingHours WorkingHours `json:"workingHours"`
	SocialMedia  SocialMedia  `json:"socialMedia"`
	Logo         string       `json:"logo,omitempty"`
	Banner       string       `json:"banner,omitempty"`
}

// RestaurantPatch keeps the raw JSON of the nested objects so they can be
// merged over the stored values instead of replacing them wholesale.
type RestaurantPatch struct {
	Name         *string         `json:"name"`
	Description  *string         `json:"description"`
	Phone        *string         `json:"phone"`
	Email        *string         `json:"email"`
	Address      json.RawMessage `json:"address"`
	WorkingHours json.RawMessage `json:"workingHours"`
	SocialMedia  json.RawMessage `json:"socialMedia"`

	provided map[string]bool
}

func (p *RestaurantPatch) UnmarshalJSON(data []byte) error {
	type patch RestaurantPatch
	var v patch

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*p = RestaurantPatch(v)
	p.provided = make(map[string]bool, len(keys))
	for k := range keys {
		p.provided[k] = true
	}

	return nil
}

func (p *RestaurantPatch) Has(key string) bool {
	return p.provided[key]
}

// DefaultWorkingHours mirrors the schema defaults applied when a restaurant
// row is first created.
func DefaultWorkingHours() WorkingHours {
	weekday := DayHours{Open: "09:00", Close: "22:00", IsOpen: true}
	return WorkingHours{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  weekday,
		Sunday:    DayHours{Open: "10:00", Close: "21:00", IsOpen: true},
	}
}
