package models

import "slices"

// ItemCondition grades a listing.
type ItemCondition string

const (
	ConditionLikeNew   ItemCondition = "Like New"
	ConditionExcellent ItemCondition = "Excellent"
	ConditionGood      ItemCondition = "Good"
	ConditionFair      ItemCondition = "Fair"
)

// ItemConditions lists the accepted conditions in form order.
var ItemConditions = []ItemCondition{ConditionLikeNew, ConditionExcellent, ConditionGood, ConditionFair}

// Valid reports whether c is one of ItemConditions.
func (c ItemCondition) Valid() bool {
	return slices.Contains(ItemConditions, c)
}

// ListingCategories lists the categories offered by the listing form.
var ListingCategories = []string{"Electronics", "Books", "Furniture", "Sports", "Appliances"}

// MarketplaceItem is a listing in the student marketplace.
type MarketplaceItem struct {
	ID          string        `json:"id" example:"item1"`
	Title       string        `json:"title" example:"MacBook Pro 2020"`
	Description string        `json:"description"`
	Price       float64       `json:"price" example:"899"`
	Condition   ItemCondition `json:"condition" example:"Like New"`
	Category    string        `json:"category" example:"Electronics"`
	SellerID    string        `json:"sellerId" example:"user3"`
	SellerName  string        `json:"sellerName" example:"Mike Rodriguez"`
	Image       string        `json:"image,omitempty"`
	Location    string        `json:"location" example:"North Campus"`
	Tags        []string      `json:"tags"`
	PostedDate  string        `json:"postedDate" example:"2024-01-10"` // YYYY-MM-DD
	Views       int           `json:"views"`
}

// Validate implements Validatable.
func (i MarketplaceItem) Validate() error {
	if i.Title == "" {
		return invalid("marketplace item", i.ID, "empty title")
	}
	if i.Price < 0 {
		return invalid("marketplace item", i.ID, "negative price")
	}
	if !i.Condition.Valid() {
		return invalid("marketplace item", i.ID, "unknown condition %q", i.Condition)
	}
	if i.Views < 0 {
		return invalid("marketplace item", i.ID, "negative view count")
	}
	return nil
}

// MarketplaceItems holds listings in insertion order.
type MarketplaceItems []MarketplaceItem

// Validate implements Validatable.
func (m MarketplaceItems) Validate() error {
	ids := make([]string, len(m))
	for i, item := range m {
		if err := item.Validate(); err != nil {
			return err
		}
		ids[i] = item.ID
	}
	return uniqueIDs("marketplace item", ids)
}

// Clone returns a deep copy.
func (m MarketplaceItems) Clone() MarketplaceItems {
	out := make(MarketplaceItems, len(m))
	for i, item := range m {
		item.Tags = cloneStrings(item.Tags)
		out[i] = item
	}
	return out
}
