package domain

// PackingItem is one checklist entry on a trip's packing list.
type PackingItem struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Packed   bool   `json:"packed"`
}

// PackingTemplates are the named starter lists a packing list can be seeded
// from. Items are appended as-is; callers must assign fresh ids.
var PackingTemplates = map[string][]PackingItem{
	"Weekend": {
		{Text: "Underwear x3", Category: "Clothing"},
		{Text: "Toothbrush", Category: "Toiletries"},
	},
	"Sun": {
		{Text: "Sunscreen", Category: "Health"},
		{Text: "Swimwear", Category: "Clothing"},
	},
	"Basic": {
		{Text: "Passport", Category: "Documents"},
		{Text: "Charger", Category: "Electronics"},
	},
}

// GroupPackingList buckets the packing list by category, "General" for items
// without one. Derived on every read.
func (t *Trip) GroupPackingList() map[string][]PackingItem {
	groups := make(map[string][]PackingItem)
	for _, item := range t.PackingList {
		cat := item.Category
		if cat == "" {
			cat = "General"
		}
		groups[cat] = append(groups[cat], item)
	}
	return groups
}
