package shop

// Item is a cosmetic shop entry. Prices are fixed; there is no randomness or
// restocking.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
	Type  string `json:"type"` // hat | background | accessory
}

// Catalog is the full cosmetic inventory.
var Catalog = []Item{
	{ID: "hat_blue", Name: "Blue Hat", Price: 50, Type: "hat"},
	{ID: "hat_star", Name: "Star Cap", Price: 75, Type: "hat"},
	{ID: "bg_sky", Name: "Sky Background", Price: 60, Type: "background"},
	{ID: "bg_room", Name: "Cozy Room", Price: 90, Type: "background"},
	{ID: "acc_glasses", Name: "Cool Glasses", Price: 80, Type: "accessory"},
	{ID: "acc_backpack", Name: "Backpack", Price: 110, Type: "accessory"},
}

// ItemByID looks an item up in the catalog.
func ItemByID(id string) (Item, bool) {
	for _, item := range Catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// slotField maps an item type to the bson path of its equipment slot.
func slotField(itemType string) (string, bool) {
	switch itemType {
	case "hat":
		return "equipped.hatId", true
	case "background":
		return "equipped.backgroundId", true
	case "accessory":
		return "equipped.accessoryId", true
	default:
		return "", false
	}
}
