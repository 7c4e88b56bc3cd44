package entity

// Food is a catalog entry with a fixed price. Records are owned by the catalog
// store and referenced, never copied into, orders that cite them.
type Food struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       Money  `json:"price"`
}
