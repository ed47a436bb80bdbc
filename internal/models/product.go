package models

// Product represents one catalog item. The ID is the human-assigned catalog
// key (e.g. "mark-3-white"), not the storage-assigned ObjectID; the catalog
// is owned entirely by the seed step and the API serves it read-only.
type Product struct {
	ID        string   `bson:"id" json:"id"`
	Name      string   `bson:"name" json:"name"`
	Model     string   `bson:"model" json:"model"`
	Positions int      `bson:"positions" json:"positions"`
	Color     string   `bson:"color" json:"color"`
	Price     float64  `bson:"price" json:"price"`
	Features  []string `bson:"features" json:"features"`
	ImageURL  string   `bson:"imageUrl" json:"imageUrl"`
	InStock   bool     `bson:"inStock" json:"inStock"`
}
