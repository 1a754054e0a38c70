package entity

// Category groups menu items. Seed categories use fixed slug ids
// ("entradas", "postres"); categories created over the API get uuid ids.
type Category struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	ImageURL    *string `bson:"image_url" json:"image_url"`
}
