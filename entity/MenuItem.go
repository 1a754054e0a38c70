package entity

type MenuItem struct {
	ID          string  `bson:"_id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       float64 `bson:"price" json:"price"`
	CategoryID  string  `bson:"category_id" json:"category_id"`
	ImageURL    *string `bson:"image_url" json:"image_url"`
	Available   bool    `bson:"available" json:"available"`
}
