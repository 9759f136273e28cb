package entity

// Category is a fixed event category (Music, Tech, ...), seeded at startup.
type Category struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Icon  string `gorm:"not null" json:"icon"`
	Color string `gorm:"not null" json:"color"`
}

// DefaultCategories is the built-in category set, upserted on startup.
var DefaultCategories = []Category{
	{ID: "cat-1", Name: "Music", Icon: "Music", Color: "blue"},
	{ID: "cat-2", Name: "Tech", Icon: "Laptop", Color: "green"},
	{ID: "cat-3", Name: "Art", Icon: "Palette", Color: "purple"},
	{ID: "cat-4", Name: "Sports", Icon: "Trophy", Color: "red"},
	{ID: "cat-5", Name: "Food", Icon: "Utensils", Color: "yellow"},
	{ID: "cat-6", Name: "Education", Icon: "GraduationCap", Color: "indigo"},
}
