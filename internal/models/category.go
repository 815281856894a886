package models

// Defaults applied to categories created without a colour or icon
const (
	DefaultCategoryColor = "#5B47E0"
	DefaultCategoryIcon  = "Folder"
)

// Category groups tasks (e.g. "Work", "Personal")
type Category struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
	Icon  string `json:"icon" yaml:"icon"`
	Order int    `json:"order" yaml:"order"`
}

// GetID returns the category ID (used by quiet CLI output)
func (c *Category) GetID() int {
	return c.ID
}

// Clone returns a copy of the category
func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// CloneCategories copies every category in the slice
func CloneCategories(categories []*Category) []*Category {
	out := make([]*Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Clone())
	}
	return out
}
