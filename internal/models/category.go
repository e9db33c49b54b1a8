package models

// CategoryConfig is one node of the category taxonomy as stored in the YAML file.
type CategoryConfig struct {
	Name     string           `yaml:"name"`
	Children []CategoryConfig `yaml:"children,omitempty"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
