package tui

type Category struct {
	ID          string
	Name        string
	Description string
}

var Categories = []Category{
	{ID: "manifest", Name: "Manifest", Description: "Where the app list is read from"},
	{ID: "interface", Name: "Interface", Description: "Theme, ordering, and prompt behavior"},
	{ID: "history", Name: "History", Description: "Launch history and retention"},
	{ID: "logging", Name: "Logging", Description: "Log level and format"},
}

func GetCategoryByID(id string) *Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

func GetCategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}
