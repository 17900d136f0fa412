package models

// Menu is one entry of the fixed MVP menu table.
type Menu struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // in minutes
}

var Menus = []Menu{
	{ID: "cut", Name: "カット", Duration: 60},
	{ID: "cut-color", Name: "カット + カラー", Duration: 180},
	{ID: "cut-perm", Name: "カット + パーマ", Duration: 120},
}

const defaultMenuDuration = 60

// MenuDuration resolves a menu name to its duration in minutes. Unknown names
// fall back to 60 minutes rather than failing; the frontend only offers names
// from the table, so anything else is a stale or hand-crafted request.
func MenuDuration(name string) int {
	for _, m := range Menus {
		if m.Name == name {
			return m.Duration
		}
	}
	return defaultMenuDuration
}
