package model

import "time"

// DefaultColor is the color a project gets when the palette is bypassed.
const DefaultColor = "#3B82F6"

// Palette is the rotation of default project colors. A project created
// without an explicit color takes palette[count(projects) % 6].
var Palette = []string{
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // purple
	"#EC4899", // pink
}

// Project is a collection of tasks. Deleting a project deletes its tasks.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectPatch is a partial update for a project. Nil fields are left
// unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	Color       *string
}

// Empty reports whether the patch touches no fields.
func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Color == nil
}
