package fintrack

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a note. A stored name outside Categories is kept as is
// and shown with the default color.
type Category string

const (
	CategoryNone       Category = ""
	CategoryMotivation Category = "motivation"
	CategoryGoal       Category = "goal"
	CategoryMilestone  Category = "milestone"
	CategoryReminder   Category = "reminder"
)

func (c Category) String() string { return string(c) }

// Color returns the color notes of category c are shown with.
func (c Category) Color() Color {
	switch c {
	case CategoryMotivation:
		return ColorYellowOrangeSoft
	case CategoryGoal:
		return ColorPurplePinkSoft
	case CategoryMilestone:
		return ColorBlueCyanSoft
	case CategoryReminder:
		return ColorGreenEmeraldSoft
	default:
		return ColorDefault
	}
}

// Categories lists the note categories.
var Categories = []Category{CategoryMotivation, CategoryGoal, CategoryMilestone, CategoryReminder}

// ParseCategory returns the category named name.
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c.String() == name {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown category %q, want motivation, goal, milestone or reminder", name)
}

// Note is a message to a future self. Notes are never edited, only deleted.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedDate time.Time `json:"createdDate"`
	LinkedTo    string    `json:"linkedTo,omitempty"` // free text, not checked
	Category    Category  `json:"category"`
}

func (n Note) identity() string { return n.ID }

// NewNote creates a note at now.
func NewNote(title, content string, category Category, linkedTo string, now time.Time) Note {
	return Note{
		ID:          NewID(),
		Title:       title,
		Content:     content,
		CreatedDate: now.UTC().Truncate(time.Millisecond),
		LinkedTo:    linkedTo,
		Category:    category,
	}
}
