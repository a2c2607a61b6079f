package core

import (
	"strings"
	"time"
)

// Note is the central entity of the domain.
// It is a value type: Store operations never mutate a Note in place,
// they replace it with an updated copy.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Pinned    bool      `json:"pinned"`
	Color     *string   `json:"color,omitempty"`
}

// UntitledLabel is the display fallback for notes without a title.
const UntitledLabel = "Untitled"

// DisplayTitle returns the title, or a placeholder when the title is
// empty or whitespace-only.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return UntitledLabel
	}
	return n.Title
}

// Matches reports whether the case-folded title or content contains the
// already-folded query as a substring. An empty query matches everything.
func (n Note) Matches(foldedQuery string) bool {
	if foldedQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Title), foldedQuery) ||
		strings.Contains(strings.ToLower(n.Content), foldedQuery)
}

// Patch describes a partial update to a Note. Nil fields are left
// untouched. ID and CreatedAt are deliberately not representable here:
// identity fields survive every update by construction.
type Patch struct {
	Title   *string
	Content *string
	Pinned  *bool
	// Color sets the color tag; an empty string clears it.
	Color *string
}

func (p Patch) apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Pinned != nil {
		n.Pinned = *p.Pinned
	}
	if p.Color != nil {
		if *p.Color == "" {
			n.Color = nil
		} else {
			c := *p.Color
			n.Color = &c
		}
	}
	return n
}
