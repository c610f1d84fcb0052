package model

// Example is one resource record exposed under /examples.
// It is a plain domain model with no database-specific tags.
type Example struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// CreateExampleDto is the request body accepted by POST /examples.
type CreateExampleDto struct {
	Title       string `json:"title" validate:"required,max=200"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description" validate:"max=1000"`
}

// ToExample builds an unsaved Example; the store assigns the ID.
func (d CreateExampleDto) ToExample() *Example {
	return &Example{
		Title:       d.Title,
		URL:         d.URL,
		Description: d.Description,
	}
}

// UpdateExampleDto is the request body accepted by PATCH /examples/:id.
// A nil field leaves the stored value unchanged; a present one obeys the
// CreateExampleDto rules.
type UpdateExampleDto struct {
	Title       *string `json:"title,omitempty" validate:"omitnil,required,max=200"`
	URL         *string `json:"url,omitempty" validate:"omitnil,required,url"`
	Description *string `json:"description,omitempty" validate:"omitnil,max=1000"`
}

// Empty reports whether the update carries no fields at all.
func (d UpdateExampleDto) Empty() bool {
	return d.Title == nil && d.URL == nil && d.Description == nil
}

// Apply copies the present fields onto e.
func (d UpdateExampleDto) Apply(e *Example) {
	if d.Title != nil {
		e.Title = *d.Title
	}
	if d.URL != nil {
		e.URL = *d.URL
	}
	if d.Description != nil {
		e.Description = *d.Description
	}
}
