package devfolio

import "slices"

// Project represents one showcased work item in a portfolio.
type Project struct {
	ID           string   `yaml:"id" json:"id"`                                         // ID uniquely identifies the project within its portfolio.
	Title        string   `yaml:"title" json:"title"`                                   // Title is the headline of the project card.
	Description  string   `yaml:"description" json:"description"`                       // Description is the body text of the project card.
	URL          string   `yaml:"url" json:"url"`                                       // URL links to the project itself, and must be absolute.
	Technologies []string `yaml:"technologies,omitempty" json:"technologies,omitempty"` // Technologies are rendered as tags, in order.
	ImageURL     string   `yaml:"image_url,omitempty" json:"imageUrl,omitempty"`        // ImageURL optionally illustrates the card, and must be absolute when set.
}

// validateRequired checks that all four required fields are present,
// reporting them together in a single message.
func (p Project) validateRequired() error {
	if p.ID == "" || p.Title == "" || p.Description == "" || p.URL == "" {
		return Validationf("project requires id, title, description, and url")
	}
	return nil
}

// validateURLs checks the project URL, then the image URL when one is set.
// The duplicate-id check belongs to AddProject since it needs the
// surrounding portfolio, and runs between the required-field check and this
// one.
func (p Project) validateURLs() error {
	if !IsValidURL(p.URL) {
		return Validationf("project %q has an invalid URL: %s", p.Title, p.URL)
	}
	if p.ImageURL != "" && !IsValidURL(p.ImageURL) {
		return Validationf("project %q has an invalid image URL: %s", p.Title, p.ImageURL)
	}
	return nil
}

// clone returns an independent copy of the project, so that later mutation
// of the caller's value cannot reach a stored one.
func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}
