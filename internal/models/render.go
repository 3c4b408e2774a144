package models

// RenderContext is everything the index view needs. It is built per request
// and never shared.
type RenderContext struct {
	Keyword        string         `json:"keyword"`
	Preferences    Preferences    `json:"preferences"`
	SuggestedTitle string         `json:"suggested_title"`
	Titles         []string       `json:"titles"`
	Keywords       []KeywordCount `json:"keywords"`
}

// NewRenderContext returns the empty context used for the initial form.
func NewRenderContext() *RenderContext {
	return &RenderContext{
		Preferences: DefaultPreferences(),
		Titles:      []string{},
		Keywords:    []KeywordCount{},
	}
}

// HasResult reports whether a suggested title is present.
func (r *RenderContext) HasResult() bool {
	return r != nil && r.SuggestedTitle != ""
}
