package models

// TitlesAPIRequest is the JSON body accepted by the titles API.
type TitlesAPIRequest struct {
	Keyword string `json:"keyword" form:"keyword"`
	Length  string `json:"length" form:"length"`
	Focus   string `json:"focus" form:"focus"`
}

// TitlesAPIResponse contains a generated title and the data it was based on.
type TitlesAPIResponse struct {
	Keyword        string         `json:"keyword"`
	Length         Length         `json:"length"`
	Focus          Focus          `json:"focus"`
	SuggestedTitle string         `json:"suggested_title"`
	Titles         []string       `json:"titles"`
	Keywords       []KeywordCount `json:"keywords"`
}

// NewTitlesAPIResponse converts a RenderContext into its API representation.
func NewTitlesAPIResponse(rc *RenderContext) TitlesAPIResponse {
	return TitlesAPIResponse{
		Keyword:        rc.Keyword,
		Length:         rc.Preferences.Length,
		Focus:          rc.Preferences.Focus,
		SuggestedTitle: rc.SuggestedTitle,
		Titles:         rc.Titles,
		Keywords:       rc.Keywords,
	}
}
