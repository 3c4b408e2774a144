package serp

// Task is one element of the batch request body sent to the live organic
// endpoint.
type Task struct {
	Keyword      string `json:"keyword"`
	LocationCode int    `json:"location_code"`
	LanguageCode string `json:"language_code"`
	Device       string `json:"device"`
	OS           string `json:"os"`
	Depth        int    `json:"depth"`
}

// Response is the envelope returned by the DataForSEO API.
type Response struct {
	StatusCode    int            `json:"status_code"`
	StatusMessage string         `json:"status_message"`
	Tasks         []TaskResponse `json:"tasks"`
}

// TaskResponse holds the outcome of a single task.
type TaskResponse struct {
	ID            string   `json:"id"`
	StatusCode    int      `json:"status_code"`
	StatusMessage string   `json:"status_message"`
	Result        []Result `json:"result"`
}

// Result is one result set of a task.
type Result struct {
	Keyword    string `json:"keyword"`
	ItemsCount int    `json:"items_count"`
	Items      []Item `json:"items"`
}

// Item is one SERP element. Only Title is used by the generator.
type Item struct {
	Type         string `json:"type"`
	RankAbsolute int    `json:"rank_absolute"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Description  string `json:"description"`
}

// API status codes.
const (
	statusOK            = 20000
	statusAuthFailed    = 40100
	statusAuthForbidden = 40101
)
