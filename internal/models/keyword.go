package models

// KeywordCount is a title token and the number of times it occurs across a
// set of SERP titles.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
