package models

// Review is a customer review. Reviews are created once and never edited;
// Date and Time keep the display strings the storefront always rendered.
type Review struct {
	ID       int64    `json:"id"` // time-derived, strictly increasing
	Name     string   `json:"name"`
	Rating   int      `json:"rating"` // 1..5
	Text     string   `json:"text"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Images   []string `json:"images"` // up to 3 embedded data URLs
	Verified bool     `json:"verified"`
}
