package domain

import "time"

// Link protocols
const (
	ProtocolHTTP  = "http"
	ProtocolHTTPS = "https"
)

// CustomLink is a shareable single-use URL. Used flips to true on the first
// successful break through the link and never back.
type CustomLink struct {
	ID        int       `json:"id"`
	Domain    string    `json:"domain"`
	Subdomain string    `json:"subdomain"`
	Path      string    `json:"path"`
	Protocol  string    `json:"protocol"`
	FullURL   string    `json:"fullUrl"`
	EggID     int       `json:"eggId"`
	Reward    Reward    `json:"reward"`
	Used      bool      `json:"used"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewLink holds the admin input for creating a CustomLink
type NewLink struct {
	Domain    string
	Subdomain string
	Path      string
	Protocol  string
	EggID     int
}

// LinkInfo is the public view of a link used by the game page
type LinkInfo struct {
	LinkID int    `json:"linkId"`
	EggID  int    `json:"eggId"`
	Reward Reward `json:"reward"`
	Used   bool   `json:"used"`
}
