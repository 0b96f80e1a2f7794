package models

import "time"

// DomainRecord is one domain from the historical source list together with
// the years it appeared there. Built once at startup, never mutated.
type DomainRecord struct {
	Domain string `json:"domain"`
	Years  []int  `json:"years_popular"`
}

// ProbeResult holds the outcome of one HTTP probe sequence against a domain
type ProbeResult struct {
	StatusCode   int    `json:"http_status_code,omitempty"`
	HasStatus    bool   `json:"-"`
	FinalURL     string `json:"final_url,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	PageTitle    string `json:"page_title,omitempty"`
	BodyText     string `json:"-"`
	IsParked     bool   `json:"is_parked"`
	IsForSale    bool   `json:"is_for_sale"`
	SalePlatform string `json:"sale_platform,omitempty"`
	Error        string `json:"error,omitempty"`
}

// WhoisRecord is normalized registration data. Empty string / empty slice
// means the field is unknown, not present-but-blank.
type WhoisRecord struct {
	Registrar       string   `json:"registrar,omitempty"`
	CreationDate    string   `json:"creation_date,omitempty"`
	ExpirationDate  string   `json:"expiration_date,omitempty"`
	NameServers     []string `json:"name_servers,omitempty"`
	Registrant      string   `json:"registrant,omitempty"`
	RegistrantEmail string   `json:"registrant_email,omitempty"`
}

// Empty reports whether the record carries no registration signal at all
func (w WhoisRecord) Empty() bool {
	return w.Registrar == "" &&
		w.CreationDate == "" &&
		w.ExpirationDate == "" &&
		len(w.NameServers) == 0
}

// Recommendation is the acquisition-worthiness assessment for a domain
type Recommendation struct {
	Score          int    `json:"score"`
	Reason         string `json:"reason"`
	EstimatedValue string `json:"estimated_value"`
}

// CheckResult is the full per-domain record written to the report
type CheckResult struct {
	Domain         string         `json:"domain"`
	YearsPopular   []int          `json:"years_popular"`
	Status         Status         `json:"status"`
	HTTPStatusCode *int           `json:"http_status_code"`
	RedirectURL    string         `json:"redirect_url,omitempty"`
	PageTitle      string         `json:"page_title,omitempty"`
	IsParked       bool           `json:"is_parked"`
	IsForSale      bool           `json:"is_for_sale"`
	SalePlatform   string         `json:"sale_platform,omitempty"`
	Error          string         `json:"error,omitempty"`
	Whois          WhoisRecord    `json:"whois"`
	Recommendation Recommendation `json:"recommendation"`
	CheckedAt      time.Time      `json:"checked_at"`
}
