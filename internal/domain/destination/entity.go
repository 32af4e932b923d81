package destination

// Write is the request body of create and update.
type Write struct {
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// Summary is an accommodation or transport listed under its destination.
type Summary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name,omitempty"`
	Type    string `json:"type,omitempty"`
	Company string `json:"company,omitempty"`
}

// Read is a destination as returned by the backend.
type Read struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Country        string    `json:"country,omitempty"`
	City           string    `json:"city,omitempty"`
	Accommodations []Summary `json:"accommodations,omitempty"`
	Transports     []Summary `json:"transports,omitempty"`
}

// ToWrite drops the read-only summaries.
func (r Read) ToWrite() Write {
	return Write{Name: r.Name, Country: r.Country, City: r.City}
}

func (r Read) Identifier() int64 {
	return r.ID
}

// Place is "City, Country" with empty parts left out.
func (r Read) Place() string {
	switch {
	case r.City != "" && r.Country != "":
		return r.City + ", " + r.Country
	case r.City != "":
		return r.City
	}
	return r.Country
}
