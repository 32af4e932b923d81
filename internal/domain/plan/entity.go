package plan

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Write is the request body of create and update.
type Write struct {
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty"`
	BasePrice     wire.Amount `json:"base_price"`
	DestinationID int64       `json:"destination_id"`
}

// ItinerarySummary is one day of the plan.
type ItinerarySummary struct {
	ID          int64  `json:"id"`
	Day         int    `json:"day"`
	Description string `json:"description,omitempty"`
}

// GuideSummary is a guide assigned to the plan.
type GuideSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

// Read is a plan with its destination expanded.
type Read struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	BasePrice   wire.Amount        `json:"base_price"`
	Destination wire.Ref           `json:"destination"`
	Itineraries []ItinerarySummary `json:"itineraries,omitempty"`
	Guides      []GuideSummary     `json:"guides,omitempty"`
}

func (r Read) ToWrite() Write {
	return Write{
		Name:          r.Name,
		Description:   r.Description,
		BasePrice:     r.BasePrice,
		DestinationID: r.Destination.ID,
	}
}

func (r Read) Identifier() int64 {
	return r.ID
}
