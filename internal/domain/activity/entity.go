package activity

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Write is the request body of create and update.
type Write struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	ExtraCost   wire.Amount `json:"extra_cost"`
	ItineraryID int64       `json:"itinerary_id"`
}

// Read is an activity with its itinerary day expanded.
type Read struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	ExtraCost   wire.Amount `json:"extra_cost"`
	Itinerary   wire.Ref    `json:"itinerary"`
}

func (r Read) ToWrite() Write {
	return Write{
		Name:        r.Name,
		Description: r.Description,
		ExtraCost:   r.ExtraCost,
		ItineraryID: r.Itinerary.ID,
	}
}

func (r Read) Identifier() int64 {
	return r.ID
}
