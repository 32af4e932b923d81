package itinerary

import (
	"strconv"

	"github.com/turismo/backoffice-console/internal/pkg/wire"
)

// Write is the request body of create and update.
type Write struct {
	Day         int    `json:"day"`
	Description string `json:"description,omitempty"`
	PlanID      int64  `json:"plan_id"`
}

// Read is an itinerary day with its plan expanded.
type Read struct {
	ID          int64    `json:"id"`
	Day         int      `json:"day"`
	Description string   `json:"description,omitempty"`
	Plan        wire.Ref `json:"plan"`
}

func (r Read) ToWrite() Write {
	return Write{Day: r.Day, Description: r.Description, PlanID: r.Plan.ID}
}

func (r Read) Identifier() int64 {
	return r.ID
}

// Title is "Día N - Plan", used wherever an itinerary is picked.
func (r Read) Title() string {
	title := "Día " + strconv.Itoa(r.Day)
	if plan := r.Plan.Label(); plan != "" {
		title += " - " + plan
	}
	return title
}
