package guide

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Write is the request body of create and update.
type Write struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
	PlanID   int64  `json:"plan_id"`
}

// Read is a guide with its plan expanded.
type Read struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Language string   `json:"language"`
	Plan     wire.Ref `json:"plan"`
}

func (r Read) ToWrite() Write {
	return Write{Name: r.Name, Phone: r.Phone, Language: r.Language, PlanID: r.Plan.ID}
}

func (r Read) Identifier() int64 {
	return r.ID
}
