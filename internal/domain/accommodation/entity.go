package accommodation

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Write is the request body of create and update.
type Write struct {
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Address       string `json:"address,omitempty"`
	DestinationID int64  `json:"destination_id"`
}

// Read is an accommodation with its destination expanded.
type Read struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Address     string   `json:"address,omitempty"`
	Destination wire.Ref `json:"destination"`
}

func (r Read) ToWrite() Write {
	return Write{
		Name:          r.Name,
		Type:          r.Type,
		Address:       r.Address,
		DestinationID: r.Destination.ID,
	}
}

func (r Read) Identifier() int64 {
	return r.ID
}
