package transport

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Write is the request body of create and update.
type Write struct {
	Type          string `json:"type"`
	Company       string `json:"company"`
	DestinationID int64  `json:"destination_id"`
}

// Read is a transport with its destination expanded.
type Read struct {
	ID          int64    `json:"id"`
	Type        string   `json:"type"`
	Company     string   `json:"company"`
	Destination wire.Ref `json:"destination"`
}

func (r Read) ToWrite() Write {
	return Write{Type: r.Type, Company: r.Company, DestinationID: r.Destination.ID}
}

func (r Read) Identifier() int64 {
	return r.ID
}
