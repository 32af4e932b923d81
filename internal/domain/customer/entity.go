package customer

import "strings"

// Write is the request body of create and update.
type Write struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Read is a customer as returned by the backend.
type Read struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func (r Read) ToWrite() Write {
	return Write{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, Phone: r.Phone}
}

func (r Read) Identifier() int64 {
	return r.ID
}

// FullName is "first last".
func (r Read) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}
