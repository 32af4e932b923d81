package console

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/turismo/backoffice-console/internal/realtime"
)

// DefaultPath is where "/" sends the operator.
const DefaultPath = "/customers"

// Options configures the console.
type Options struct {
	// Hub enables the live list endpoints. Nil disables them.
	Hub *realtime.Hub
	// Location is the zone calendar dates are read in.
	Location *time.Location
	// AllowedOrigins restricts websocket upgrades; empty allows all.
	AllowedOrigins []string
}

// MenuEntry is one resource of the side menu.
type MenuEntry struct {
	Label     string
	ViewLabel string
	NewLabel  string
	Path      string
}

type mounter interface {
	path() string
	routes() chi.Router
}

// Console hosts the screens of every registered resource.
type Console struct {
	hub      *realtime.Hub
	loc      *time.Location
	upgrader websocket.Upgrader

	menu      []MenuEntry
	resources []mounter
}

// New creates an empty console. Resources are added with Register.
func New(opts Options) *Console {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	allowed := opts.AllowedOrigins

	return &Console{
		hub: opts.Hub,
		loc: loc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(allowed) == 0 || origin == "" {
					return true
				}
				for _, a := range allowed {
					if origin == a || "http://"+r.Host == origin || "https://"+r.Host == origin {
						return true
					}
				}
				log.Warn().Str("origin", origin).Msg("WebSocket origin rejected")
				return false
			},
		},
	}
}

// Menu returns the side menu entries in registration order.
func (c *Console) Menu() []MenuEntry {
	out := make([]MenuEntry, len(c.menu))
	copy(out, c.menu)
	return out
}

// Mount adds the console routes to r.
func (c *Console) Mount(r chi.Router) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DefaultPath, http.StatusFound)
	})
	for _, res := range c.resources {
		r.Mount(res.path(), res.routes())
	}
}

func (c *Console) liveEnabled() bool {
	return c.hub != nil
}
