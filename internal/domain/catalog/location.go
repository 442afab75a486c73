package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyLocationName = errors.New("location name cannot be empty")

// Location is an airport served by the comparison site.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Terminals []string  `json:"terminals,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Location) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyLocationName
	}
	return nil
}
