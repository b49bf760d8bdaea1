// Package datasets holds the compiled-in named-point tables used as
// sampling sources. The tables are never handed out directly: every
// accessor returns a copy, so the process-wide data stays immutable.
package datasets

import (
	"fmt"
	"strings"

	"wasi-apps/internal/domain"
)

var ErrUnknownDataset = fmt.Errorf("unknown dataset: %w", domain.ErrInvalidArgument)

const (
	NameWG59   = "wg59"
	NameSGB128 = "sgb128"
)

// Describes a fixed, named table of points.
type Dataset struct {
	Name        string
	Description string
	points      []domain.NamedPoint
}

// Len reports the number of entries without copying.
func (d Dataset) Len() int { return len(d.points) }

// Points returns a fresh copy of the table.
func (d Dataset) Points() []domain.NamedPoint {
	out := make([]domain.NamedPoint, len(d.points))
	copy(out, d.points)
	return out
}

var registry = []Dataset{
	{Name: NameWG59, Description: "59 cities in West Germany", points: wg59[:]},
	{Name: NameSGB128, Description: "128 cities in North America", points: sgb128[:]},
}

func WG59() Dataset   { return registry[0] }
func SGB128() Dataset { return registry[1] }

// Lookup resolves a dataset by case-insensitive name.
func Lookup(name string) (Dataset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range registry {
		if d.Name == key {
			return d, nil
		}
	}
	return Dataset{}, fmt.Errorf("lookup dataset %q: %w (known: %s)", name, ErrUnknownDataset, strings.Join(Names(), ", "))
}

// Names lists the registered datasets in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}
