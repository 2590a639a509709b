package processor

import (
	"fmt"

	"github.com/gabriel-briffe/openaip-airspace/internal/openair"
)

// Record is a block's normalized metadata.
type Record struct {
	Name    string
	Class   openair.Class
	Floor   openair.Altitude
	Ceiling openair.Altitude
}

// NormalizeRecord maps a block's metadata records into the canonical
// schema. An unknown class code degrades to OTHER; an unparseable
// altitude is fatal for the block only. Missing limits default to the
// full SFC..UNLIMITED column.
func NormalizeRecord(b openair.Block) (Record, error) {
	rec := Record{
		Name:    b.Name(),
		Class:   openair.ParseClass(b.ClassCode()),
		Floor:   openair.Altitude{Reference: openair.RefSFC},
		Ceiling: openair.Altitude{Reference: openair.RefUnlimited},
	}

	if raw, ok := b.Field(openair.TagFloor); ok {
		floor, err := openair.ParseAltitude(raw)
		if err != nil {
			return Record{}, fmt.Errorf("block %q: floor: %w", rec.Name, err)
		}
		rec.Floor = floor
	}
	if raw, ok := b.Field(openair.TagCeiling); ok {
		ceiling, err := openair.ParseAltitude(raw)
		if err != nil {
			return Record{}, fmt.Errorf("block %q: ceiling: %w", rec.Name, err)
		}
		rec.Ceiling = ceiling
	}

	return rec, nil
}
