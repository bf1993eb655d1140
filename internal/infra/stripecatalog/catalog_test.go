package stripecatalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1750), ToMinorUnits(decimal.RequireFromString("17.5")))
	assert.Equal(t, int64(1334), ToMinorUnits(decimal.RequireFromString("13.335")))
	assert.Equal(t, int64(0), ToMinorUnits(decimal.Zero))
}

func TestSyncCatalogNeedsKey(t *testing.T) {
	_, err := SyncCatalog("", "artist-1", []CatalogItem{{SKU: "A"}})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
