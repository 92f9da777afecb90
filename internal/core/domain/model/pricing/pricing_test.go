package pricing_test

import (
	"testing"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, affiliate, model string, components []pricing.Component, price int64) *pricing.PriceEntry {
	t.Helper()
	e, err := pricing.NewPriceEntry(kernel.NewUUID(), affiliate, model, components, decimal.NewFromInt(price), decimal.NewFromInt(150000))
	require.NoError(t, err)
	return e
}

func TestParseComponents(t *testing.T) {
	t.Run("should parse a SET definition", func(t *testing.T) {
		components, err := pricing.ParseComponents(" indoor : AR07-IN ; outdoor:AR07-OUT; ")

		require.NoError(t, err)
		assert.Equal(t, []pricing.Component{
			{Name: "indoor", ModelName: "AR07-IN"},
			{Name: "outdoor", ModelName: "AR07-OUT"},
		}, components)
		assert.Equal(t, "indoor:AR07-IN;outdoor:AR07-OUT", pricing.FormatComponents(components))
	})

	t.Run("should treat blank as a single model", func(t *testing.T) {
		components, err := pricing.ParseComponents("  ")

		require.NoError(t, err)
		assert.Empty(t, components)
	})

	t.Run("should reject parts without a model", func(t *testing.T) {
		_, err := pricing.ParseComponents("indoor:AR07-IN;outdoor")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"outdoor" is not name:model`)
	})
}

func TestNewPriceEntry(t *testing.T) {
	t.Run("should create a SET entry", func(t *testing.T) {
		e := mustEntry(t, " ", " AR07-SET ", []pricing.Component{{Name: "indoor", ModelName: "AR07-IN"}}, 1500000)

		require.NoError(t, e.Validate())
		assert.Empty(t, e.Affiliate())
		assert.Equal(t, "AR07-SET", e.ModelName())
		assert.True(t, e.IsSet())
		assert.True(t, e.UnitPrice().Equal(decimal.NewFromInt(1500000)))
		assert.True(t, e.InstallPrice().Equal(decimal.NewFromInt(150000)))
	})

	t.Run("should join validation errors", func(t *testing.T) {
		e, err := pricing.NewPriceEntry(kernel.UUID{}, "", "", nil, decimal.NewFromInt(-1), decimal.NewFromInt(-2))

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: modelName")
		assert.Contains(t, err.Error(), "unitPrice")
		assert.Contains(t, err.Error(), "installPrice")
	})
}

func TestCatalog_Lookup(t *testing.T) {
	defaultSet := mustEntry(t, "", "AR07-SET", []pricing.Component{
		{Name: "indoor", ModelName: "AR07-IN"},
		{Name: "outdoor", ModelName: "AR07-OUT"},
	}, 1500000)
	affiliateSet := mustEntry(t, "Samsung Store", "AR07-SET", nil, 1400000)
	wall := mustEntry(t, "", "AR06-WALL", nil, 700000)

	catalog, err := pricing.NewCatalog([]*pricing.PriceEntry{defaultSet, affiliateSet, wall})
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	t.Run("should prefer the affiliate price", func(t *testing.T) {
		e, err := catalog.Lookup("samsung store", "ar07-set")

		require.NoError(t, err)
		assert.Same(t, affiliateSet, e)
	})

	t.Run("should fall back to the default price", func(t *testing.T) {
		e, err := catalog.Lookup("Mellea", "AR06-WALL ")

		require.NoError(t, err)
		assert.Same(t, wall, e)
	})

	t.Run("should report unknown models", func(t *testing.T) {
		_, err := catalog.Lookup("Mellea", "AR99")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := pricing.NewCatalog([]*pricing.PriceEntry{
		mustEntry(t, "", "AR06-WALL", nil, 1),
		mustEntry(t, "", "ar06-wall", nil, 2),
	})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "duplicate entry")
}

func TestNewCatalog_RejectsUnconstructedEntries(t *testing.T) {
	_, err := pricing.NewCatalog([]*pricing.PriceEntry{{}})

	assert.Equal(t, pricing.ErrPriceEntryIsNotConstructed, err)
}
