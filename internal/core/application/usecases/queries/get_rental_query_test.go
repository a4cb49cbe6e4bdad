package queries_test

import (
	"testing"
	"time"

	"rentmoto/internal/core/application/usecases/queries"
	"rentmoto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRentalIdentifier(t *testing.T) {
	t.Run("should parse public identifiers", func(t *testing.T) {
		cases := map[string]int{
			"locacao1":    1,
			"locacao42":   42,
			" locacao7 ":  7,
			"123":         123,
		}

		for raw, want := range cases {
			id, err := queries.ParseRentalIdentifier(raw)

			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, want, id, "raw %q", raw)
		}
	})

	t.Run("should reject malformed identifiers", func(t *testing.T) {
		for _, raw := range []string{"", "locacao", "locacao0", "locacao-1", "aluguel5", "locacaoabc"} {
			_, err := queries.ParseRentalIdentifier(raw)

			require.Error(t, err, "raw %q", raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestNewGetRentalQuery(t *testing.T) {
	q, err := queries.NewGetRentalQuery("locacao5")

	require.NoError(t, err)
	require.NoError(t, q.Validate())
	assert.Equal(t, 5, q.RentalID())
}

func TestNewPreviewReturnQuery(t *testing.T) {
	ret := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("should carry parsed id and instant", func(t *testing.T) {
		q, err := queries.NewPreviewReturnQuery("locacao5", ret)

		require.NoError(t, err)
		assert.Equal(t, 5, q.RentalID())
		assert.Equal(t, ret, q.ReturnInstant())
	})

	t.Run("should reject zero instant", func(t *testing.T) {
		var zero time.Time

		_, err := queries.NewPreviewReturnQuery("locacao5", zero)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewGetMotorcyclesQuery_NormalizesFilter(t *testing.T) {
	q := queries.NewGetMotorcyclesQuery("abc-1d23")

	require.NoError(t, q.Validate())
	assert.Equal(t, "ABC1D23", q.PlateFilter())

	empty := queries.NewGetMotorcyclesQuery("")
	assert.Empty(t, empty.PlateFilter())
}
