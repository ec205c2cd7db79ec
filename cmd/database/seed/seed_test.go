package seed

import (
	"Food-Sharing-Platform/entities"
	"Food-Sharing-Platform/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_OnlyWhenEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var rows []entities.Food
	require.NoError(t, db.Order("name").Find(&rows).Error)
	require.Len(t, rows, 3)
	assert.Equal(t, "Mercimek Çorbası", rows[0].Name)
	assert.Equal(t, "yakinda", rows[0].Status)
	assert.Equal(t, "6 porsiyon", rows[2].Quantity)
	assert.Nil(t, rows[2].OwnerEmail)
}
