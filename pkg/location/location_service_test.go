package location

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.CreateUser(t, db, "a@x.com", "pw", domain.RoleGiver)
	testutil.CreateUser(t, db, "b@x.com", "pw", domain.RoleTaker)
	svc := NewLocationService(NewLocationRepository(db))

	first, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{Title: "Ev", Region: "Düzce", District: "Merkez"}, "a@x.com")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{Title: "İş", Region: "Düzce", District: "Konuralp", Street: "Okul Sk."}, "a@x.com")
	require.NoError(t, err)

	list, err := svc.GetLocations(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	other, err := svc.GetLocations(ctx, "b@x.com")
	require.NoError(t, err)
	assert.Empty(t, other)

	err = svc.DeleteLocation(ctx, first.ID, "b@x.com")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteLocation(ctx, first.ID, "a@x.com"))
	assert.ErrorIs(t, svc.DeleteLocation(ctx, first.ID, "a@x.com"), domain.ErrLocationNotFound)
	assert.ErrorIs(t, svc.DeleteLocation(ctx, uuid.NewString(), "a@x.com"), domain.ErrLocationNotFound)
	assert.ErrorIs(t, svc.DeleteLocation(ctx, "42", "a@x.com"), domain.ErrLocationNotFound)
}

func TestLocationService_RequiresRegionAndDistrict(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewLocationService(NewLocationRepository(db))

	_, err := svc.CreateLocation(context.Background(), domain.CreateLocationRequest{Region: "Düzce"}, "a@x.com")

	assert.ErrorIs(t, err, domain.ErrMissingRegion)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocationService_CascadesWithUser(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "a@x.com", "pw", domain.RoleGiver)
	svc := NewLocationService(NewLocationRepository(db))

	_, err := svc.CreateLocation(ctx, domain.CreateLocationRequest{Region: "Düzce", District: "Merkez"}, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, db.Delete(user).Error)

	list, err := svc.GetLocations(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, list)
}
