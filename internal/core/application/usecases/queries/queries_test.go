package queries_test

import (
	"testing"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetParcelBoardQuery(t *testing.T) {
	query := queries.NewGetParcelBoardQuery()
	assert.NoError(t, query.Validate())
}

func TestGetParcelBoardQuery_ValidateNotConstructed(t *testing.T) {
	var query queries.GetParcelBoardQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetParcelBoardQueryIsNotConstructed)
}

func TestNewGetMyParcelsQuery(t *testing.T) {
	identity, err := kernel.NewIdentity("owner@example.com")
	require.NoError(t, err)

	query, err := queries.NewGetMyParcelsQuery(identity)

	require.NoError(t, err)
	assert.True(t, identity.IsEqual(query.Requester()))
	assert.NoError(t, query.Validate())
}

func TestNewGetMyParcelsQuery_InvalidIdentity(t *testing.T) {
	_, err := queries.NewGetMyParcelsQuery(kernel.Identity{})
	require.Error(t, err)
}

func TestNewGetMyDeliveriesQuery(t *testing.T) {
	identity, err := kernel.NewIdentity("helper@example.com")
	require.NoError(t, err)

	query, err := queries.NewGetMyDeliveriesQuery(identity)

	require.NoError(t, err)
	assert.True(t, identity.IsEqual(query.Deliverer()))
	assert.NoError(t, query.Validate())
}

func TestNewGetNotificationsQuery_InvalidIdentity(t *testing.T) {
	_, err := queries.NewGetNotificationsQuery(kernel.Identity{})
	require.Error(t, err)
}

func TestNewGetFeedbackQuery(t *testing.T) {
	query := queries.NewGetFeedbackQuery()
	assert.NoError(t, query.Validate())
}
