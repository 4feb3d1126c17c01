package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/models"
)

const testSecret = "test-secret"

// newTestAuth wires an api.Auth against an in-memory session store
func newTestAuth() (api.Auth, databases.SessionDatabase) {
	sessions := databases.NewMemorySessionDatabase()
	return api.Auth{Sessions: sessions, Secret: []byte(testSecret)}, sessions
}

// loginAs persists a session for the given identity and returns its bearer token
func loginAs(t *testing.T, a api.Auth, sessions databases.SessionDatabase, identity models.Identity) string {
	t.Helper()

	session := models.Session{
		ID:        uuid.New().String(),
		Identity:  identity,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, sessions.Save(context.Background(), session))

	token, err := a.TokenFor(session)
	require.NoError(t, err)
	return token
}

func adminIdentity() models.Identity {
	return models.Identity{ID: "1", Email: "admin@mppolice.gov.in", Name: "Administrator", Role: models.RoleAdmin, Badge: "ADM001"}
}

func investigatorIdentity() models.Identity {
	return models.Identity{ID: "2", Email: "investigator@mppolice.gov.in", Name: "Officer Rajesh Kumar", Role: models.RoleInvestigator, Badge: "INV001"}
}
