package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// SetAddresses: invariante de dirección principal única
// ──────────────────────────────────────────────────────────────────────────────

func TestSetAddresses_DosPrincipales_Error(t *testing.T) {
	var u entity.UserAccount
	err := u.SetAddresses([]entity.Address{
		{StreetName: "Rua A", Primary: true},
		{StreetName: "Rua B", Primary: true},
	})
	assert.ErrorIs(t, err, entity.ErrMultiplePrimaryAddresses)
}

func TestSetAddresses_NingunaPrincipal_PromueveLaPrimera(t *testing.T) {
	var u entity.UserAccount
	err := u.SetAddresses([]entity.Address{
		{StreetName: "Rua A"},
		{StreetName: "Rua B"},
	})
	require.NoError(t, err)
	assert.True(t, u.Addresses[0].Primary)
	assert.False(t, u.Addresses[1].Primary)
}

func TestSetAddresses_UnaPrincipal_SeRespeta(t *testing.T) {
	var u entity.UserAccount
	err := u.SetAddresses([]entity.Address{
		{StreetName: "Rua A"},
		{StreetName: "Rua B", Primary: true},
	})
	require.NoError(t, err)
	assert.False(t, u.Addresses[0].Primary)
	assert.True(t, u.Addresses[1].Primary)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de la cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestPendingYCanAuthenticate(t *testing.T) {
	now := time.Now()
	u := entity.UserAccount{Enabled: false}
	u.Stamp("maria", now)
	u.Inactivate("maria", now)

	assert.True(t, u.Pending())
	assert.False(t, u.CanAuthenticate())

	u.Approve(true, "admin", now)
	assert.False(t, u.Pending())
	assert.True(t, u.CanAuthenticate())
	require.NotNil(t, u.InactivatedBy)
	assert.Equal(t, "admin", *u.InactivatedBy, "queda el rastro del aprobador")
	assert.Nil(t, u.InactivatedDate)
}

func TestApprove_Deshabilitar_NoTocaInactivacion(t *testing.T) {
	now := time.Now()
	u := entity.UserAccount{Enabled: true}
	u.Stamp("maria", now)

	u.Approve(false, "admin", now)
	assert.False(t, u.Enabled)
	assert.Nil(t, u.InactivatedDate, "deshabilitar no inactiva la fila")
	assert.False(t, u.CanAuthenticate())
}

func TestHasRole(t *testing.T) {
	u := entity.UserAccount{Roles: []string{entity.RoleClient, entity.RoleKitchen}}
	assert.True(t, u.HasRole(entity.RoleKitchen))
	assert.False(t, u.HasRole(entity.RoleAdmin))
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleWaiter))
	assert.False(t, entity.ValidRole("SUPERADMIN"))
	assert.False(t, entity.ValidRole("admin"), "los roles distinguen mayúsculas")
}
