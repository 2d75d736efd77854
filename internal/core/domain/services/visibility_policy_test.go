package services_test

import (
	"math/rand/v2"
	"testing"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityPolicy_CanSee(t *testing.T) {
	policy := services.NewVisibilityPolicy()
	assigned := order.Ownership{UserID: clientID, VendorID: &vendorID}
	unassigned := order.Ownership{UserID: clientID}

	testCases := []struct {
		name   string
		actor  actor.Actor
		owner  order.Ownership
		expect bool
	}{
		{"admin sees any order", admin(t), unassigned, true},
		{"client sees own order", client(t), assigned, true},
		{"client does not see foreign order", mustActor(t, otherClientID, actor.Client, nil), assigned, false},
		{"vendor sees assigned order", vendor(t, &vendorID), assigned, true},
		{"vendor does not see other vendor's order", vendor(t, &otherVendorID), assigned, false},
		{"vendor does not see unassigned order", vendor(t, &vendorID), unassigned, false},
		{"unlinked vendor sees nothing", vendor(t, nil), assigned, false},
		{"unconstructed actor sees nothing", actor.Actor{}, assigned, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, policy.CanSee(tc.actor, tc.owner))
		})
	}
}

func TestVisibilityPolicy_ClientSeesExactlyOwnOrders(t *testing.T) {
	policy := services.NewVisibilityPolicy()
	rng := rand.New(rand.NewPCG(42, 1024))

	for i := 0; i < 1000; i++ {
		actorID := kernel.MustNewID(rng.Int64N(50) + 1)
		ownerID := kernel.MustNewID(rng.Int64N(50) + 1)
		var vendorRef *kernel.ID
		if rng.IntN(2) == 0 {
			v := kernel.MustNewID(rng.Int64N(5) + 1)
			vendorRef = &v
		}

		a := mustActor(t, actorID, actor.Client, nil)
		owner := order.Ownership{UserID: ownerID, VendorID: vendorRef}

		require.Equal(t, actorID.IsEqual(ownerID), policy.CanSee(a, owner),
			"actor %s owner %s", actorID, ownerID)
	}
}

func TestVisibilityPolicy_RequireCanSee(t *testing.T) {
	policy := services.NewVisibilityPolicy()
	owner := order.Ownership{UserID: clientID, VendorID: &vendorID}

	require.NoError(t, policy.RequireCanSee(client(t), owner))

	err := policy.RequireCanSee(mustActor(t, otherClientID, actor.Client, nil), owner)
	require.ErrorIs(t, err, errs.ErrForbidden)

	err = policy.RequireCanSee(vendor(t, nil), owner)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), "vendor account is not linked")
}

func TestVisibilityPolicy_Scope(t *testing.T) {
	policy := services.NewVisibilityPolicy()
	status := order.Ready
	requested := order.Filter{
		UserID:    &otherClientID,
		VendorID:  &otherVendorID,
		ServiceID: &serviceID,
		Status:    &status,
	}

	t.Run("admin keeps every filter", func(t *testing.T) {
		scoped, err := policy.Scope(admin(t), requested)

		require.NoError(t, err)
		assert.Equal(t, requested, scoped)
	})

	t.Run("client is pinned to itself", func(t *testing.T) {
		scoped, err := policy.Scope(client(t), requested)

		require.NoError(t, err)
		require.NotNil(t, scoped.UserID)
		assert.True(t, scoped.UserID.IsEqual(clientID))
		assert.Nil(t, scoped.VendorID)
		assert.Equal(t, &serviceID, scoped.ServiceID)
		assert.Equal(t, &status, scoped.Status)
	})

	t.Run("vendor is pinned to its vendor", func(t *testing.T) {
		scoped, err := policy.Scope(vendor(t, &vendorID), requested)

		require.NoError(t, err)
		assert.Nil(t, scoped.UserID)
		require.NotNil(t, scoped.VendorID)
		assert.True(t, scoped.VendorID.IsEqual(vendorID))
		assert.Equal(t, &status, scoped.Status)
	})

	t.Run("unlinked vendor is forbidden", func(t *testing.T) {
		_, err := policy.Scope(vendor(t, nil), order.Filter{})
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
