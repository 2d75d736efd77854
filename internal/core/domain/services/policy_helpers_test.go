package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	clientID      = kernel.MustNewID(1)
	otherClientID = kernel.MustNewID(2)
	adminID       = kernel.MustNewID(3)
	vendorUserID  = kernel.MustNewID(4)
	serviceID     = kernel.MustNewID(10)
	vendorID      = kernel.MustNewID(20)
	otherVendorID = kernel.MustNewID(21)
)

func mustActor(t *testing.T, id kernel.ID, role actor.Role, vendor *kernel.ID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role, vendor)
	require.NoError(t, err)
	return a
}

func client(t *testing.T) actor.Actor {
	return mustActor(t, clientID, actor.Client, nil)
}

func admin(t *testing.T) actor.Actor {
	return mustActor(t, adminID, actor.Admin, nil)
}

func vendor(t *testing.T, linked *kernel.ID) actor.Actor {
	return mustActor(t, vendorUserID, actor.Vendor, linked)
}

// orderIn builds an order placed by clientID and driven to status. Orders
// past NEW are assigned to vendorID.
func orderIn(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	pricing, err := order.NewPricing(100, 10, 110)
	require.NoError(t, err)
	o, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(`{}`), nil)
	require.NoError(t, err)

	switch status {
	case order.New:
	case order.Assigned:
		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
	case order.InProgress, order.Ready, order.Delivered:
		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
		require.NoError(t, o.ChangeStatus(status, adminID, ""))
	case order.Cancelled:
		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
		require.NoError(t, o.Cancel(adminID, actor.Admin, "", time.Now()))
	case order.Unknown:
		t.Fatalf("cannot build order in %s", status)
	}
	return o
}
