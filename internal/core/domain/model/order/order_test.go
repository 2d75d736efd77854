package order_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	clientID  = kernel.MustNewID(1)
	adminID   = kernel.MustNewID(2)
	vendorUID = kernel.MustNewID(3)
	serviceID = kernel.MustNewID(10)
	vendorID  = kernel.MustNewID(20)
	now       = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	pricing, err := order.NewPricing(1000, 100, 1100)
	require.NoError(t, err)
	o, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(`{"rooms":2}`), nil)
	require.NoError(t, err)
	require.NoError(t, o.SetPersistedID(kernel.MustNewID(100), now))
	return o
}

func lastChange(o *order.Order) order.StatusChange {
	changes := o.PendingChanges()
	return changes[len(changes)-1]
}

func TestNewOrder(t *testing.T) {
	pricing, _ := order.NewPricing(1000, 100, 1100)
	due := now.Add(48 * time.Hour)

	t.Run("should create NEW order with initial history by the client", func(t *testing.T) {
		o, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(` {"a":1} `), &due)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.VendorID())
		assert.Nil(t, o.Cancellation())
		assert.JSONEq(t, `{"a":1}`, string(o.Params()))
		assert.Equal(t, due, *o.DueAt())
		require.Len(t, o.PendingChanges(), 1)
		assert.Equal(t, order.StatusChange{Status: order.New, ChangedBy: clientID}, o.PendingChanges()[0])
	})

	t.Run("should require ids and a JSON object", func(t *testing.T) {
		_, err := order.NewOrder(kernel.ID{}, kernel.ID{}, pricing, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "service id")
		assert.Contains(t, err.Error(), "params")
	})

	t.Run("should reject params that are not an object", func(t *testing.T) {
		for _, raw := range []string{`[]`, `"x"`, `null`, `{`, `12`} {
			_, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(raw), nil)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_SetPersistedID(t *testing.T) {
	o := newOrder(t)

	assert.Equal(t, int64(100), o.ID().Int64())
	assert.Equal(t, now, o.CreatedAt())
	require.ErrorIs(t, o.SetPersistedID(kernel.MustNewID(101), now), order.ErrOrderIDAlreadySet)
}

func TestOrder_Lifecycle(t *testing.T) {
	o := newOrder(t)
	o.ClearPendingChanges()

	require.NoError(t, o.AssignVendor(vendorID, adminID, "  first pick  "))
	assert.Equal(t, order.Assigned, o.Status())
	assert.True(t, o.VendorID().IsEqual(vendorID))
	require.NotNil(t, lastChange(o).Note)
	assert.Equal(t, "first pick", *lastChange(o).Note)

	require.NoError(t, o.Accept(vendorUID, "   "))
	assert.Equal(t, order.InProgress, o.Status())
	assert.Nil(t, lastChange(o).Note)

	require.NoError(t, o.ChangeStatus(order.Delivered, vendorUID, ""))
	assert.Equal(t, order.Delivered, o.Status())

	err := o.Cancel(clientID, actor.Client, "changed my mind", now)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Nil(t, o.Cancellation())

	require.Len(t, o.PendingChanges(), 3)
	assert.Equal(t, o.Status(), lastChange(o).Status)
}

func TestOrder_Reject(t *testing.T) {
	t.Run("should cancel by vendor from ASSIGNED", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))

		require.NoError(t, o.Reject(vendorUID, " too far ", now))

		assert.Equal(t, order.Cancelled, o.Status())
		c := o.Cancellation()
		require.NotNil(t, c)
		assert.Equal(t, actor.Vendor, c.ByRole)
		assert.Equal(t, vendorUID, c.ByUserID)
		assert.Equal(t, now, c.At)
		assert.Equal(t, "too far", *c.Reason)
		assert.Equal(t, order.StatusChange{Status: order.Cancelled, ChangedBy: vendorUID, Note: c.Reason}, lastChange(o))
	})

	t.Run("should refuse outside ASSIGNED", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
		require.NoError(t, o.Accept(vendorUID, ""))
		before := len(o.PendingChanges())

		err := o.Reject(vendorUID, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.InProgress, o.Status())
		assert.Len(t, o.PendingChanges(), before)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should record cancellation once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Cancel(clientID, actor.Client, "", now))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Nil(t, o.Cancellation().Reason)

		err := o.Cancel(adminID, actor.Admin, "again", now.Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, actor.Client, o.Cancellation().ByRole)
		assert.Equal(t, now, o.Cancellation().At)
	})

	t.Run("should bound reason length", func(t *testing.T) {
		o := newOrder(t)

		err := o.Cancel(clientID, actor.Client, strings.Repeat("x", order.NoteMaxLength+1), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.New, o.Status())
	})
}

func TestOrder_AssignVendor(t *testing.T) {
	t.Run("should overwrite vendor on reassignment", func(t *testing.T) {
		o := newOrder(t)
		other := kernel.MustNewID(21)

		require.NoError(t, o.AssignVendor(vendorID, adminID, ""))
		require.NoError(t, o.Accept(vendorUID, ""))
		require.NoError(t, o.AssignVendor(other, adminID, "reassigned"))

		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.VendorID().IsEqual(other))
	})

	t.Run("should leave terminal orders untouched", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.Cancel(adminID, actor.Admin, "", now))

		err := o.AssignVendor(vendorID, adminID, "")

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, o.VendorID())
	})
}

func TestOrder_LastChangeMatchesStatus(t *testing.T) {
	steps := []func(o *order.Order) error{
		func(o *order.Order) error { return o.AssignVendor(vendorID, adminID, "") },
		func(o *order.Order) error { return o.Accept(vendorUID, "") },
		func(o *order.Order) error { return o.ChangeStatus(order.Ready, vendorUID, "") },
		func(o *order.Order) error { return o.ChangeStatus(order.InProgress, adminID, "rework") },
		func(o *order.Order) error { return o.Cancel(adminID, actor.Admin, "", now) },
		func(o *order.Order) error { return o.ChangeStatus(order.Ready, adminID, "") },
	}

	o := newOrder(t)
	for i, step := range steps {
		_ = step(o)
		assert.Equal(t, o.Status(), lastChange(o).Status, "after step %d", i)
	}
	assert.Equal(t, order.Cancelled, o.Status())
}

func TestOrder_IsOverdue(t *testing.T) {
	pricing, _ := order.NewPricing(0, 0, 0)
	due := now.Add(-time.Minute)
	o, err := order.NewOrder(clientID, serviceID, pricing, json.RawMessage(`{}`), &due)
	require.NoError(t, err)

	assert.True(t, o.IsOverdue(now))
	assert.False(t, o.IsOverdue(due.Add(-time.Second)))

	require.NoError(t, o.Cancel(clientID, actor.Client, "", now))
	assert.False(t, o.IsOverdue(now))
}

func TestIsOverdueAt(t *testing.T) {
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	testCases := map[string]struct {
		status order.Status
		dueAt  *time.Time
		want   bool
	}{
		"live and past deadline":  {status: order.InProgress, dueAt: &past, want: true},
		"live and future":         {status: order.New, dueAt: &future, want: false},
		"deadline equal to now":   {status: order.Assigned, dueAt: &now, want: false},
		"no deadline":             {status: order.Ready, dueAt: nil, want: false},
		"delivered past deadline": {status: order.Delivered, dueAt: &past, want: false},
		"cancelled past deadline": {status: order.Cancelled, dueAt: &past, want: false},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, order.IsOverdueAt(tc.status, tc.dueAt, now))
		})
	}
}

func TestRestoreOrder(t *testing.T) {
	base := order.Snapshot{
		ID:         kernel.MustNewID(7),
		UserID:     clientID,
		ServiceID:  serviceID,
		Subtotal:   10,
		Commission: 1,
		Total:      11,
		Status:     order.Ready,
		VendorID:   &vendorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	t.Run("should restore without pending changes", func(t *testing.T) {
		o, err := order.RestoreOrder(base)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
		assert.Empty(t, o.PendingChanges())
		assert.JSONEq(t, `{}`, string(o.Params()))
	})

	t.Run("should reject corrupted pricing", func(t *testing.T) {
		s := base
		s.Total = 99
		_, err := order.RestoreOrder(s)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should require cancellation details for CANCELLED", func(t *testing.T) {
		s := base
		s.Status = order.Cancelled
		_, err := order.RestoreOrder(s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
