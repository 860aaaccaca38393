package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, status ServiceOrderStatus) *ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder(ServiceOrder{
		ID:        7,
		ClientID:  1,
		VehicleID: 42,
		Services:  ServiceRefs([]int64{1, 2}),
		CreatedAt: time.Now().UTC(),
		Status:    status,
	})
	require.NoError(t, err)
	return &o
}

func TestNewServiceOrder_Invariants(t *testing.T) {
	now := time.Now().UTC()
	valid := ServiceOrder{ClientID: 1, VehicleID: 2, Services: ServiceRefs([]int64{1}), CreatedAt: now, Status: ServiceOrderStatusReceived}

	cases := []struct {
		name   string
		mutate func(o *ServiceOrder)
	}{
		{name: "missing client", mutate: func(o *ServiceOrder) { o.ClientID = 0 }},
		{name: "negative client", mutate: func(o *ServiceOrder) { o.ClientID = -1 }},
		{name: "missing vehicle", mutate: func(o *ServiceOrder) { o.VehicleID = 0 }},
		{name: "no services", mutate: func(o *ServiceOrder) { o.Services = nil }},
		{name: "missing created at", mutate: func(o *ServiceOrder) { o.CreatedAt = time.Time{} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := valid
			tc.mutate(&o)
			_, err := NewServiceOrder(o)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}

	t.Run("valid order with no supplies", func(t *testing.T) {
		o, err := NewServiceOrder(valid)
		require.NoError(t, err)
		assert.Empty(t, o.Supplies)
		assert.Nil(t, o.FinalizedAt)
	})
}

func TestServiceOrder_LineItemsOnlyDuringDiagnosis(t *testing.T) {
	for _, status := range AllServiceOrderStatuses {
		t.Run(string(status), func(t *testing.T) {
			o := newTestOrder(t, status)
			errServices := o.UpdateServices(ServiceRefs([]int64{9}))
			errSupplies := o.UpdateSupplies(SupplyRefs([]int64{5}))

			if status == ServiceOrderStatusInDiagnosis {
				require.NoError(t, errServices)
				require.NoError(t, errSupplies)
				assert.Equal(t, []int64{9}, ServiceLineIDs(o.Services))
				assert.Equal(t, []int64{5}, SupplyLineIDs(o.Supplies))
				return
			}

			assert.True(t, IsValidationError(errServices), "services: %v", errServices)
			assert.True(t, IsValidationError(errSupplies), "supplies: %v", errSupplies)
			assert.Equal(t, []int64{1, 2}, ServiceLineIDs(o.Services))
			assert.Empty(t, o.Supplies)
		})
	}
}

func TestServiceOrder_UpdateServicesRejectsEmptyList(t *testing.T) {
	o := newTestOrder(t, ServiceOrderStatusInDiagnosis)
	err := o.UpdateServices(nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Len(t, o.Services, 2)
}

func TestServiceOrder_TransitionLegality(t *testing.T) {
	transitions := []struct {
		name string
		from ServiceOrderStatus
		to   ServiceOrderStatus
		call func(o *ServiceOrder) error
	}{
		{"start diagnosis", ServiceOrderStatusReceived, ServiceOrderStatusInDiagnosis, (*ServiceOrder).StartDiagnosis},
		{"submit for approval", ServiceOrderStatusInDiagnosis, ServiceOrderStatusWaitingForApproval, (*ServiceOrder).SubmitForApproval},
		{"approve", ServiceOrderStatusWaitingForApproval, ServiceOrderStatusApproved, (*ServiceOrder).ApproveOrder},
		{"start execution", ServiceOrderStatusApproved, ServiceOrderStatusInProgress, (*ServiceOrder).StartExecution},
		{"finalize", ServiceOrderStatusInProgress, ServiceOrderStatusFinished, (*ServiceOrder).FinalizeOrder},
		{"deliver", ServiceOrderStatusFinished, ServiceOrderStatusDelivered, (*ServiceOrder).DeliverOrder},
	}

	for _, tr := range transitions {
		for _, from := range AllServiceOrderStatuses {
			t.Run(tr.name+" from "+string(from), func(t *testing.T) {
				o := newTestOrder(t, from)
				err := tr.call(o)
				if from == tr.from {
					require.NoError(t, err)
					assert.Equal(t, tr.to, o.Status)
					return
				}
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), "order must be in state "+string(tr.from))
				assert.Equal(t, from, o.Status, "status must be unchanged")
			})
		}
	}
}

func TestServiceOrder_CancelFromEveryState(t *testing.T) {
	for _, status := range AllServiceOrderStatuses {
		t.Run(string(status), func(t *testing.T) {
			o := newTestOrder(t, status)
			require.NoError(t, o.CancelOrder())
			assert.Equal(t, ServiceOrderStatusCancelled, o.Status)
		})
	}

	t.Run("after delivery in the same run", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusFinished)
		require.NoError(t, o.DeliverOrder())
		require.NoError(t, o.CancelOrder())
		assert.Equal(t, ServiceOrderStatusCancelled, o.Status)
	})
}

func TestServiceOrder_FinalizeDeliverRoundTrip(t *testing.T) {
	o := newTestOrder(t, ServiceOrderStatusInProgress)
	require.Nil(t, o.FinalizedAt)

	require.NoError(t, o.FinalizeOrder())
	assert.Equal(t, ServiceOrderStatusFinished, o.Status)
	require.NotNil(t, o.FinalizedAt)
	assert.False(t, o.FinalizedAt.IsZero())

	require.NoError(t, o.DeliverOrder())
	assert.Equal(t, ServiceOrderStatusDelivered, o.Status)

	err := o.FinalizeOrder()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestServiceOrder_ApplyTransition(t *testing.T) {
	t.Run("walks the whole lifecycle", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusReceived)
		finishedAt := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

		steps := []ServiceOrderStatus{
			ServiceOrderStatusInDiagnosis,
			ServiceOrderStatusWaitingForApproval,
			ServiceOrderStatusApproved,
			ServiceOrderStatusInProgress,
			ServiceOrderStatusFinished,
			ServiceOrderStatusDelivered,
		}
		for _, s := range steps {
			var at *time.Time
			if s == ServiceOrderStatusFinished {
				at = &finishedAt
			}
			require.NoError(t, o.ApplyTransition(s, at), "to %s", s)
			assert.Equal(t, s, o.Status)
		}
		require.NotNil(t, o.FinalizedAt)
		assert.True(t, o.FinalizedAt.Equal(finishedAt))
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusReceived)
		err := o.ApplyTransition(ServiceOrderStatusApproved, nil)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, ServiceOrderStatusReceived, o.Status)
	})

	t.Run("received is not a target", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusInDiagnosis)
		err := o.ApplyTransition(ServiceOrderStatusReceived, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusReceived)
		err := o.ApplyTransition(ServiceOrderStatus("PARKED"), nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("cancel records supplied timestamp", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusApproved)
		at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, o.ApplyTransition(ServiceOrderStatusCancelled, &at))
		require.NotNil(t, o.FinalizedAt)
		assert.True(t, o.FinalizedAt.Equal(at))
	})

	t.Run("cancel keeps finalized at without timestamp", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusReceived)
		require.NoError(t, o.ApplyTransition(ServiceOrderStatusCancelled, nil))
		assert.Nil(t, o.FinalizedAt)
	})

	t.Run("timestamp ignored for other targets", func(t *testing.T) {
		o := newTestOrder(t, ServiceOrderStatusReceived)
		at := time.Now().UTC()
		require.NoError(t, o.ApplyTransition(ServiceOrderStatusInDiagnosis, &at))
		assert.Nil(t, o.FinalizedAt)
	})
}

func TestServiceOrderStatus_Helpers(t *testing.T) {
	s, ok := ParseServiceOrderStatus(" in_progress ")
	require.True(t, ok)
	assert.Equal(t, ServiceOrderStatusInProgress, s)

	_, ok = ParseServiceOrderStatus("nope")
	assert.False(t, ok)

	assert.True(t, ServiceOrderStatusReceived.IsOpen())
	assert.True(t, ServiceOrderStatusWaitingForApproval.IsOpen())
	assert.False(t, ServiceOrderStatusFinished.IsOpen())
	assert.False(t, ServiceOrderStatusCancelled.IsOpen())
	assert.False(t, ServiceOrderStatusDelivered.IsOpen())

	assert.True(t, ServiceOrderStatusDelivered.IsTerminal())
	assert.False(t, ServiceOrderStatusFinished.IsTerminal())
}
