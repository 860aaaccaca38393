package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"os-service-api/internal/domain/entities"
	mock_interfaces "os-service-api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type serviceOrderFixture struct {
	repo      *mock_interfaces.MockIServiceOrderRepository
	clients   *mock_interfaces.MockIClientRepository
	services  *mock_interfaces.MockIServiceRepository
	supplies  *mock_interfaces.MockISupplyRepository
	history   *mock_interfaces.MockIServiceOrderHistoryRepository
	publisher *mock_interfaces.MockIServiceOrderEventPublisher
	uc        *ServiceOrderUseCase
}

func newServiceOrderFixture(t *testing.T) *serviceOrderFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &serviceOrderFixture{
		repo:      mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		supplies:  mock_interfaces.NewMockISupplyRepository(ctrl),
		history:   mock_interfaces.NewMockIServiceOrderHistoryRepository(ctrl),
		publisher: mock_interfaces.NewMockIServiceOrderEventPublisher(ctrl),
	}
	f.uc = NewServiceOrderUseCase(f.repo, f.clients, f.services, f.supplies, f.history, f.publisher)
	return f
}

// catalog makes every id in ids resolvable in the service and supply catalogs.
func (f *serviceOrderFixture) catalog(serviceIDs, supplyIDs []int64) {
	for _, id := range serviceIDs {
		f.services.EXPECT().FindByID(gomock.Any(), id).Return(entities.Service{ID: id, Name: "svc", Price: 10}, nil).AnyTimes()
	}
	for _, id := range supplyIDs {
		f.supplies.EXPECT().FindByID(gomock.Any(), id).Return(entities.Supply{ID: id, Name: "sup", Quantity: 1}, nil).AnyTimes()
	}
}

func (f *serviceOrderFixture) sideEffects() {
	f.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func storedOrder(id int64, status entities.ServiceOrderStatus) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:        id,
		ClientID:  1,
		VehicleID: 42,
		Services:  entities.ServiceRefs([]int64{1, 2}),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    status,
		Version:   1,
	}
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	in := CreateServiceOrderInput{ClientIdentifier: "11144477735", VehicleID: 42, Services: []int64{1, 2}}

	t.Run("invalid vehicle id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceOrderInput{ClientIdentifier: "11144477735"})
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("invalid client identifier", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateServiceOrderInput{ClientIdentifier: "  ", VehicleID: 42})
		if !errors.Is(err, ErrInvalidClientIdentifier) {
			t.Fatalf("expected ErrInvalidClientIdentifier, got %v", err)
		}
	})

	t.Run("open order exists", func(t *testing.T) {
		for _, status := range []entities.ServiceOrderStatus{
			entities.ServiceOrderStatusReceived,
			entities.ServiceOrderStatusInDiagnosis,
			entities.ServiceOrderStatusWaitingForApproval,
			entities.ServiceOrderStatusApproved,
			entities.ServiceOrderStatusInProgress,
		} {
			t.Run(string(status), func(t *testing.T) {
				f := newServiceOrderFixture(t)
				f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(storedOrder(9, status), nil)

				_, err := f.uc.Create(context.Background(), in)
				if !errors.Is(err, entities.ErrOpenServiceOrderExists) || !entities.IsConflictError(err) {
					t.Fatalf("expected open order conflict, got %v", err)
				}
			})
		}
	})

	t.Run("closed order does not block", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.sideEffects()
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(storedOrder(9, entities.ServiceOrderStatusFinished), nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1, Identifier: "11144477735"}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			o.ID = 10
			return o, nil
		})

		res, err := f.uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 10 {
			t.Fatalf("expected new order id 10, got %d", res.ID)
		}
	})

	t.Run("open order lookup error", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := f.uc.Create(context.Background(), in)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("unknown client fails before persistence", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Create(context.Background(), in)
		if !errors.Is(err, ErrClientNotFound) || !entities.IsConflictError(err) {
			t.Fatalf("expected ErrClientNotFound conflict, got %v", err)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1}, nil)
		f.services.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Service{}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Create(context.Background(), in)
		if !entities.IsNotFoundError(err) {
			t.Fatalf("expected not found, got %v", err)
		}
		if err.Error() != "service with id 1 not found" {
			t.Fatalf("unexpected message: %v", err)
		}
	})

	t.Run("empty services", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.Create(context.Background(), CreateServiceOrderInput{ClientIdentifier: "11144477735", VehicleID: 42})
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("repository conflict is surfaced", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, entities.ErrOpenServiceOrderExists)

		_, err := f.uc.Create(context.Background(), in)
		if !entities.IsConflictError(err) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("success records history and publishes", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, []int64{5})
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 3}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ClientID != 3 || o.VehicleID != 42 || o.Status != entities.ServiceOrderStatusReceived {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.FinalizedAt != nil || o.CreatedAt.IsZero() || o.TotalServicePrice != 0 {
					t.Fatalf("unexpected timestamps or price: %+v", o)
				}
				o.ID = 77
				return o, nil
			},
		)
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.StatusChange) error {
			if c.OrderID != 77 || c.From != "" || c.To != entities.ServiceOrderStatusReceived {
				t.Fatalf("unexpected status change: %+v", c)
			}
			return nil
		})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.ServiceOrderEvent) error {
			if e.Type != entities.ServiceOrderEventCreated || e.OrderID != 77 || e.ID == "" {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

		res, err := f.uc.Create(context.Background(), CreateServiceOrderInput{
			ClientIdentifier: "111.444.777-35", VehicleID: 42, Services: []int64{1, 2}, Supplies: []int64{5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Services) != 2 || !res.Services[0].Resolved() || len(res.Supplies) != 1 {
			t.Fatalf("unexpected lines: %+v", res)
		}
	})

	t.Run("side effect failures do not fail create", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
		f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1}, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
			o.ID = 1
			return o, nil
		})
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

		if _, err := f.uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_ReviseLineItems(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{})
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Services: []int64{1}})
		if !entities.IsNotFoundError(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("unknown new service never updates", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusInDiagnosis), nil)
		f.services.EXPECT().FindByID(gomock.Any(), int64(99)).Return(entities.Service{}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Services: []int64{1, 99}})
		var nf *entities.NotFoundError
		if !errors.As(err, &nf) || nf.ID != "99" {
			t.Fatalf("expected not found naming 99, got %v", err)
		}
	})

	t.Run("attached supply removed from catalog", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		o := storedOrder(7, entities.ServiceOrderStatusInDiagnosis)
		o.Supplies = entities.SupplyRefs([]int64{8})
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(o, nil)
		f.supplies.EXPECT().FindByID(gomock.Any(), int64(8)).Return(entities.Supply{}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Supplies: []int64{}})
		if !entities.IsNotFoundError(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusApproved), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Services: []int64{1}})
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("replaces supplies only", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.sideEffects()
		f.catalog([]int64{1, 2}, []int64{5})
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusInDiagnosis), nil)
		f.repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				ids := entities.ServiceLineIDs(o.Services)
				if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
					t.Fatalf("services should be untouched: %v", ids)
				}
				return o, nil
			},
		)

		res, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Supplies: []int64{5}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ids := entities.SupplyLineIDs(res.Supplies); len(ids) != 1 || ids[0] != 5 {
			t.Fatalf("expected supplies [5], got %v", ids)
		}
	})

	t.Run("empty services rejected", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.catalog([]int64{1, 2}, nil)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusInDiagnosis), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.ReviseLineItems(context.Background(), ReviseLineItemsInput{ID: 7, Services: []int64{}})
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_TransitionStatus(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.TransitionStatus(context.Background(), TransitionStatusInput{Status: entities.ServiceOrderStatusApproved}); !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
		if _, err := uc.TransitionStatus(context.Background(), TransitionStatusInput{ID: 1}); !errors.Is(err, ErrInvalidServiceOrderState) {
			t.Fatalf("expected ErrInvalidServiceOrderState, got %v", err)
		}
	})

	t.Run("illegal transition is rejected without update", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusReceived), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.uc.TransitionStatus(context.Background(), TransitionStatusInput{ID: 7, Status: entities.ServiceOrderStatusDelivered})
		if !entities.IsValidationError(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusReceived), nil)
		f.repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).Return(entities.ServiceOrder{}, entities.ErrConcurrentModification)

		_, err := f.uc.StartDiagnosis(context.Background(), 7)
		if !errors.Is(err, entities.ErrConcurrentModification) {
			t.Fatalf("expected concurrent modification, got %v", err)
		}
	})

	t.Run("cancel from delivered records who changed it", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(storedOrder(7, entities.ServiceOrderStatusDelivered), nil)
		f.repo.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, o entities.ServiceOrder) (entities.ServiceOrder, error) { return o, nil },
		)
		f.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.StatusChange) error {
			if c.From != entities.ServiceOrderStatusDelivered || c.To != entities.ServiceOrderStatusCancelled || c.ChangedBy != "12" {
				t.Fatalf("unexpected status change: %+v", c)
			}
			return nil
		})
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		ctx := entities.ContextWithPrincipal(context.Background(), entities.Principal{UserID: 12, Role: entities.UserRoleAttendant})
		res, err := f.uc.Cancel(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ServiceOrderStatusCancelled {
			t.Fatalf("expected CANCELLED, got %s", res.Status)
		}
	})
}

func TestServiceOrderUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(entities.ServiceOrder{}, nil)

		_, err := f.uc.GetByID(context.Background(), 3)
		if !entities.IsNotFoundError(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("list", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindAll(gomock.Any()).Return([]entities.ServiceOrder{storedOrder(1, entities.ServiceOrderStatusReceived)}, nil)

		res, err := f.uc.List(context.Background())
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})

	t.Run("history", func(t *testing.T) {
		f := newServiceOrderFixture(t)
		f.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, entities.ServiceOrderStatusInDiagnosis), nil)
		f.history.EXPECT().ListByOrderID(gomock.Any(), int64(1)).Return([]entities.StatusChange{
			{OrderID: 1, To: entities.ServiceOrderStatusReceived},
			{OrderID: 1, From: entities.ServiceOrderStatusReceived, To: entities.ServiceOrderStatusInDiagnosis},
		}, nil)

		res, err := f.uc.History(context.Background(), 1)
		if err != nil || len(res) != 2 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})

	t.Run("history without store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil, nil, nil, nil, nil)
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(storedOrder(1, entities.ServiceOrderStatusReceived), nil)

		res, err := uc.History(context.Background(), 1)
		if err != nil || len(res) != 0 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

// TestServiceOrderUseCase_Lifecycle walks one order from reception to
// delivery against a repository mock that keeps the latest saved state.
func TestServiceOrderUseCase_Lifecycle(t *testing.T) {
	f := newServiceOrderFixture(t)
	f.sideEffects()
	f.catalog([]int64{1, 2}, []int64{5})

	var saved entities.ServiceOrder
	f.repo.EXPECT().FindOpenOrder(gomock.Any(), int64(42), "11144477735").Return(entities.ServiceOrder{}, nil)
	f.clients.EXPECT().FindByIdentifier(gomock.Any(), "11144477735").Return(entities.Client{ID: 1, Identifier: "11144477735"}, nil)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
		o.ID = 100
		o.Version = 1
		saved = o
		return saved, nil
	})
	f.repo.EXPECT().FindByID(gomock.Any(), int64(100)).DoAndReturn(func(context.Context, int64) (entities.ServiceOrder, error) {
		return saved, nil
	}).AnyTimes()
	f.repo.EXPECT().Update(gomock.Any(), int64(100), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, o entities.ServiceOrder) (entities.ServiceOrder, error) {
		if o.Version != saved.Version {
			return entities.ServiceOrder{}, entities.ErrConcurrentModification
		}
		o.Version++
		saved = o
		return saved, nil
	}).AnyTimes()

	ctx := context.Background()
	expect := func(o entities.ServiceOrder, err error, status entities.ServiceOrderStatus) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != status {
			t.Fatalf("expected %s, got %s", status, o.Status)
		}
	}

	o, err := f.uc.Create(ctx, CreateServiceOrderInput{ClientIdentifier: "11144477735", VehicleID: 42, Services: []int64{1, 2}})
	expect(o, err, entities.ServiceOrderStatusReceived)
	if o.FinalizedAt != nil {
		t.Fatalf("expected nil finalized at")
	}

	o, err = f.uc.StartDiagnosis(ctx, 100)
	expect(o, err, entities.ServiceOrderStatusInDiagnosis)

	o, err = f.uc.ReviseLineItems(ctx, ReviseLineItemsInput{ID: 100, Supplies: []int64{5}})
	expect(o, err, entities.ServiceOrderStatusInDiagnosis)
	if ids := entities.SupplyLineIDs(o.Supplies); len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("expected supply 5, got %v", ids)
	}

	o, err = f.uc.SubmitForApproval(ctx, 100)
	expect(o, err, entities.ServiceOrderStatusWaitingForApproval)

	o, err = f.uc.Approve(ctx, 100)
	expect(o, err, entities.ServiceOrderStatusApproved)

	o, err = f.uc.StartExecution(ctx, 100)
	expect(o, err, entities.ServiceOrderStatusInProgress)

	finishedAt := time.Date(2025, 5, 20, 17, 30, 0, 0, time.UTC)
	o, err = f.uc.Finalize(ctx, 100, &finishedAt)
	expect(o, err, entities.ServiceOrderStatusFinished)
	if o.FinalizedAt == nil || !o.FinalizedAt.Equal(finishedAt) {
		t.Fatalf("expected finalized at %v, got %v", finishedAt, o.FinalizedAt)
	}

	o, err = f.uc.Deliver(ctx, 100)
	expect(o, err, entities.ServiceOrderStatusDelivered)

	if _, err := f.uc.Finalize(ctx, 100, nil); !entities.IsValidationError(err) {
		t.Fatalf("expected validation error finalizing a delivered order, got %v", err)
	}
}
