package usecase

import (
	"context"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service_order_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_order_usecase.go -package=mocks

var (
	ErrInvalidServiceOrderID    = entities.NewValidationError("invalid service order id")
	ErrInvalidClientIdentifier  = entities.NewValidationError("invalid client identifier")
	ErrInvalidVehicleID         = entities.NewValidationError("invalid vehicle id")
	ErrInvalidServiceOrderState = entities.NewValidationError("invalid service order status")
	ErrClientNotFound           = entities.NewConflictError("client not found")
)

// CreateServiceOrderInput opens a new order. ClientIdentifier is the
// client-facing document (CPF), not the internal client id.
type CreateServiceOrderInput struct {
	ClientIdentifier string
	VehicleID        int64
	Services         []int64
	Supplies         []int64
}

// ReviseLineItemsInput replaces line items. A nil slice means "leave as is".
type ReviseLineItemsInput struct {
	ID       int64
	Services []int64
	Supplies []int64
}

// TransitionStatusInput requests a status change. FinishedAt is only used
// when the target is FINISHED or CANCELLED.
type TransitionStatusInput struct {
	ID         int64
	Status     entities.ServiceOrderStatus
	FinishedAt *time.Time
}

// IServiceOrderUseCase drives the service order lifecycle.
//
//   - POST /service-orders                       => Create()
//   - PUT  /service-orders/{id}/update-diagnosis => ReviseLineItems()
//   - PATCH /service-orders/{id}/status          => TransitionStatus()
//   - PUT  /service-orders/{id}/{action}         => StartDiagnosis() ... Cancel()
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error)
	ReviseLineItems(ctx context.Context, in ReviseLineItemsInput) (entities.ServiceOrder, error)
	TransitionStatus(ctx context.Context, in TransitionStatusInput) (entities.ServiceOrder, error)
	StartDiagnosis(ctx context.Context, id int64) (entities.ServiceOrder, error)
	SubmitForApproval(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Approve(ctx context.Context, id int64) (entities.ServiceOrder, error)
	StartExecution(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Finalize(ctx context.Context, id int64, finishedAt *time.Time) (entities.ServiceOrder, error)
	Deliver(ctx context.Context, id int64) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id int64) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error)
	History(ctx context.Context, id int64) ([]entities.StatusChange, error)
}

type ServiceOrderUseCase struct {
	repo      interfaces.IServiceOrderRepository
	clients   interfaces.IClientRepository
	services  interfaces.IServiceRepository
	supplies  interfaces.ISupplyRepository
	history   interfaces.IServiceOrderHistoryRepository
	publisher interfaces.IServiceOrderEventPublisher
	now       func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

// NewServiceOrderUseCase wires the use case. history and publisher are
// optional; nil disables them.
func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	services interfaces.IServiceRepository,
	supplies interfaces.ISupplyRepository,
	history interfaces.IServiceOrderHistoryRepository,
	publisher interfaces.IServiceOrderEventPublisher,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:      repo,
		clients:   clients,
		services:  services,
		supplies:  supplies,
		history:   history,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in CreateServiceOrderInput) (entities.ServiceOrder, error) {
	identifier := entities.NormalizeCPF(in.ClientIdentifier)
	log := zap.L().With(zap.String("client_identifier", identifier), zap.Int64("vehicle_id", in.VehicleID))
	log.Info("[service-order][usecase] create start", zap.Int("services", len(in.Services)), zap.Int("supplies", len(in.Supplies)))

	if identifier == "" {
		return entities.ServiceOrder{}, ErrInvalidClientIdentifier
	}
	if in.VehicleID <= 0 {
		return entities.ServiceOrder{}, ErrInvalidVehicleID
	}

	// Enforce: 1 open OS per vehicle and client.
	existing, err := u.repo.FindOpenOrder(ctx, in.VehicleID, identifier)
	if err != nil {
		log.Error("[service-order][usecase] open order lookup failed", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if existing.ID != 0 && existing.Status.IsOpen() {
		log.Info("[service-order][usecase] open order already exists", zap.Int64("existing_id", existing.ID), zap.String("status", existing.Status.String()))
		return entities.ServiceOrder{}, entities.ErrOpenServiceOrderExists
	}

	client, err := u.clients.FindByIdentifier(ctx, identifier)
	if err != nil {
		log.Error("[service-order][usecase] client lookup failed", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if client.ID == 0 {
		log.Info("[service-order][usecase] client not found")
		return entities.ServiceOrder{}, ErrClientNotFound
	}

	services, err := u.resolveServices(ctx, in.Services)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	supplies, err := u.resolveSupplies(ctx, in.Supplies)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	order, err := entities.NewServiceOrder(entities.ServiceOrder{
		ClientID:          client.ID,
		VehicleID:         in.VehicleID,
		Services:          services,
		Supplies:          supplies,
		CreatedAt:         u.now(),
		Status:            entities.ServiceOrderStatusReceived,
		TotalServicePrice: 0,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Error("[service-order][usecase] repository create failed", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	log.Info("[service-order][usecase] create success", zap.Int64("order_id", created.ID))

	u.recordStatusChange(ctx, created.ID, "", created.Status)
	u.publish(ctx, entities.ServiceOrderEventCreated, created)
	return created, nil
}

func (u *ServiceOrderUseCase) ReviseLineItems(ctx context.Context, in ReviseLineItemsInput) (entities.ServiceOrder, error) {
	log := zap.L().With(zap.Int64("order_id", in.ID))
	log.Info("[service-order][usecase] revise start", zap.Bool("services_supplied", in.Services != nil), zap.Bool("supplies_supplied", in.Supplies != nil))

	if in.ID <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	order, err := u.load(ctx, in.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Items already attached must still exist in the catalogs.
	if _, err := u.resolveServices(ctx, entities.ServiceLineIDs(order.Services)); err != nil {
		log.Info("[service-order][usecase] attached service missing", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if _, err := u.resolveSupplies(ctx, entities.SupplyLineIDs(order.Supplies)); err != nil {
		log.Info("[service-order][usecase] attached supply missing", zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	if in.Services != nil {
		lines, err := u.resolveServices(ctx, in.Services)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if err := order.UpdateServices(lines); err != nil {
			log.Info("[service-order][usecase] services update rejected", zap.Error(err))
			return entities.ServiceOrder{}, err
		}
	}

	if in.Supplies != nil {
		lines, err := u.resolveSupplies(ctx, in.Supplies)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if err := order.UpdateSupplies(lines); err != nil {
			log.Info("[service-order][usecase] supplies update rejected", zap.Error(err))
			return entities.ServiceOrder{}, err
		}
	}

	updated, err := u.repo.Update(ctx, order.ID, order)
	if err != nil {
		log.Error("[service-order][usecase] repository update failed", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	log.Info("[service-order][usecase] revise success", zap.Int("services", len(updated.Services)), zap.Int("supplies", len(updated.Supplies)))

	u.publish(ctx, entities.ServiceOrderEventItemsRevised, updated)
	return updated, nil
}

func (u *ServiceOrderUseCase) TransitionStatus(ctx context.Context, in TransitionStatusInput) (entities.ServiceOrder, error) {
	log := zap.L().With(zap.Int64("order_id", in.ID), zap.String("target", in.Status.String()))
	log.Info("[service-order][usecase] transition start")

	if in.ID <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	if in.Status == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderState
	}

	order, err := u.load(ctx, in.ID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	from := order.Status
	if err := order.ApplyTransition(in.Status, in.FinishedAt); err != nil {
		log.Info("[service-order][usecase] transition rejected", zap.String("from", from.String()), zap.Error(err))
		return entities.ServiceOrder{}, err
	}

	updated, err := u.repo.Update(ctx, order.ID, order)
	if err != nil {
		log.Error("[service-order][usecase] repository update failed", zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	log.Info("[service-order][usecase] transition success", zap.String("from", from.String()), zap.String("to", updated.Status.String()))

	u.recordStatusChange(ctx, updated.ID, from, updated.Status)
	u.publish(ctx, entities.ServiceOrderEventStatusChanged, updated)
	return updated, nil
}

func (u *ServiceOrderUseCase) StartDiagnosis(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusInDiagnosis})
}

func (u *ServiceOrderUseCase) SubmitForApproval(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusWaitingForApproval})
}

func (u *ServiceOrderUseCase) Approve(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusApproved})
}

func (u *ServiceOrderUseCase) StartExecution(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusInProgress})
}

func (u *ServiceOrderUseCase) Finalize(ctx context.Context, id int64, finishedAt *time.Time) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusFinished, FinishedAt: finishedAt})
}

func (u *ServiceOrderUseCase) Deliver(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusDelivered})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	return u.TransitionStatus(ctx, TransitionStatusInput{ID: id, Status: entities.ServiceOrderStatusCancelled})
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, err := u.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("[service-order][usecase] list failed", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	return u.load(ctx, id)
}

func (u *ServiceOrderUseCase) History(ctx context.Context, id int64) ([]entities.StatusChange, error) {
	if id <= 0 {
		return nil, ErrInvalidServiceOrderID
	}
	if _, err := u.load(ctx, id); err != nil {
		return nil, err
	}
	if u.history == nil {
		return []entities.StatusChange{}, nil
	}
	return u.history.ListByOrderID(ctx, id)
}

func (u *ServiceOrderUseCase) load(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	order, err := u.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("[service-order][usecase] load failed", zap.Int64("order_id", id), zap.Error(err))
		return entities.ServiceOrder{}, err
	}
	if order.ID == 0 {
		return entities.ServiceOrder{}, entities.NewNotFoundError("service order", id)
	}
	return order, nil
}

func (u *ServiceOrderUseCase) resolveServices(ctx context.Context, ids []int64) ([]entities.ServiceLine, error) {
	lines := make([]entities.ServiceLine, 0, len(ids))
	for _, id := range ids {
		svc, err := u.services.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if svc.ID == 0 {
			return nil, entities.NewNotFoundError("service", id)
		}
		lines = append(lines, entities.ResolvedServiceLine(svc))
	}
	return lines, nil
}

func (u *ServiceOrderUseCase) resolveSupplies(ctx context.Context, ids []int64) ([]entities.SupplyLine, error) {
	lines := make([]entities.SupplyLine, 0, len(ids))
	for _, id := range ids {
		sup, err := u.supplies.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if sup.ID == 0 {
			return nil, entities.NewNotFoundError("supply", id)
		}
		lines = append(lines, entities.ResolvedSupplyLine(sup))
	}
	return lines, nil
}

// recordStatusChange and publish are best effort: the order is already
// persisted, so failures are logged and swallowed.
func (u *ServiceOrderUseCase) recordStatusChange(ctx context.Context, orderID int64, from, to entities.ServiceOrderStatus) {
	if u.history == nil {
		return
	}
	change := entities.StatusChange{OrderID: orderID, From: from, To: to, ChangedAt: u.now()}
	if p, ok := entities.PrincipalFromContext(ctx); ok {
		change.ChangedBy = strconv.FormatInt(p.UserID, 10)
	}
	if err := u.history.Append(ctx, change); err != nil {
		zap.L().Warn("[service-order][usecase] history append failed", zap.Int64("order_id", orderID), zap.Error(err))
	}
}

func (u *ServiceOrderUseCase) publish(ctx context.Context, eventType entities.ServiceOrderEventType, o entities.ServiceOrder) {
	if u.publisher == nil {
		return
	}
	event := entities.ServiceOrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    o.ID,
		ClientID:   o.ClientID,
		VehicleID:  o.VehicleID,
		Status:     o.Status,
		Services:   entities.ServiceLineIDs(o.Services),
		Supplies:   entities.SupplyLineIDs(o.Supplies),
		OccurredAt: u.now(),
	}
	if err := u.publisher.Publish(ctx, event); err != nil {
		zap.L().Warn("[service-order][usecase] event publish failed", zap.Int64("order_id", o.ID), zap.String("type", string(eventType)), zap.Error(err))
	}
}
