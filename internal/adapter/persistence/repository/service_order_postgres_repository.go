package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const openOrdersIndex = "service_orders_open_vehicle_client_uidx"

const serviceOrderColumns = `so.id, so.client_id, so.vehicle_id, so.services, so.supplies, so.status,
	so.total_service_price, so.created_at, so.finalized_at, so.version`

// lineRef is the JSONB shape of a line item: {"id": n}.
type lineRef struct {
	ID int64 `json:"id"`
}

type serviceOrderRow struct {
	ID                int64
	ClientID          int64
	VehicleID         int64
	Services          []lineRef
	Supplies          []lineRef
	Status            string
	TotalServicePrice float64
	CreatedAt         time.Time
	FinalizedAt       *time.Time
	Version           int64
}

// ServiceOrderPostgresRepository persists service orders.
//
// Table: service_orders (see database/schema.sql)
//   - services / supplies: JSONB arrays of {"id": n}; readers attach the
//     current catalog record to each line
//   - version: bumped on every update; Update only applies when the caller
//     holds the current version
//   - partial unique index: one open order per (vehicle_id, client_id)
type ServiceOrderPostgresRepository struct {
	db querier
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderPostgresRepository)(nil)

func NewServiceOrderPostgresRepository(pool *pgxpool.Pool) *ServiceOrderPostgresRepository {
	return &ServiceOrderPostgresRepository{db: pool}
}

func (r *ServiceOrderPostgresRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	services, supplies, err := encodeLines(o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO service_orders (client_id, vehicle_id, services, supplies, status, total_service_price, created_at, finalized_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1)
		RETURNING id, version`,
		o.ClientID, o.VehicleID, services, supplies, string(o.Status), o.TotalServicePrice, o.CreatedAt, o.FinalizedAt,
	).Scan(&o.ID, &o.Version)
	if err != nil {
		return entities.ServiceOrder{}, mapServiceOrderWriteError(err, o)
	}
	return o, nil
}

func (r *ServiceOrderPostgresRepository) Update(ctx context.Context, id int64, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	services, supplies, err := encodeLines(o)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE service_orders
		SET services = $1, supplies = $2, status = $3, total_service_price = $4, finalized_at = $5, version = version + 1
		WHERE id = $6 AND version = $7`,
		services, supplies, string(o.Status), o.TotalServicePrice, o.FinalizedAt, id, o.Version,
	)
	if err != nil {
		return entities.ServiceOrder{}, mapServiceOrderWriteError(err, o)
	}
	if tag.RowsAffected() == 0 {
		current, err := r.FindByID(ctx, id)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if current.ID == 0 {
			return entities.ServiceOrder{}, entities.NewNotFoundError("service order", id)
		}
		return entities.ServiceOrder{}, entities.ErrConcurrentModification
	}
	return r.FindByID(ctx, id)
}

func (r *ServiceOrderPostgresRepository) FindAll(ctx context.Context) ([]entities.ServiceOrder, error) {
	return r.query(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders so ORDER BY so.id`)
}

func (r *ServiceOrderPostgresRepository) FindByID(ctx context.Context, id int64) (entities.ServiceOrder, error) {
	orders, err := r.query(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders so WHERE so.id = $1`, id)
	if err != nil || len(orders) == 0 {
		return entities.ServiceOrder{}, err
	}
	return orders[0], nil
}

func (r *ServiceOrderPostgresRepository) FindOpenOrder(ctx context.Context, vehicleID int64, clientIdentifier string) (entities.ServiceOrder, error) {
	orders, err := r.query(ctx, `
		SELECT `+serviceOrderColumns+`
		FROM service_orders so
		JOIN clients c ON c.id = so.client_id
		WHERE so.vehicle_id = $1 AND c.identifier = $2 AND so.status <> ALL($3)
		ORDER BY so.id DESC
		LIMIT 1`,
		vehicleID, clientIdentifier, closedStatuses(),
	)
	if err != nil || len(orders) == 0 {
		return entities.ServiceOrder{}, err
	}
	return orders[0], nil
}

func (r *ServiceOrderPostgresRepository) query(ctx context.Context, sql string, args ...any) ([]entities.ServiceOrder, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query service orders: %w", err)
	}
	scanned, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (serviceOrderRow, error) {
		var it serviceOrderRow
		err := row.Scan(&it.ID, &it.ClientID, &it.VehicleID, &it.Services, &it.Supplies, &it.Status,
			&it.TotalServicePrice, &it.CreatedAt, &it.FinalizedAt, &it.Version)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan service orders: %w", err)
	}

	services, supplies, err := r.loadCatalog(ctx, scanned)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.ServiceOrder, 0, len(scanned))
	for _, it := range scanned {
		orders = append(orders, fromServiceOrderRow(it, services, supplies))
	}
	return orders, nil
}

// loadCatalog fetches every catalog record referenced by rows in two queries.
func (r *ServiceOrderPostgresRepository) loadCatalog(ctx context.Context, rows []serviceOrderRow) (map[int64]entities.Service, map[int64]entities.Supply, error) {
	var serviceIDs, supplyIDs []int64
	for _, it := range rows {
		for _, l := range it.Services {
			serviceIDs = append(serviceIDs, l.ID)
		}
		for _, l := range it.Supplies {
			supplyIDs = append(supplyIDs, l.ID)
		}
	}

	services := make(map[int64]entities.Service)
	if len(serviceIDs) > 0 {
		list, err := queryServices(ctx, r.db, `WHERE id = ANY($1)`, serviceIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range list {
			services[s.ID] = s
		}
	}

	supplies := make(map[int64]entities.Supply)
	if len(supplyIDs) > 0 {
		list, err := querySupplies(ctx, r.db, `WHERE id = ANY($1)`, supplyIDs)
		if err != nil {
			return nil, nil, err
		}
		for _, s := range list {
			supplies[s.ID] = s
		}
	}
	return services, supplies, nil
}

func fromServiceOrderRow(it serviceOrderRow, services map[int64]entities.Service, supplies map[int64]entities.Supply) entities.ServiceOrder {
	o := entities.ServiceOrder{
		ID:                it.ID,
		ClientID:          it.ClientID,
		VehicleID:         it.VehicleID,
		Services:          make([]entities.ServiceLine, 0, len(it.Services)),
		Supplies:          make([]entities.SupplyLine, 0, len(it.Supplies)),
		CreatedAt:         it.CreatedAt.UTC(),
		Status:            entities.ServiceOrderStatus(it.Status),
		TotalServicePrice: it.TotalServicePrice,
		Version:           it.Version,
	}
	if it.FinalizedAt != nil {
		at := it.FinalizedAt.UTC()
		o.FinalizedAt = &at
	}
	for _, l := range it.Services {
		if s, ok := services[l.ID]; ok {
			o.Services = append(o.Services, entities.ResolvedServiceLine(s))
		} else {
			o.Services = append(o.Services, entities.ServiceRef(l.ID))
		}
	}
	for _, l := range it.Supplies {
		if s, ok := supplies[l.ID]; ok {
			o.Supplies = append(o.Supplies, entities.ResolvedSupplyLine(s))
		} else {
			o.Supplies = append(o.Supplies, entities.SupplyRef(l.ID))
		}
	}
	return o
}

func encodeLines(o entities.ServiceOrder) (string, string, error) {
	services := make([]lineRef, 0, len(o.Services))
	for _, id := range entities.ServiceLineIDs(o.Services) {
		services = append(services, lineRef{ID: id})
	}
	supplies := make([]lineRef, 0, len(o.Supplies))
	for _, id := range entities.SupplyLineIDs(o.Supplies) {
		supplies = append(supplies, lineRef{ID: id})
	}

	sv, err := json.Marshal(services)
	if err != nil {
		return "", "", fmt.Errorf("encode services: %w", err)
	}
	sp, err := json.Marshal(supplies)
	if err != nil {
		return "", "", fmt.Errorf("encode supplies: %w", err)
	}
	return string(sv), string(sp), nil
}

func mapServiceOrderWriteError(err error, o entities.ServiceOrder) error {
	if pgErr, ok := pgError(err); ok && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == openOrdersIndex {
		return entities.ErrOpenServiceOrderExists
	}
	if constraint, ok := foreignKeyViolation(err); ok {
		if strings.Contains(constraint, "vehicle") {
			return entities.NewNotFoundError("vehicle", o.VehicleID)
		}
		return entities.NewNotFoundError("client", o.ClientID)
	}
	return fmt.Errorf("write service order: %w", err)
}

func closedStatuses() []string {
	out := make([]string, 0, len(entities.ClosedServiceOrderStatuses))
	for _, s := range entities.ClosedServiceOrderStatuses {
		out = append(out, string(s))
	}
	return out
}
