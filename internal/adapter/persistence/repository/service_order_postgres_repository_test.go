package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"os-service-api/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestEncodeLines(t *testing.T) {
	o := entities.ServiceOrder{
		Services: []entities.ServiceLine{entities.ServiceRef(1), entities.ResolvedServiceLine(entities.Service{ID: 2, Name: "x"})},
	}
	services, supplies, err := encodeLines(o)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if services != `[{"id":1},{"id":2}]` {
		t.Fatalf("unexpected services json: %s", services)
	}
	if supplies != `[]` {
		t.Fatalf("supplies must encode as an empty array, got %s", supplies)
	}

	var back []lineRef
	if err := json.Unmarshal([]byte(services), &back); err != nil || len(back) != 2 {
		t.Fatalf("unexpected decode: %v %v", back, err)
	}
}

func TestFromServiceOrderRow(t *testing.T) {
	finalized := time.Date(2025, 5, 20, 17, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	row := serviceOrderRow{
		ID:          100,
		ClientID:    1,
		VehicleID:   42,
		Services:    []lineRef{{ID: 1}, {ID: 99}},
		Supplies:    []lineRef{{ID: 5}},
		Status:      "FINISHED",
		CreatedAt:   finalized.Add(-time.Hour),
		FinalizedAt: &finalized,
		Version:     7,
	}
	services := map[int64]entities.Service{1: {ID: 1, Name: "Oil change", Price: 120}}
	supplies := map[int64]entities.Supply{5: {ID: 5, Name: "Filter"}}

	o := fromServiceOrderRow(row, services, supplies)

	if o.Status != entities.ServiceOrderStatusFinished || o.Version != 7 {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !o.Services[0].Resolved() || o.Services[0].Service.Name != "Oil change" {
		t.Fatalf("service 1 should be resolved: %+v", o.Services[0])
	}
	if o.Services[1].Resolved() || o.Services[1].ID != 99 {
		t.Fatalf("missing catalog entry should stay a bare reference: %+v", o.Services[1])
	}
	if !o.Supplies[0].Resolved() {
		t.Fatalf("supply 5 should be resolved")
	}
	if o.FinalizedAt == nil || o.FinalizedAt.Location() != time.UTC || !o.FinalizedAt.Equal(finalized) {
		t.Fatalf("unexpected finalized at: %v", o.FinalizedAt)
	}
}

func TestMapServiceOrderWriteError(t *testing.T) {
	o := entities.ServiceOrder{ClientID: 1, VehicleID: 42}

	err := mapServiceOrderWriteError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: openOrdersIndex}, o)
	if !errors.Is(err, entities.ErrOpenServiceOrderExists) {
		t.Fatalf("expected open order conflict, got %v", err)
	}

	err = mapServiceOrderWriteError(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "service_orders_vehicle_id_fkey"}), o)
	if err == nil || err.Error() != "vehicle with id 42 not found" {
		t.Fatalf("expected vehicle not found, got %v", err)
	}

	err = mapServiceOrderWriteError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "service_orders_client_id_fkey"}, o)
	if err == nil || err.Error() != "client with id 1 not found" {
		t.Fatalf("expected client not found, got %v", err)
	}

	boom := errors.New("connection reset")
	if err := mapServiceOrderWriteError(boom, o); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestHelpers(t *testing.T) {
	if !isNoRows(fmt.Errorf("x: %w", pgx.ErrNoRows)) {
		t.Fatalf("expected no rows")
	}
	if isUniqueViolation(errors.New("plain")) {
		t.Fatalf("plain error is not a unique violation")
	}
	if got := closedStatuses(); len(got) != 3 || got[0] != "CANCELLED" {
		t.Fatalf("unexpected closed statuses: %v", got)
	}
}

func TestMapVehicleWriteError(t *testing.T) {
	v := entities.Vehicle{ClientID: 3}
	if err := mapVehicleWriteError(&pgconn.PgError{Code: pgUniqueViolation}, v); !entities.IsConflictError(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mapVehicleWriteError(&pgconn.PgError{Code: pgForeignKeyViolation}, v); !entities.IsNotFoundError(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
