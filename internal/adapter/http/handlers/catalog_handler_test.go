package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"os-service-api/internal/adapter/http/handlers/mocks"
	"os-service-api/internal/domain/entities"
	"os-service-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)
		r := gin.New()
		r.POST("/v1/clients", h.Create)
		r.GET("/v1/clients", h.List)
		r.GET("/v1/clients/:id", h.GetByID)
		r.PUT("/v1/clients/:id", h.Update)
		r.DELETE("/v1/clients/:id", h.Delete)
		return r, uc
	}

	t.Run("create", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), usecase.ClientInput{Name: "Maria", Identifier: "111.444.777-35"}).
			Return(entities.Client{ID: 1, Name: "Maria", Identifier: "11144477735"}, nil)

		w := serve(r, http.MethodPost, "/v1/clients", `{"name":"Maria","identifier":"111.444.777-35"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["identifier"] != "11144477735" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("duplicate identifier", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, usecase.ErrClientIdentifierInUse)

		w := serve(r, http.MethodPost, "/v1/clients", `{"name":"Maria","identifier":"11144477735"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete referenced", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Delete(gomock.Any(), int64(1)).Return(entities.NewConflictError("client is referenced by vehicles or service orders"))

		w := serve(r, http.MethodDelete, "/v1/clients/1", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update not found", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).Return(entities.Client{}, entities.NewNotFoundError("client", int64(9)))

		w := serve(r, http.MethodPut, "/v1/clients/9", `{"name":"Maria","identifier":"11144477735"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestVehicleHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)
	r := gin.New()
	r.POST("/v1/vehicles", h.Create)
	r.GET("/v1/vehicles", h.List)

	uc.EXPECT().Create(gomock.Any(), usecase.VehicleInput{Brand: "Fiat", Model: "Uno", Year: 2010, LicensePlate: "abc-1234", ClientID: 1}).
		Return(entities.Vehicle{ID: 42, Brand: "Fiat", Model: "Uno", Year: 2010, LicensePlate: "ABC-1234", ClientID: 1}, nil)
	w := serve(r, http.MethodPost, "/v1/vehicles", `{"brand":"Fiat","model":"Uno","year":2010,"licensePlate":"abc-1234","clientId":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	uc.EXPECT().List(gomock.Any()).Return(nil, nil)
	w = serve(r, http.MethodGet, "/v1/vehicles", "")
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}

func TestServiceAndSupplyHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	services := mocks.NewMockIServiceUseCase(ctrl)
	supplies := mocks.NewMockISupplyUseCase(ctrl)
	sh := NewServiceHandler(services)
	ph := NewSupplyHandler(supplies)

	r := gin.New()
	r.POST("/v1/services", sh.Create)
	r.GET("/v1/services/:id", sh.GetByID)
	r.POST("/v1/supplies", ph.Create)
	r.DELETE("/v1/supplies/:id", ph.Delete)

	t.Run("service missing price", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/services", `{"name":"Alignment","description":"4 wheels"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("service get", func(t *testing.T) {
		services.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Service{ID: 2, Name: "Alignment", Description: "4 wheels", Price: 80}, nil)
		w := serve(r, http.MethodGet, "/v1/services/2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("supply with zero quantity", func(t *testing.T) {
		supplies.EXPECT().Create(gomock.Any(), usecase.SupplyInput{Name: "Filter"}).Return(entities.Supply{ID: 5, Name: "Filter"}, nil)
		w := serve(r, http.MethodPost, "/v1/supplies", `{"name":"Filter","quantity":0,"price":0}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("supply referenced by an order", func(t *testing.T) {
		supplies.EXPECT().Delete(gomock.Any(), int64(5)).Return(entities.NewConflictError("supply is referenced by service orders"))
		w := serve(r, http.MethodDelete, "/v1/supplies/5", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
