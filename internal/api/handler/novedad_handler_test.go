package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

type stubNovedadService struct {
	listFn   func(ctx context.Context, claim domain.Claim) ([]*domain.Novedad, error)
	createFn func(ctx context.Context, claim domain.Claim, input ports.NovedadInput) (*domain.Novedad, error)
	updateFn func(ctx context.Context, claim domain.Claim, id string, input ports.NovedadInput) (*domain.Novedad, error)
	deleteFn func(ctx context.Context, claim domain.Claim, id string) error
}

func (s *stubNovedadService) List(ctx context.Context, claim domain.Claim) ([]*domain.Novedad, error) {
	return s.listFn(ctx, claim)
}

func (s *stubNovedadService) Create(ctx context.Context, claim domain.Claim, input ports.NovedadInput) (*domain.Novedad, error) {
	return s.createFn(ctx, claim, input)
}

func (s *stubNovedadService) Update(ctx context.Context, claim domain.Claim, id string, input ports.NovedadInput) (*domain.Novedad, error) {
	return s.updateFn(ctx, claim, id, input)
}

func (s *stubNovedadService) Delete(ctx context.Context, claim domain.Claim, id string) error {
	return s.deleteFn(ctx, claim, id)
}

func withClaim(c echo.Context, claim domain.Claim) {
	c.Set("claim", claim)
	c.Set("username", claim.Username)
	c.Set("role", claim.Role)
}

func TestNovedadHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubNovedadService{
		listFn: func(ctx context.Context, claim domain.Claim) ([]*domain.Novedad, error) {
			if claim.Role != domain.RoleOficial15 {
				t.Fatalf("claim not forwarded: %+v", claim)
			}
			return []*domain.Novedad{{ID: "1", Dependencia: "comisaria_15", Titulo: "robo"}}, nil
		},
	}
	handler := NewNovedadHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/novedades", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withClaim(c, domain.Claim{ID: "1", Username: "op15", Role: domain.RoleOficial15})

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 1 || out[0]["dependencia"] != "comisaria_15" {
		t.Fatalf("unexpected payload: %+v", out)
	}
}

func TestNovedadHandler_List_NoClaim(t *testing.T) {
	e := newTestEcho()
	handler := NewNovedadHandler(&stubNovedadService{})

	req := httptest.NewRequest(http.MethodGet, "/novedades", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNovedadHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubNovedadService{
		createFn: func(ctx context.Context, claim domain.Claim, input ports.NovedadInput) (*domain.Novedad, error) {
			if input.Titulo != "robo" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Novedad{ID: "1", Dependencia: "comisaria_15", Titulo: input.Titulo, Descripcion: input.Descripcion}, nil
		},
	}
	handler := NewNovedadHandler(stub)

	body := strings.NewReader(`{"titulo":"robo","descripcion":"robo en la via publica"}`)
	req := httptest.NewRequest(http.MethodPost, "/novedades", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withClaim(c, domain.Claim{ID: "1", Username: "op15", Role: domain.RoleOficial15})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestNovedadHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	handler := NewNovedadHandler(&stubNovedadService{
		createFn: func(ctx context.Context, claim domain.Claim, input ports.NovedadInput) (*domain.Novedad, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/novedades", strings.NewReader(`{"titulo":"robo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withClaim(c, domain.Claim{ID: "1", Username: "op15", Role: domain.RoleOficial15})

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNovedadHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewNovedadHandler(&stubNovedadService{
		updateFn: func(ctx context.Context, claim domain.Claim, id string, input ports.NovedadInput) (*domain.Novedad, error) {
			return nil, domain.ErrNovedadNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/novedades/missing", strings.NewReader(`{"titulo":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	withClaim(c, domain.Claim{ID: "1", Username: "root", Role: domain.RoleAdmin})

	_ = handler.Update(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestNovedadHandler_Delete(t *testing.T) {
	e := newTestEcho()
	handler := NewNovedadHandler(&stubNovedadService{
		deleteFn: func(ctx context.Context, claim domain.Claim, id string) error {
			if id != "42" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/novedades/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")
	withClaim(c, domain.Claim{ID: "1", Username: "root", Role: domain.RoleAdmin})

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
