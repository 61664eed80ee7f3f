package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	appanalytics "github.com/jhoicas/stockmaster-api/internal/application/analytics"
	"github.com/jhoicas/stockmaster-api/internal/application/usecase"
	apphttp "github.com/jhoicas/stockmaster-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/stockmaster-api/pkg/jwt"
)

// newFullApp registra todos los grupos. Los casos de uso no tienen repos: sirve para rutas
// que responden antes de llegar a ellos.
func newFullApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		Documents:   &fakeDocuments{},
		ProductUC:   usecase.NewProductUseCase(nil, nil, nil, nil),
		WarehouseUC: usecase.NewWarehouseUseCase(nil, nil),
		DashboardUC: appanalytics.NewDashboardUseCase(nil, nil, nil, nil, nil),
		AIUC:        usecase.NewAIUseCase(nil, nil, nil, nil, nil),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func TestRouter_RutasConNombreLargoYAlias(t *testing.T) {
	registered := map[string]bool{}
	for _, r := range newFullApp().GetRoutes(true) {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /api/dashboard/low-stock-alerts",
		"GET /api/dashboard/alerts",
		"GET /api/dashboard/recent-activities",
		"GET /api/dashboard/activities",
		"GET /api/ai/detect-anomalies",
		"GET /api/ai/anomalies",
		"GET /api/products/:id/stock-by-location",
		"GET /api/products/:id/stock",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestProducts_IDNoUUIDEs404(t *testing.T) {
	app := newFullApp()

	cases := []struct {
		method, path, role, body string
	}{
		{http.MethodGet, "/api/products/abc", pkgjwt.RoleStaff, ""},
		{http.MethodGet, "/api/products/abc/stock-by-location", pkgjwt.RoleStaff, ""},
		{http.MethodPut, "/api/products/abc", pkgjwt.RoleManager, `{"name":"Tornillo"}`},
		{http.MethodDelete, "/api/products/abc", pkgjwt.RoleAdmin, ""},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			status, body := call(t, app, tc.method, tc.path, tc.role, tc.body)

			assert.Equal(t, http.StatusNotFound, status)
			assert.Equal(t, "NOT_FOUND", body["code"])
		})
	}
}

func TestLocations_FiltroDeBodegaNoUUIDEs400(t *testing.T) {
	status, body := call(t, newFullApp(), http.MethodGet, "/api/locations?warehouse=central", pkgjwt.RoleStaff, "")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}
