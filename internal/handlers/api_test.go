package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"victory-pos/internal/ai"
	"victory-pos/internal/auth"
	"victory-pos/internal/middleware"
	"victory-pos/internal/models"
	"victory-pos/internal/rbac"
	"victory-pos/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	store  *store.Store
	tokens map[models.Role]string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(store.NewFileStorage(filepath.Join(t.TempDir(), "state.json")))
	require.NoError(t, err)

	manager := auth.NewManager("test-secret")
	api := New(st, manager, ai.NewAssistant(""))

	r := gin.New()
	r.POST("/login", api.Login)

	apiGroup := r.Group("/api")
	apiGroup.Use(middleware.Authenticate(manager))
	{
		apiGroup.GET("/laptops", api.ListLaptops)
		apiGroup.GET("/laptops/scan/:barcode", api.ScanLaptop)
		apiGroup.POST("/checkout", api.Checkout)
		apiGroup.GET("/transactions", api.ListTransactions)
		apiGroup.GET("/transactions/:id/invoice", api.Invoice)
		apiGroup.GET("/reports/summary", api.Summary)
		apiGroup.GET("/reports/inventory", api.InventoryReport)
		apiGroup.GET("/reports/sales", api.SalesReport)
		apiGroup.POST("/ask", api.Ask)

		manage := apiGroup.Group("/")
		manage.Use(middleware.RequireCapability(rbac.ActionManageLaptops))
		manage.POST("/laptops", api.AddLaptop)

		owner := apiGroup.Group("/")
		owner.Use(middleware.RequireCapability(rbac.ActionDeleteLaptop))
		owner.DELETE("/laptops/:id", api.DeleteLaptop)

		backup := apiGroup.Group("/")
		backup.Use(middleware.RequireCapability(rbac.ActionExportBackup))
		backup.GET("/backup", api.Backup)

		admin := apiGroup.Group("/")
		admin.Use(middleware.RequireCapability(rbac.ActionManageUsers))
		admin.GET("/users", api.ListUsers)
	}

	tokens := make(map[models.Role]string)
	for _, u := range st.Snapshot().Users {
		token, err := manager.GenerateToken(u)
		require.NoError(t, err)
		tokens[u.Role] = token
	}

	return &testEnv{router: r, store: st, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodPost, "/login", "", `{"email":"owner@victory.id","password":"123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, models.RoleOwner, resp.User.Role)
	require.Empty(t, resp.User.PasswordHash)

	w = env.do(t, http.MethodPost, "/login", "", `{"email":"owner@victory.id","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestAuthRequired(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/laptops", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/laptops", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	env := setup(t)

	body := `{"customerName":"Andi","discount":0,"paymentMethod":"CASH","items":[{"laptopId":"1","quantity":2}]}`
	w := env.do(t, http.MethodPost, "/api/checkout", env.tokens[models.RoleAdmin], body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 43000000.0, resp.Transaction.Subtotal)
	require.Equal(t, 4730000.0, resp.Transaction.Tax)
	require.Equal(t, 47730000.0, resp.Transaction.Total)
	require.Equal(t, "Siti Aminah", resp.Transaction.CreatedBy)

	laptop, err := env.store.LaptopByBarcode("VIC892031001")
	require.NoError(t, err)
	require.Equal(t, 3, laptop.Stock)

	// Invoice renders after the sale.
	w = env.do(t, http.MethodGet, "/api/transactions/"+resp.Transaction.ID+"/invoice", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), resp.Transaction.InvoiceNumber)
}

func TestCheckoutRejectsOverstock(t *testing.T) {
	env := setup(t)

	body := `{"customerName":"Andi","paymentMethod":"CASH","items":[{"laptopId":"3","quantity":10}]}`
	w := env.do(t, http.MethodPost, "/api/checkout", env.tokens[models.RoleAdmin], body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Insufficient stock")

	laptop, err := env.store.LaptopByBarcode("VIC892031003")
	require.NoError(t, err)
	require.Equal(t, 2, laptop.Stock)
}

func TestRoleGates(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/users", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/users", env.tokens[models.RoleSuperAdmin], "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "passwordHash")

	w = env.do(t, http.MethodDelete, "/api/laptops/1", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodDelete, "/api/laptops/1", env.tokens[models.RoleOwner], "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSummaryRedactsProfit(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/reports/summary", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), "profit")

	w = env.do(t, http.MethodGet, "/api/reports/summary", env.tokens[models.RoleOwner], "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "profit")
}

func TestBackupDownload(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodGet, "/api/backup", env.tokens[models.RoleOwner], "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "victory_pos_backup_")

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.Len(t, snap.Inventory, 3)

	w = env.do(t, http.MethodGet, "/api/backup", env.tokens[models.RoleAdmin], "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAskWithoutKeyReturnsErrorEvent(t *testing.T) {
	env := setup(t)

	w := env.do(t, http.MethodPost, "/api/ask", env.tokens[models.RoleAdmin], `{"message":"how is stock?"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	require.Contains(t, body, "event:error")
	require.Contains(t, body, "not configured")
	require.NotContains(t, body, "event:message")
}
