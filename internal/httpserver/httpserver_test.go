package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/healthbridge/backend/internal/models"
	"github.com/healthbridge/backend/internal/repo"
	"github.com/healthbridge/backend/internal/service"
	"github.com/healthbridge/backend/internal/session"
)

type testEnv struct {
	T      *testing.T
	E      *echo.Echo
	DB     *gorm.DB
	Repo   *repo.GormRepo
	Minter *session.Minter

	Cart     *CartHTTP
	Order    *OrderHTTP
	Medicine *MedicineHTTP
	Disease  *DiseaseHTTP
	Auth     *AuthHTTP
	Admin    *AdminHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Medicine{},
		&models.Disease{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
	))

	r := &repo.GormRepo{DB: db}
	minter := session.NewMinter([]byte("session-test-secret"))

	cartSvc := &service.CartService{Repo: r}
	orderSvc := &service.OrderService{Repo: r}
	catalogSvc := &service.CatalogService{Repo: r}
	authSvc := &service.AuthService{Repo: r, JWTSecret: []byte("jwt-test-secret"), TokenTTL: time.Hour}

	return &testEnv{
		T:      t,
		E:      echo.New(),
		DB:     db,
		Repo:   r,
		Minter: minter,

		Cart:     &CartHTTP{Svc: cartSvc, Minter: minter},
		Order:    &OrderHTTP{Svc: orderSvc, Minter: minter},
		Medicine: &MedicineHTTP{Svc: catalogSvc},
		Disease:  &DiseaseHTTP{Svc: catalogSvc},
		Auth:     &AuthHTTP{Svc: authSvc},
		Admin:    &AdminHTTP{Orders: orderSvc, Auth: authSvc},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createMedicine(name string, price, stock int64) *models.Medicine {
	env.T.Helper()
	med := &models.Medicine{
		Name:        name,
		Description: "test medicine",
		Category:    "Test",
		Price:       price,
		Stock:       stock,
	}
	require.NoError(env.T, env.DB.Create(med).Error)
	return med
}

func (env *testEnv) mintSession() string {
	return env.Minter.Mint()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
