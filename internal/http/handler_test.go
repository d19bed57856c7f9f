package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"github.com/nurpe/leasing-service/internal/db"
	"github.com/nurpe/leasing-service/internal/excel"
	"github.com/nurpe/leasing-service/internal/pdf"
	"github.com/nurpe/leasing-service/internal/repository"
	"github.com/nurpe/leasing-service/internal/service"
)

type api struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Open(sqlite.Open(":memory:"), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(database))

	store := repository.NewStore(database)
	catalog := service.NewCatalog(store)
	handler := NewHandler(Services{
		Owners:     service.NewOwnerService(store),
		Customers:  service.NewCustomerService(store),
		Properties: service.NewPropertyService(store, catalog),
		Leases:     service.NewLeaseService(store, zerolog.Nop()),
		Rents:      service.NewRentService(store, zerolog.Nop()),
		Utilities:  service.NewUtilityService(store),
	}, excel.NewGenerator("EUR"), pdf.NewGenerator("Leasing Office", "EUR"), zerolog.Nop())

	return &api{t: t, router: NewRouter(handler, []string{"*"}, "development", zerolog.Nop())}
}

func (a *api) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// create posts body and returns the decoded response, requiring 201.
func (a *api) create(path string, body interface{}) map[string]interface{} {
	a.t.Helper()
	rec := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(a.t, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode(t, rec)["error"].(string)
}

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func owner(email string) gin.H {
	return gin.H{"first_name": "Olga", "last_name": "Owner", "email": email, "password": "secret-password", "phone": "+353"}
}

func customer(email string) gin.H {
	return gin.H{"first_name": "Carl", "last_name": "Customer", "email": email, "password": "secret-password"}
}

func officeSpace(ownerID interface{}, address string, rate float64) gin.H {
	return gin.H{
		"owner_id":      ownerID,
		"name":          "Office at " + address,
		"address":       address,
		"rental_rate":   rate,
		"size":          42.5,
		"parking_spots": 2,
		"photos":        []string{"https://img.example/1.jpg"},
		"capacity":      10,
	}
}

func TestHealth(t *testing.T) {
	a := newAPI(t)
	rec := a.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestLeaseAndRentHappyPath(t *testing.T) {
	a := newAPI(t)
	o := a.create("/owners", owner("a@x.com"))
	assert.NotContains(t, o, "password")
	office := a.create("/office-spaces", officeSpace(o["id"], "Main St 1", 300))
	assert.Equal(t, true, office["available"])
	c := a.create("/customers", customer("b@x.com"))

	lease := a.create("/leases", gin.H{
		"property_id": office["id"],
		"customer_id": c["id"],
		"start_date":  day(1),
		"end_date":    day(60),
	})
	assert.Equal(t, 300.0, lease["rental_rate"])

	rec := a.do(http.MethodGet, "/properties/"+office["id"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resolved := decode(t, rec)
	assert.Equal(t, "OFFICE_SPACE", resolved["kind"])
	assert.Equal(t, false, resolved["available"])

	wifi := a.create("/utilities", gin.H{"name": "WiFi", "description": "fibre"})
	wifiLease := a.create("/utility-leases", gin.H{"utility_id": wifi["id"], "property_id": office["id"], "rental_rate": 40})

	rent := a.create("/rents", gin.H{"lease_id": lease["id"], "utility_lease_ids": []interface{}{wifiLease["id"]}})
	assert.Equal(t, 340.0, rent["total"])
	assert.Equal(t, []interface{}{wifiLease["id"]}, rent["utility_lease_ids"])

	rec = a.do(http.MethodGet, "/leases/"+lease["id"].(string)+"/rents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var rents []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rents))
	require.Len(t, rents, 1)
	assert.Equal(t, rent["id"], rents[0]["id"])

	rec = a.do(http.MethodGet, "/owners/"+o["id"].(string)+"/properties", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var owned []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owned))
	assert.Len(t, owned, 1)

	rec = a.do(http.MethodGet, "/rents/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "rent_roll_")
	assert.NotZero(t, rec.Body.Len())

	rec = a.do(http.MethodGet, "/rents/"+rent["id"].(string)+"/invoice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pdfContentType, rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
}

func TestErrorMapping(t *testing.T) {
	a := newAPI(t)
	o := a.create("/owners", owner("a@x.com"))
	office := a.create("/office-spaces", officeSpace(o["id"], "Main St 1", 300))

	t.Run("duplicate address is a conflict", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/office-spaces", officeSpace(o["id"], "Main St 1", 100))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "property already exists", errorOf(t, rec))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/customers", customer("A@x.com"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "email already in use", errorOf(t, rec))
	})

	t.Run("unknown owner is not found", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/owners/6f1c1d36-3c55-4c2e-9a57-0c3f5e9d8a11", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/owners/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid id", errorOf(t, rec))
	})

	t.Run("owner with properties cannot be deleted", func(t *testing.T) {
		rec := a.do(http.MethodDelete, "/owners/"+o["id"].(string), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "cannot delete owner: properties associated", errorOf(t, rec))
	})

	t.Run("unavailable property", func(t *testing.T) {
		first := a.create("/customers", customer("c1@x.com"))
		second := a.create("/customers", customer("c2@x.com"))
		a.create("/leases", gin.H{"property_id": office["id"], "customer_id": first["id"], "start_date": day(0), "end_date": day(30)})

		rec := a.do(http.MethodPost, "/leases", gin.H{"property_id": office["id"], "customer_id": second["id"], "start_date": day(0), "end_date": day(30)})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "property currently unavailable", errorOf(t, rec))
	})

	t.Run("start after end", func(t *testing.T) {
		free := a.create("/office-spaces", officeSpace(o["id"], "Main St 2", 300))
		c := a.create("/customers", customer("c3@x.com"))
		rec := a.do(http.MethodPost, "/leases", gin.H{"property_id": free["id"], "customer_id": c["id"], "start_date": day(10), "end_date": day(5)})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "start date must not be after end date", errorOf(t, rec))
	})
}

func TestRequestValidation(t *testing.T) {
	a := newAPI(t)
	o := a.create("/owners", owner("a@x.com"))
	c := a.create("/customers", customer("b@x.com"))
	office := a.create("/office-spaces", officeSpace(o["id"], "Main St 1", 300))

	residence := gin.H{
		"owner_id":    o["id"],
		"name":        "Flat",
		"address":     "Flat 1",
		"rental_rate": 100,
		"size":        50,
		"photos":      []string{"a.jpg"},
		"bedrooms":    1,
		"bathrooms":   1,
		"heating":     "GAS",
	}

	cases := []struct {
		name string
		path string
		body gin.H
	}{
		{"missing password", "/owners", gin.H{"first_name": "A", "last_name": "B", "email": "z@x.com"}},
		{"bad email", "/customers", gin.H{"first_name": "A", "last_name": "B", "email": "nope", "password": "secret-password"}},
		{"unknown heating", "/residences", merge(residence, gin.H{"heating": "NUCLEAR"})},
		{"no photos", "/residences", merge(residence, gin.H{"photos": []string{}})},
		{"too many photos", "/residences", merge(residence, gin.H{"photos": make([]string, 16)})},
		{"zero rate", "/office-spaces", merge(officeSpace(o["id"], "Other 1", 0), nil)},
		{"start in the past", "/leases", gin.H{"property_id": office["id"], "customer_id": c["id"], "start_date": day(-1), "end_date": day(5)}},
		{"unparseable date", "/leases", gin.H{"property_id": office["id"], "customer_id": c["id"], "start_date": "tomorrow", "end_date": day(5)}},
		{"utility lease without rate", "/utility-leases", gin.H{"utility_id": o["id"], "property_id": office["id"]}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := a.do(http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}

	rec := a.do(http.MethodPost, "/residences", residence)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestUpdateOwnerWithoutPassword(t *testing.T) {
	a := newAPI(t)
	o := a.create("/owners", owner("a@x.com"))

	rec := a.do(http.MethodPut, "/owners/"+o["id"].(string), gin.H{"first_name": "Olga", "last_name": "Renamed", "email": "a@x.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Renamed", decode(t, rec)["last_name"])
}

func merge(base, extra gin.H) gin.H {
	out := gin.H{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
