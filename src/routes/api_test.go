package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/astrolog/AstroLog-Backend/src/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(
		&models.TypeModel{},
		&models.PropertyModel{},
		&models.PlaceModel{},
		&models.InstrumentModel{},
		&models.ObjectModel{},
		&models.ObservationModel{},
	); err != nil {
		t.Fatalf("migrate test schema: %v", err)
	}
	return New(database), database
}

func perform(t *testing.T, router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(t, router, http.MethodPost, path, strings.NewReader(body))
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", recorder.Body.String(), err)
	}
}

func bodyMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, recorder, &body)
	return body.Message
}

// seedViaAPI posts the catalog rows the observation scenarios depend on and
// returns their ids.
func seedViaAPI(t *testing.T, router *gin.Engine) (typeId, placeId, instrumentId, objectId int) {
	t.Helper()
	var row struct {
		Id int `json:"id"`
	}

	recorder := postJSON(t, router, "/api/types", `{"name":"Galaxy"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed type: %d %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &row)
	typeId = row.Id

	recorder = postJSON(t, router, "/api/places", `{"name":"Greenwich","lat":"51.4778","lon":"0.0015"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed place: %d %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &row)
	placeId = row.Id

	recorder = postJSON(t, router, "/api/instruments", `{"name":"NexStar 8SE"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed instrument: %d %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &row)
	instrumentId = row.Id

	recorder = postJSON(t, router, "/api/objects", `{"name":"Andromeda","designation":"M31","type":`+itoa(typeId)+`}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed object: %d %s", recorder.Code, recorder.Body.String())
	}
	decodeBody(t, recorder, &row)
	objectId = row.Id
	return
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func TestTypeDeleteConflictThenSuccess(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := postJSON(t, router, "/api/types", `{"id":1,"name":"Galaxy"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create galaxy: %d %s", recorder.Code, recorder.Body.String())
	}
	recorder = postJSON(t, router, "/api/types", `{"id":2,"name":"Planet"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create planet: %d %s", recorder.Code, recorder.Body.String())
	}
	recorder = postJSON(t, router, "/api/objects", `{"name":"Andromeda","type":1}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create object: %d %s", recorder.Code, recorder.Body.String())
	}

	recorder = perform(t, router, http.MethodDelete, "/api/types/1", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("delete referenced type: got %d, want 400", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Cannot delete type that is in use" {
		t.Fatalf("conflict message: %q", msg)
	}

	recorder = perform(t, router, http.MethodDelete, "/api/types/2", nil)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("delete unused type: got %d, want 204", recorder.Code)
	}
	if recorder.Body.Len() != 0 {
		t.Fatalf("204 should carry no body, got %q", recorder.Body.String())
	}

	recorder = perform(t, router, http.MethodGet, "/api/types/2", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("get deleted type: got %d, want 404", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Type not found" {
		t.Fatalf("not-found message: %q", msg)
	}
}

func TestObservationCreateAcceptsZuluDatetime(t *testing.T) {
	router, database := newTestRouter(t)
	_, placeId, instrumentId, objectId := seedViaAPI(t, router)

	payload, _ := json.Marshal(gin.H{
		"object":      objectId,
		"place":       placeId,
		"instrument":  instrumentId,
		"datetime":    "2025-01-01T00:00:00Z",
		"observation": "faint spiral arms",
	})
	recorder := perform(t, router, http.MethodPost, "/api/observations", bytes.NewReader(payload))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create observation: %d %s", recorder.Code, recorder.Body.String())
	}

	var created struct {
		Id int `json:"id"`
	}
	decodeBody(t, recorder, &created)

	var stored models.ObservationModel
	if err := database.First(&stored, created.Id).Error; err != nil {
		t.Fatalf("load stored observation: %v", err)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !stored.Datetime.Equal(want) {
		t.Fatalf("stored instant %v, want %v", stored.Datetime, want)
	}
}

func TestObservationSearchCombinesFilters(t *testing.T) {
	router, _ := newTestRouter(t)
	typeId, placeId, instrumentId, objectId := seedViaAPI(t, router)

	recorder := postJSON(t, router, "/api/objects", `{"name":"Mars","type":`+itoa(typeId)+`}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("second object: %d %s", recorder.Code, recorder.Body.String())
	}
	var mars struct {
		Id int `json:"id"`
	}
	decodeBody(t, recorder, &mars)

	mk := func(object int, datetime string) {
		t.Helper()
		payload, _ := json.Marshal(gin.H{
			"object":      object,
			"place":       placeId,
			"instrument":  instrumentId,
			"datetime":    datetime,
			"observation": "obs at " + datetime,
		})
		rec := perform(t, router, http.MethodPost, "/api/observations", bytes.NewReader(payload))
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed observation: %d %s", rec.Code, rec.Body.String())
		}
	}
	mk(objectId, "2025-01-01T00:00:00")
	mk(objectId, "2025-01-03T00:00:00")
	mk(mars.Id, "2025-01-04T00:00:00")

	recorder = perform(t, router, http.MethodGet,
		"/api/observations/search?start_date=2025-01-02T00:00:00&object_id="+itoa(objectId), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("search: %d %s", recorder.Code, recorder.Body.String())
	}
	var results []models.ObservationModel
	decodeBody(t, recorder, &results)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Object != objectId {
		t.Fatalf("result references object %d, want %d", results[0].Object, objectId)
	}

	recorder = perform(t, router, http.MethodGet, "/api/observations/search?start_date=yesterday", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("bad start_date: got %d, want 400", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Invalid start_date format. Use ISO format (YYYY-MM-DDTHH:MM:SS)" {
		t.Fatalf("bad start_date message: %q", msg)
	}

	recorder = perform(t, router, http.MethodGet, "/api/observations/search?object_id=abc", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("bad object_id: got %d, want 400", recorder.Code)
	}
}

func TestObjectCreateUnknownTypeRejected(t *testing.T) {
	router, database := newTestRouter(t)

	recorder := postJSON(t, router, "/api/objects", `{"name":"Ghost","type":999}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Type not found" {
		t.Fatalf("message: %q", msg)
	}

	var count int64
	if err := database.Model(&models.ObjectModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count objects: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected create persisted %d rows", count)
	}
}

func TestBodyValidationStatuses(t *testing.T) {
	router, _ := newTestRouter(t)

	// empty body
	recorder := perform(t, router, http.MethodPost, "/api/types", strings.NewReader(""))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("empty body: got %d, want 400", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "No input data provided" {
		t.Fatalf("empty-body message: %q", msg)
	}

	// wrong field type
	recorder = postJSON(t, router, "/api/types", `{"name":123}`)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("wrong type: got %d, want 422", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Invalid type for field 'name'" {
		t.Fatalf("wrong-type message: %q", msg)
	}

	// missing required field
	recorder = postJSON(t, router, "/api/types", `{}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("missing name: got %d, want 400", recorder.Code)
	}

	// malformed id segment
	recorder = perform(t, router, http.MethodGet, "/api/types/abc", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("bad id: got %d, want 400", recorder.Code)
	}
	if msg := bodyMessage(t, recorder); msg != "Invalid type ID" {
		t.Fatalf("bad-id message: %q", msg)
	}
}

func TestPlacePartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := postJSON(t, router, "/api/places",
		`{"name":"Mauna Kea","lat":"19.8208","lon":"-155.4681","alt":"4205m"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("create place: %d %s", recorder.Code, recorder.Body.String())
	}
	var created struct {
		Id int `json:"id"`
	}
	decodeBody(t, recorder, &created)

	recorder = perform(t, router, http.MethodPut, "/api/places/"+itoa(created.Id),
		strings.NewReader(`{"alt":"4207m"}`))
	if recorder.Code != http.StatusOK {
		t.Fatalf("update place: %d %s", recorder.Code, recorder.Body.String())
	}

	var updated models.PlaceModel
	decodeBody(t, recorder, &updated)
	if updated.Alt == nil || *updated.Alt != "4207m" {
		t.Fatalf("alt not updated: %+v", updated.Alt)
	}
	if updated.Name != "Mauna Kea" || updated.Lat != "19.8208" {
		t.Fatalf("omitted fields changed: %+v", updated)
	}
}

func TestRelationshipEndpointMissingParent(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/objects/99/observations",
		"/api/places/99/observations",
		"/api/instruments/99/observations",
	} {
		recorder := perform(t, router, http.MethodGet, path, nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("%s: got %d, want 404", path, recorder.Code)
		}
	}
}

func TestRelationshipEndpointListsChildren(t *testing.T) {
	router, _ := newTestRouter(t)
	_, placeId, instrumentId, objectId := seedViaAPI(t, router)

	payload, _ := json.Marshal(gin.H{
		"object":      objectId,
		"place":       placeId,
		"instrument":  instrumentId,
		"datetime":    "2025-01-01T00:00:00",
		"observation": "one",
	})
	recorder := perform(t, router, http.MethodPost, "/api/observations", bytes.NewReader(payload))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed observation: %d %s", recorder.Code, recorder.Body.String())
	}

	recorder = perform(t, router, http.MethodGet, "/api/objects/"+itoa(objectId)+"/observations", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("list children: %d %s", recorder.Code, recorder.Body.String())
	}
	var rows []models.ObservationModel
	decodeBody(t, recorder, &rows)
	if len(rows) != 1 {
		t.Fatalf("expected 1 observation, got %d", len(rows))
	}
}

func TestRootAndHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := perform(t, router, http.MethodGet, "/", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("root: got %d", recorder.Code)
	}
	var catalog struct {
		API       string `json:"api"`
		Endpoints map[string]json.RawMessage `json:"endpoints"`
	}
	decodeBody(t, recorder, &catalog)
	if catalog.API == "" || len(catalog.Endpoints) != 6 {
		t.Fatalf("unexpected catalog: %s", recorder.Body.String())
	}

	recorder = perform(t, router, http.MethodGet, "/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("health: got %d %s", recorder.Code, recorder.Body.String())
	}
	var health struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	decodeBody(t, recorder, &health)
	if health.Status != "ok" || health.Database != "connected" {
		t.Fatalf("health body: %s", recorder.Body.String())
	}
}

func TestListEndpointsReturnEmptyArrays(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/types", "/api/properties", "/api/places",
		"/api/instruments", "/api/objects", "/api/observations",
	} {
		recorder := perform(t, router, http.MethodGet, path, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("%s: got %d", path, recorder.Code)
		}
		if body := strings.TrimSpace(recorder.Body.String()); body != "[]" {
			t.Fatalf("%s: want empty array, got %q", path, body)
		}
	}
}
