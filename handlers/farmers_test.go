package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmhub/backend/models"
	"farmhub/backend/pipeline"
	"farmhub/backend/store"

	"github.com/gorilla/mux"
)

func livestockRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/livestock-farmers", LivestockFarmers.List).Methods("GET")
	router.HandleFunc("/livestock-farmers", LivestockFarmers.Create).Methods("POST")
	router.HandleFunc("/livestock-farmers/export", LivestockFarmers.Export).Methods("GET")
	router.HandleFunc("/livestock-farmers/batch-delete", LivestockFarmers.BatchDelete).Methods("POST")
	router.HandleFunc("/livestock-farmers/{id}", LivestockFarmers.Get).Methods("GET")
	router.HandleFunc("/livestock-farmers/{id}", LivestockFarmers.Update).Methods("PUT")
	router.HandleFunc("/livestock-farmers/{id}", LivestockFarmers.Delete).Methods("DELETE")
	return router
}

// seedLivestockFarmers puts n farmers in the store, cycling through two
// regions and advancing the registration date one day at a time from Jan 1.
func seedLivestockFarmers(t *testing.T, mem *store.MemoryStore, n int) {
	t.Helper()
	regions := []string{"Baringo South", "Kerio Valley"}
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("lf-%02d", i)
		err := mem.Create(context.Background(), models.CollectionLivestockFarmers, id, map[string]interface{}{
			"name":     fmt.Sprintf("Farmer %02d", i),
			"region":   regions[i%2],
			"gender":   []string{"Male", "Female"}[i%2],
			"herdSize": float64(i + 1),
			"date":     time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("failed to seed farmer %s: %v", id, err)
		}
	}
}

func doRequest(router *mux.Router, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = SetupTestAuth(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListLivestockFarmersPagination(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()
	seedLivestockFarmers(t, mem, 17)

	router := livestockRouter()
	w := doRequest(router, "GET", "/livestock-farmers?page=2", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Records    []models.LivestockFarmer `json:"records"`
		Pagination pipeline.PageInfo        `json:"pagination"`
		Stats      map[string]float64       `json:"stats"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Records) != 2 {
		t.Errorf("expected 2 records on page 2 of 17, got %d", len(resp.Records))
	}
	if resp.Pagination.TotalItems != 17 || resp.Pagination.TotalPages != 2 || resp.Pagination.Page != 2 {
		t.Errorf("unexpected pagination: %+v", resp.Pagination)
	}

	// Stats cover the whole filtered set, not the page.
	if resp.Stats["totalFarmers"] != 17 {
		t.Errorf("expected totalFarmers 17, got %v", resp.Stats["totalFarmers"])
	}
	if resp.Stats["regions"] != 2 {
		t.Errorf("expected 2 regions, got %v", resp.Stats["regions"])
	}
}

func TestListLivestockFarmersFiltered(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()
	seedLivestockFarmers(t, mem, 17)

	router := livestockRouter()

	// Region category filter. 9 of the 17 are in Baringo South.
	w := doRequest(router, "GET", "/livestock-farmers?region=baringo+south", nil)
	var resp struct {
		Pagination pipeline.PageInfo `json:"pagination"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Pagination.TotalItems != 9 {
		t.Errorf("expected 9 Baringo South farmers, got %d", resp.Pagination.TotalItems)
	}

	// Date range Jan 5 through Jan 8 inclusive.
	w = doRequest(router, "GET", "/livestock-farmers?startDate=2026-01-05&endDate=2026-01-08", nil)
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Pagination.TotalItems != 4 {
		t.Errorf("expected 4 farmers in date range, got %d", resp.Pagination.TotalItems)
	}

	// Search matches a single farmer by name, case-insensitively.
	w = doRequest(router, "GET", "/livestock-farmers?search=farmer+07", nil)
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Pagination.TotalItems != 1 {
		t.Errorf("expected 1 search match, got %d", resp.Pagination.TotalItems)
	}
}

func TestCreateLivestockFarmer(t *testing.T) {
	SetupTestDB()
	defer CleanupTestDB()

	router := livestockRouter()
	body, _ := json.Marshal(models.LivestockFarmer{
		Name:          "Chebet Arap",
		Region:        "Baringo South",
		Gender:        "Female",
		LivestockType: "Goats",
		HerdSize:      12,
		Date:          time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	})

	w := doRequest(router, "POST", "/livestock-farmers", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var created models.LivestockFarmer
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated record ID")
	}

	// The record is retrievable under the generated id.
	w = doRequest(router, "GET", "/livestock-farmers/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 fetching created record, got %d", w.Code)
	}
}

func TestCreateLivestockFarmerValidation(t *testing.T) {
	SetupTestDB()
	defer CleanupTestDB()

	router := livestockRouter()

	body, _ := json.Marshal(models.LivestockFarmer{Region: "Baringo South"})
	w := doRequest(router, "POST", "/livestock-farmers", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing name, got %d", w.Code)
	}

	body, _ = json.Marshal(models.LivestockFarmer{Name: "No Region"})
	w = doRequest(router, "POST", "/livestock-farmers", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing region, got %d", w.Code)
	}
}

func TestGetLivestockFarmerNotFound(t *testing.T) {
	SetupTestDB()
	defer CleanupTestDB()

	router := livestockRouter()
	w := doRequest(router, "GET", "/livestock-farmers/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestUpdateLivestockFarmer(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()
	seedLivestockFarmers(t, mem, 1)

	router := livestockRouter()

	w := doRequest(router, "PUT", "/livestock-farmers/lf-00", []byte(`{"herdSize": 25, "id": "hijack"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(router, "GET", "/livestock-farmers/lf-00", nil)
	var got models.LivestockFarmer
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if got.HerdSize != 25 {
		t.Errorf("expected merged herd size 25, got %v", got.HerdSize)
	}
	if got.Name != "Farmer 00" {
		t.Errorf("expected untouched fields to survive, got name %q", got.Name)
	}

	// A body with nothing but the id is an empty update.
	w = doRequest(router, "PUT", "/livestock-farmers/lf-00", []byte(`{"id": "x"}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for empty update, got %d", w.Code)
	}
}

func TestUpdateLivestockFarmerNotFound(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()

	router := livestockRouter()

	// Updating a record that no longer exists is a 404, never a silent
	// success that recreates it from the partial body.
	w := doRequest(router, "PUT", "/livestock-farmers/ghost", []byte(`{"herdSize": 99}`))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	docs, err := mem.FetchAll(context.Background(), models.CollectionLivestockFarmers)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no phantom record, got %v", docs)
	}

	w = doRequest(router, "DELETE", "/livestock-farmers/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404 deleting missing record, got %d", w.Code)
	}
}

func TestBatchDeleteLivestockFarmers(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()
	seedLivestockFarmers(t, mem, 3)

	router := livestockRouter()

	// One requested id is stale; it must be reported, not attempted.
	body := []byte(`{"ids": ["lf-00", "lf-02", "lf-gone"]}`)
	w := doRequest(router, "POST", "/livestock-farmers/batch-delete", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Deleted  []string `json:"deleted"`
		Failed   []string `json:"failed"`
		NotFound []string `json:"notFound"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Deleted) != 2 {
		t.Errorf("expected 2 deleted, got %v", resp.Deleted)
	}
	if len(resp.NotFound) != 1 || resp.NotFound[0] != "lf-gone" {
		t.Errorf("expected lf-gone in notFound, got %v", resp.NotFound)
	}
	if len(resp.Failed) != 0 {
		t.Errorf("expected no failures, got %v", resp.Failed)
	}

	docs, err := mem.FetchAll(context.Background(), models.CollectionLivestockFarmers)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != "lf-01" {
		t.Errorf("expected only lf-01 to survive, got %v", docs)
	}

	w = doRequest(router, "POST", "/livestock-farmers/batch-delete", []byte(`{"ids": []}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for empty ids, got %d", w.Code)
	}
}

func TestExportLivestockFarmersCSV(t *testing.T) {
	mem := SetupTestDB()
	defer CleanupTestDB()
	seedLivestockFarmers(t, mem, 4)

	router := livestockRouter()
	w := doRequest(router, "GET", "/livestock-farmers/export?region=kerio+valley", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "livestock_farmers") {
		t.Errorf("unexpected content disposition %q", cd)
	}

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if !strings.HasPrefix(lines[0], "Name,") {
		t.Errorf("unexpected CSV header: %q", lines[0])
	}
	// 2 of the 4 seeded farmers are in Kerio Valley.
	if len(lines) != 3 {
		t.Errorf("expected header + 2 rows, got %d lines", len(lines))
	}

	w = doRequest(router, "GET", "/livestock-farmers/export?format=pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for unsupported format, got %d", w.Code)
	}
}
