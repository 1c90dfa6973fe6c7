package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"farmhub/backend/pipeline"
	"farmhub/backend/services"
	"farmhub/backend/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Resource is the handler set every record collection exposes. main registers
// one of these per collection; mutating handlers sit behind the chief-admin
// middleware.
type Resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BatchDelete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

// resource wires one collection through the shared
// filter/aggregate/paginate pipeline. Every page used to reimplement this
// logic with small accidental variations; it lives here exactly once now.
type resource[T any] struct {
	collection   string
	displayName  string
	categoryKeys []string
	decode       func(store.Doc) T
	encode       func(T) map[string]interface{}
	validate     func(T) error
	setID        func(*T, string)
	acc          pipeline.Accessors[T]
	agg          pipeline.Aggregator[T]
	columns      []services.Column[T]
	exportBase   string
}

type listResponse[T any] struct {
	Records    []T                `json:"records"`
	Pagination pipeline.PageInfo  `json:"pagination"`
	Stats      map[string]float64 `json:"stats"`
}

type batchDeleteResponse struct {
	Deleted  []string `json:"deleted"`
	Failed   []string `json:"failed"`
	NotFound []string `json:"notFound"`
}

func (res resource[T]) fetchAll(r *http.Request) ([]T, error) {
	docs, err := store.Records.FetchAll(r.Context(), res.collection)
	if err != nil {
		return nil, err
	}
	records := make([]T, 0, len(docs))
	for _, d := range docs {
		records = append(records, res.decode(d))
	}
	return records, nil
}

// List applies the filter spec from the query string, computes the aggregate
// statistics over the filtered set, and returns the requested page window.
func (res resource[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := res.fetchAll(r)
	if err != nil {
		log.Printf("Failed to fetch %s: %v", res.collection, err)
		http.Error(w, "Failed to fetch "+res.displayName+" records", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	spec := pipeline.SpecFromQuery(q, res.categoryKeys...)
	filtered := pipeline.Filter(records, spec, res.acc)

	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	info := pipeline.NewPageInfo(len(filtered), page, pageSize)

	resp := listResponse[T]{
		Records:    pipeline.Paginate(filtered, info.Page, info.PageSize),
		Pagination: info,
		Stats:      res.agg.Compute(filtered),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (res resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	doc, err := store.Records.Get(r.Context(), res.collection, id)
	if err != nil {
		http.Error(w, res.displayName+" record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.decode(doc))
}

func (res resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	var rec T
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Validation happens before any store call is attempted.
	if err := res.validate(rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	if err := store.Records.Create(r.Context(), res.collection, id, res.encode(rec)); err != nil {
		log.Printf("Failed to create %s record: %v", res.collection, err)
		http.Error(w, "Failed to create "+res.displayName+" record", http.StatusInternalServerError)
		return
	}
	services.InvalidateDashboard(res.collection)

	res.setID(&rec, id)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// Update merges a field subset into the stored record. The body is taken as
// a partial document; the id is never updatable.
func (res resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	delete(fields, "id")
	if len(fields) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	if err := store.Records.Update(r.Context(), res.collection, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, res.displayName+" record not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to update %s/%s: %v", res.collection, id, err)
		http.Error(w, "Failed to update "+res.displayName+" record", http.StatusInternalServerError)
		return
	}
	services.InvalidateDashboard(res.collection)

	w.WriteHeader(http.StatusOK)
}

func (res resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := store.Records.Delete(r.Context(), res.collection, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, res.displayName+" record not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to delete %s/%s: %v", res.collection, id, err)
		http.Error(w, "Failed to delete "+res.displayName+" record", http.StatusInternalServerError)
		return
	}
	services.InvalidateDashboard(res.collection)

	w.WriteHeader(http.StatusOK)
}

// BatchDelete prunes the requested ids against the live collection first so a
// stale selection never drives a delete at a record that no longer exists,
// then issues one batched store request and reports per-id outcomes.
func (res resource[T]) BatchDelete(w http.ResponseWriter, r *http.Request) {
	var request struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.IDs) == 0 {
		http.Error(w, "ids is required", http.StatusBadRequest)
		return
	}

	docs, err := store.Records.FetchAll(r.Context(), res.collection)
	if err != nil {
		log.Printf("Failed to fetch %s for batch delete: %v", res.collection, err)
		http.Error(w, "Failed to fetch "+res.displayName+" records", http.StatusInternalServerError)
		return
	}
	liveIDs := make([]string, 0, len(docs))
	for _, d := range docs {
		liveIDs = append(liveIDs, d.ID)
	}

	kept, dropped := pipeline.PruneIDs(request.IDs, liveIDs)

	resp := batchDeleteResponse{NotFound: dropped}
	if len(kept) > 0 {
		deleted, failed, err := store.Records.BatchDelete(r.Context(), res.collection, kept)
		if err != nil {
			log.Printf("Batch delete failed for %s: %v", res.collection, err)
			http.Error(w, "Failed to batch delete "+res.displayName+" records", http.StatusInternalServerError)
			return
		}
		resp.Deleted = deleted
		resp.Failed = failed
		services.InvalidateDashboard(res.collection)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Export serializes the filtered (not full) record set. The filename embeds
// the active date range and the export date so downloads stay traceable.
func (res resource[T]) Export(w http.ResponseWriter, r *http.Request) {
	records, err := res.fetchAll(r)
	if err != nil {
		log.Printf("Failed to fetch %s for export: %v", res.collection, err)
		http.Error(w, "Failed to fetch "+res.displayName+" records", http.StatusInternalServerError)
		return
	}

	spec := pipeline.SpecFromQuery(r.URL.Query(), res.categoryKeys...)
	filtered := pipeline.Filter(records, spec, res.acc)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		filename := services.ExportFilename(res.exportBase, spec, "csv")
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := services.WriteCSV(w, res.columns, filtered); err != nil {
			log.Printf("CSV export failed for %s: %v", res.collection, err)
		}
	case "xlsx":
		filename := services.ExportFilename(res.exportBase, spec, "xlsx")
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := services.WriteXLSX(w, res.displayName, res.columns, filtered); err != nil {
			log.Printf("XLSX export failed for %s: %v", res.collection, err)
		}
	default:
		http.Error(w, "Unsupported export format: "+format, http.StatusBadRequest)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
