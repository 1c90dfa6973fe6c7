package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"farmhub/backend/services"
)

// GetDashboard returns the cross-collection performance summary
func GetDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := services.BuildDashboard(r.Context())
	if err != nil {
		log.Printf("Failed to build dashboard: %v", err)
		http.Error(w, "Failed to build dashboard summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// GetProgramTargets returns the program targets backing the dashboard
func GetProgramTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := services.GetProgramTargets()
	if err != nil {
		log.Printf("Failed to load program targets: %v", err)
		http.Error(w, "Failed to load program targets", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(targets)
}

// UpdateProgramTarget updates one target value
func UpdateProgramTarget(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Metric string `json:"metric"`
		Target string `json:"target"`
	}
	// Accepts the target as a string because the admin form submits text
	// inputs; parsed and validated here before any write.
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if request.Metric == "" {
		http.Error(w, "metric is required", http.StatusBadRequest)
		return
	}
	target, err := strconv.ParseFloat(request.Target, 64)
	if err != nil || target < 0 {
		http.Error(w, "target must be a non-negative number", http.StatusBadRequest)
		return
	}

	if err := services.SetProgramTarget(request.Metric, target); err != nil {
		http.Error(w, "Failed to update program target: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
