package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"farmhub/backend/database"
	"farmhub/backend/middleware"
	"farmhub/backend/models"
	"farmhub/backend/services"

	"github.com/gorilla/mux"
)

// GetUsers lists every synced user. Chief admins only.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
		return
	}

	isChief, err := services.IsChiefAdmin(userID)
	if err != nil {
		http.Error(w, "Failed to check user permissions: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !isChief {
		http.Error(w, "Forbidden: Chief administrator access required", http.StatusForbidden)
		return
	}

	rows, err := database.DB.Query("SELECT id, username, name, region, role FROM users")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		var region, role sql.NullString

		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &region, &role); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if region.Valid {
			u.Region = region.String
		}
		if role.Valid && role.String != "" {
			u.Role = role.String
		} else {
			u.Role = models.RoleFieldStaff
		}
		users = append(users, u)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// SyncFirebaseUser syncs a Firebase user with the backend database
// This ensures that Firebase users exist in our users table
func SyncFirebaseUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FirebaseID string `json:"firebaseId"`
		Name       string `json:"name"`
		Email      string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.FirebaseID == "" {
		http.Error(w, "firebaseId is required", http.StatusBadRequest)
		return
	}

	user, err := services.SyncUser(request.FirebaseID, request.Email, request.Name)
	if err != nil {
		http.Error(w, "Failed to sync user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// SetUserRole assigns a role to a user
func SetUserRole(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserIDFromContext(r)
	if actorID == "" {
		http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
		return
	}

	var request struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Role == "" {
		http.Error(w, "userId and role are required", http.StatusBadRequest)
		return
	}

	if err := services.SetUserRole(actorID, request.UserID, request.Role); err != nil {
		http.Error(w, "Failed to set user role: "+err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetUserRole returns the role of a user
func GetUserRole(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.GetUserIDFromContext(r)
	if actorID == "" {
		http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	userID := vars["userId"]

	role, err := services.GetUserRole(userID)
	if err != nil {
		http.Error(w, "Failed to get user role: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"userId": userID, "role": role})
}
