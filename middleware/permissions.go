package middleware

import (
	"log"
	"net/http"

	"farmhub/backend/services"
)

// RequireChiefAdmin gates the mutating routes: only chief administrators may
// create, edit, or delete records. Field staff get a 403; reads and exports
// stay open to every authenticated user.
func RequireChiefAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		userID := GetUserIDFromContext(r)
		if userID == "" {
			http.Error(w, "Unauthorized: No user ID found", http.StatusUnauthorized)
			return
		}

		isChief, err := services.IsChiefAdmin(userID)
		if err != nil {
			log.Printf("Failed to check role for user %s: %v", userID, err)
			http.Error(w, "Failed to check user permissions", http.StatusInternalServerError)
			return
		}
		if !isChief {
			http.Error(w, "Forbidden: Chief administrator access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
