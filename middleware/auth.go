package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Define context keys
type contextKey string

const UserIDKey contextKey = "user_id"

var firebaseAuth *auth.Client

// InitializeFirebase initializes the Firebase Admin SDK used for ID token
// verification. Without credentials the service runs in dev mode with auth
// checks disabled.
func InitializeFirebase() error {
	log.Println("Starting Firebase initialization...")

	credBytes, ok := firebaseCredentials()
	if !ok {
		log.Println("No Firebase credentials found, running in development mode with auth checks disabled")
		return nil
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		projectID = "genco-farm-hub"
	}

	opt := option.WithCredentialsJSON(credBytes)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: projectID}, opt)
	if err != nil {
		log.Printf("Error initializing Firebase app: %v", err)
		return err
	}

	firebaseAuth, err = app.Auth(context.Background())
	if err != nil {
		log.Printf("Error getting Firebase Auth client: %v", err)
		return err
	}

	log.Println("Firebase Admin SDK initialized successfully")
	return nil
}

// firebaseCredentials resolves service-account JSON from the environment,
// direct first, then base64.
func firebaseCredentials() ([]byte, bool) {
	if creds := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); creds != "" {
		log.Println("Using JSON Firebase credentials from environment")
		return []byte(creds), true
	}
	if encoded := os.Getenv("FIREBASE_SERVICE_ACCOUNT_BASE64"); encoded != "" {
		log.Println("Using base64-encoded Firebase credentials from environment")
		credBytes, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			log.Printf("Error decoding base64 Firebase credentials: %v", err)
			return nil, false
		}
		return credBytes, true
	}
	return nil, false
}

// AuthMiddleware verifies Firebase JWT tokens from the Authorization header
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip auth for OPTIONS requests (CORS preflight)
		if r.Method == "OPTIONS" {
			next.ServeHTTP(w, r)
			return
		}

		// If Firebase auth is not initialized, skip token verification (dev mode)
		if firebaseAuth == nil {
			ctx := context.WithValue(r.Context(), UserIDKey, "dev-admin-1")
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		idToken := extractToken(authHeader)
		if idToken == "" {
			http.Error(w, "Unauthorized: No token provided", http.StatusUnauthorized)
			return
		}

		token, err := verifyToken(r.Context(), idToken)
		if err != nil {
			log.Printf("Error verifying token: %v", err)
			http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, token.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken gets the token from the Authorization header
func extractToken(authHeader string) string {
	parts := strings.Split(authHeader, "Bearer ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// verifyToken verifies the Firebase JWT token
func verifyToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, errors.New("Firebase auth client not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("error verifying ID token: %w", err)
	}
	return token, nil
}

// GetUserIDFromContext retrieves the user ID from the request context
func GetUserIDFromContext(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
