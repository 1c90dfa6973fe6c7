package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmhub/backend/database"
	"farmhub/backend/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupPermissionsTestDB(t *testing.T) {
	t.Helper()
	var err error
	database.DB, err = sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.DB.SetMaxOpenConns(1)
	if err := database.CreateSchema(database.DB); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	users := []struct{ id, role string }{
		{"chief-1", models.RoleChiefAdmin},
		{"staff-1", models.RoleFieldStaff},
	}
	for _, u := range users {
		_, err := database.DB.Exec(
			"INSERT INTO users (id, username, name, role) VALUES (?, ?, ?, ?)",
			u.id, u.id+"@example.org", u.id, u.role,
		)
		if err != nil {
			t.Fatalf("failed to seed user %s: %v", u.id, err)
		}
	}

	t.Cleanup(func() {
		database.DB.Exec("DROP TABLE IF EXISTS users")
		database.DB.Exec("DROP TABLE IF EXISTS saved_filters")
		database.DB.Exec("DROP TABLE IF EXISTS program_targets")
		database.DB.Close()
	})
}

func requestAs(userID string) *http.Request {
	req := httptest.NewRequest("POST", "/api/livestock-farmers", nil)
	if userID == "" {
		return req
	}
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestRequireChiefAdmin(t *testing.T) {
	setupPermissionsTestDB(t)

	handlerCalled := false
	handler := RequireChiefAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	testCases := []struct {
		name         string
		userID       string
		expectedCode int
		expectCalled bool
	}{
		{
			name:         "Chief admin passes",
			userID:       "chief-1",
			expectedCode: http.StatusOK,
			expectCalled: true,
		},
		{
			name:         "Field staff is forbidden",
			userID:       "staff-1",
			expectedCode: http.StatusForbidden,
			expectCalled: false,
		},
		{
			name:         "Unknown user defaults to field staff",
			userID:       "nobody",
			expectedCode: http.StatusForbidden,
			expectCalled: false,
		},
		{
			name:         "Missing user is unauthorized",
			userID:       "",
			expectedCode: http.StatusUnauthorized,
			expectCalled: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handlerCalled = false
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, requestAs(tc.userID))
			if w.Code != tc.expectedCode {
				t.Errorf("expected status %d, got %d", tc.expectedCode, w.Code)
			}
			if handlerCalled != tc.expectCalled {
				t.Errorf("handler called = %v, want %v", handlerCalled, tc.expectCalled)
			}
		})
	}
}

func TestRequireChiefAdminSkipsPreflight(t *testing.T) {
	setupPermissionsTestDB(t)

	handlerCalled := false
	handler := RequireChiefAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest("OPTIONS", "/api/livestock-farmers", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if !handlerCalled {
		t.Error("OPTIONS request should pass through without a role check")
	}
}
