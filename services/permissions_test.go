package services

import (
	"testing"

	"farmhub/backend/database"
	"farmhub/backend/models"
)

func clearUsers(t *testing.T) {
	t.Helper()
	if _, err := database.DB.Exec("DELETE FROM users"); err != nil {
		t.Fatalf("failed to clear users: %v", err)
	}
}

func TestIsRoleAtLeast(t *testing.T) {
	tests := []struct {
		userRole     string
		requiredRole string
		want         bool
	}{
		{models.RoleChiefAdmin, models.RoleFieldStaff, true},
		{models.RoleChiefAdmin, models.RoleChiefAdmin, true},
		{models.RoleFieldStaff, models.RoleFieldStaff, true},
		{models.RoleFieldStaff, models.RoleChiefAdmin, false},
		{"mystery", models.RoleChiefAdmin, false},
		{"mystery", "mystery", true},
	}
	for _, tt := range tests {
		if got := IsRoleAtLeast(tt.userRole, tt.requiredRole); got != tt.want {
			t.Errorf("IsRoleAtLeast(%q, %q) = %v, want %v", tt.userRole, tt.requiredRole, got, tt.want)
		}
	}
}

func TestGetUserRoleDefaultsToFieldStaff(t *testing.T) {
	clearUsers(t)

	role, err := GetUserRole("never-seen")
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if role != models.RoleFieldStaff {
		t.Errorf("expected unknown user to be field staff, got %q", role)
	}
}

func TestSyncUserPromotesDefaultChiefAdmins(t *testing.T) {
	clearUsers(t)

	user, err := SyncUser("fb-1", "ezekiel@example.org", "Ezekiel Kirui")
	if err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if user.Role != models.RoleChiefAdmin {
		t.Errorf("expected default chief admin role, got %q", user.Role)
	}

	user, err = SyncUser("fb-2", "staff@example.org", "Jane Korir")
	if err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if user.Role != models.RoleFieldStaff {
		t.Errorf("expected field staff role, got %q", user.Role)
	}
}

func TestSyncUserKeepsAssignedRole(t *testing.T) {
	clearUsers(t)

	if _, err := SyncUser("fb-3", "promoted@example.org", "Promoted Person"); err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if _, err := database.DB.Exec("UPDATE users SET role = ? WHERE id = ?", models.RoleChiefAdmin, "fb-3"); err != nil {
		t.Fatalf("failed to promote user: %v", err)
	}

	// A later sync must not demote a manually promoted user.
	user, err := SyncUser("fb-3", "promoted@example.org", "Promoted Person")
	if err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if user.Role != models.RoleChiefAdmin {
		t.Errorf("expected promoted user to stay chief admin, got %q", user.Role)
	}
}

func TestSetUserRole(t *testing.T) {
	clearUsers(t)

	if _, err := SyncUser("chief-1", "chief@example.org", "Ezekiel Kirui"); err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}
	if _, err := SyncUser("staff-1", "staff@example.org", "Field Person"); err != nil {
		t.Fatalf("SyncUser failed: %v", err)
	}

	if err := SetUserRole("chief-1", "staff-1", models.RoleChiefAdmin); err != nil {
		t.Fatalf("SetUserRole failed: %v", err)
	}
	role, err := GetUserRole("staff-1")
	if err != nil {
		t.Fatalf("GetUserRole failed: %v", err)
	}
	if role != models.RoleChiefAdmin {
		t.Errorf("expected promoted role, got %q", role)
	}

	// The newly promoted user cannot be demoted by a field staff actor.
	if err := SetUserRole("fb-nobody", "staff-1", models.RoleFieldStaff); err == nil {
		t.Error("expected non-chief actor to be rejected")
	}

	if err := SetUserRole("chief-1", "staff-1", "superuser"); err == nil {
		t.Error("expected invalid role to be rejected")
	}

	if err := SetUserRole("chief-1", "ghost", models.RoleFieldStaff); err == nil {
		t.Error("expected unknown target user to be rejected")
	}
}
