package services

import (
	"database/sql"
	"fmt"

	"farmhub/backend/database"
	"farmhub/backend/models"
)

// RoleHierarchy defines the hierarchy of roles in the system
// Higher numbers have more permissions
var RoleHierarchy = map[string]int{
	models.RoleFieldStaff: 1,
	models.RoleChiefAdmin: 2,
}

// IsRoleAtLeast checks if a role is at least at the specified level
func IsRoleAtLeast(userRole, requiredRole string) bool {
	userLevel, userExists := RoleHierarchy[userRole]
	requiredLevel, requiredExists := RoleHierarchy[requiredRole]

	if !userExists || !requiredExists {
		return userRole == requiredRole
	}
	return userLevel >= requiredLevel
}

// GetUserRole gets the role of a user. Unknown users default to field staff.
func GetUserRole(userID string) (string, error) {
	var role sql.NullString
	err := database.DB.QueryRow("SELECT role FROM users WHERE id = ?", userID).Scan(&role)
	if err == sql.ErrNoRows {
		return models.RoleFieldStaff, nil
	}
	if err != nil {
		return "", err
	}

	if !role.Valid || role.String == "" {
		return models.RoleFieldStaff, nil
	}
	return role.String, nil
}

// IsChiefAdmin checks if a user holds the chief administrator role
func IsChiefAdmin(userID string) (bool, error) {
	role, err := GetUserRole(userID)
	if err != nil {
		return false, err
	}
	return IsRoleAtLeast(role, models.RoleChiefAdmin), nil
}

// SetUserRole sets the role of a user. Only chief administrators may change
// roles.
func SetUserRole(actorID, targetUserID, newRole string) error {
	if _, exists := RoleHierarchy[newRole]; !exists {
		return fmt.Errorf("invalid role: %s", newRole)
	}

	isChief, err := IsChiefAdmin(actorID)
	if err != nil {
		return fmt.Errorf("failed to check actor role: %w", err)
	}
	if !isChief {
		return fmt.Errorf("user %s is not permitted to change roles", actorID)
	}

	result, err := database.DB.Exec("UPDATE users SET role = ? WHERE id = ?", newRole, targetUserID)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("user %s not found", targetUserID)
	}
	return nil
}

// SyncUser upserts a Firebase-authenticated user into the local users table.
// Names on the default chief admin list come in with that role.
func SyncUser(firebaseID, email, name string) (*models.User, error) {
	role := models.RoleFieldStaff
	for _, admin := range models.DefaultChiefAdmins {
		if name == admin {
			role = models.RoleChiefAdmin
			break
		}
	}

	var existingRole sql.NullString
	err := database.DB.QueryRow("SELECT role FROM users WHERE id = ?", firebaseID).Scan(&existingRole)
	if err == sql.ErrNoRows {
		_, err = database.DB.Exec(
			"INSERT INTO users (id, username, name, role) VALUES (?, ?, ?, ?)",
			firebaseID, email, name, role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	} else {
		// Existing users keep their assigned role unless the default
		// admin list promotes them.
		if existingRole.Valid && existingRole.String != "" && role != models.RoleChiefAdmin {
			role = existingRole.String
		}
		_, err = database.DB.Exec(
			"UPDATE users SET username = ?, name = ?, role = ? WHERE id = ?",
			email, name, role, firebaseID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &models.User{ID: firebaseID, Username: email, Name: name, Role: role}, nil
}
