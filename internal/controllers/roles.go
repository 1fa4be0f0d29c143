package controllers

import (
    "slices"

    "github.com/zaqqye/spmb_backend/internal/models"
)

// Editors manage website content; admins additionally run admissions and the inbox.
var allowedRoles = []string{models.RoleAdmin, models.RoleEditor}

func IsValidRole(role string) bool {
    return slices.Contains(allowedRoles, role)
}
