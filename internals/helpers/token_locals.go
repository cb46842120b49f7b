// file: internals/helpers/token_locals.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"atletaku_backend/internals/constants"
)

/* ============================================
   Locals keys (diisi oleh middleware AuthJWT)
   ============================================ */

const (
	LocUserID   = "user_id"   // string UUID
	LocSchoolID = "school_id" // string UUID (tenant aktif)
	LocRole     = "role"      // string (lihat constants.AllowedRoles)
)

func uuidFromLocals(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" kosong di token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Format "+key+" tidak valid di token")
	}
	return id, nil
}

// GetSchoolIDFromToken — tenant aktif. Semua query WAJIB membawa id ini
// sebagai predicate; tidak ada fallback lintas tenant.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocSchoolID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, LocUserID)
}

func roleFromLocals(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

func IsOwner(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleOwner }
func IsAdmin(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleAdmin }
func IsCoach(c *fiber.Ctx) bool   { return roleFromLocals(c) == constants.RoleCoach }
func IsStudent(c *fiber.Ctx) bool { return roleFromLocals(c) == constants.RoleStudent }

// IsSchoolStaff — boleh mengelola data akademik/latihan sekolah.
func IsSchoolStaff(c *fiber.Ctx) bool {
	switch roleFromLocals(c) {
	case constants.RoleOwner, constants.RoleAdmin, constants.RoleCoach:
		return true
	}
	return false
}
