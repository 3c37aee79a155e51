// file: internals/helpers/auth/bimbel_context_resolver.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bimbelku_backend/internals/constants"
)

/* =========================
   Locals keys (diisi oleh middleware AuthJWT)
   ========================= */

const (
	LocUserID   = "user_id"
	LocBimbelID = "bimbel_id"
	LocRole     = "role"
)

var (
	ErrBimbelContextMissing = fiber.NewError(fiber.StatusUnauthorized,
		"Bimbel context tidak ditemukan. Sertakan header X-Active-Bimbel-ID atau gunakan token ber-scope bimbel.")
)

/* =========================
   Resolver: path → header → query → token
   ========================= */

// GetBimbelID me-resolve tenant (bimbel) aktif untuk request ini.
// Identity provider eksternal yang menerbitkan claim; di sini cuma dibaca, tidak diverifikasi ulang.
func GetBimbelID(c *fiber.Ctx) (uuid.UUID, error) {
	// 1) path param
	if s := strings.TrimSpace(c.Params("bimbel_id")); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			return id, nil
		}
	}

	// 2) header
	if h := strings.TrimSpace(c.Get("X-Active-Bimbel-ID")); h != "" {
		if id, err := uuid.Parse(h); err == nil {
			return id, nil
		}
	}

	// 3) query
	if q := strings.TrimSpace(c.Query("bimbel_id")); q != "" {
		if id, err := uuid.Parse(q); err == nil {
			return id, nil
		}
	}

	// 4) token claim (single-tenant session)
	if v := c.Locals(LocBimbelID); v != nil {
		if s, ok := v.(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				return id, nil
			}
		}
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, nil
		}
	}

	return uuid.Nil, ErrBimbelContextMissing
}

// EnsureBimbelScope: kalau token punya scope bimbel, path/header wajib konsisten.
func EnsureBimbelScope(c *fiber.Ctx, resolved uuid.UUID) error {
	v := c.Locals(LocBimbelID)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	tok, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || tok == uuid.Nil {
		return nil
	}
	if tok != resolved {
		return fiber.NewError(fiber.StatusForbidden, "bimbel scope mismatch")
	}
	return nil
}

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak ditemukan di token")
	}
	s, ok := v.(string)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id invalid")
	}
	return uuid.Parse(strings.TrimSpace(s))
}

/* =========================
   Role guards
   ========================= */

func currentRole(c *fiber.Ctx) string {
	if v := c.Locals(LocRole); v != nil {
		if s, ok := v.(string); ok {
			return strings.ToLower(strings.TrimSpace(s))
		}
	}
	return ""
}

func IsOwner(c *fiber.Ctx) bool   { return currentRole(c) == constants.RoleOwner }
func IsAdmin(c *fiber.Ctx) bool   { return currentRole(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return currentRole(c) == constants.RoleTeacher }

// IsStaff: teacher/admin/owner — boleh menyentuh fitur penjadwalan
func IsStaff(c *fiber.Ctx) bool {
	r := currentRole(c)
	for _, allowed := range constants.StaffAndAbove {
		if r == allowed {
			return true
		}
	}
	return false
}
