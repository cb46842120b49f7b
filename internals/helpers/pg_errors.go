// file: internals/helpers/pg_errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// MapPGError menerjemahkan error Postgres yang umum ke status + pesan HTTP.
// 23505 unique_violation, 23503 foreign_key_violation, 23P01 exclusion_violation.
func MapPGError(err error) (int, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return fiber.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23P01":
			return fiber.StatusConflict, "Bentrok data (exclusion violation)."
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
