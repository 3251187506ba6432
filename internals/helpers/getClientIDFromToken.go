package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// === CLIENT ===
// client_id diisi middleware AuthJWT dari claim "client_id".
func GetClientIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, "client_id", "Client belum login")
}
