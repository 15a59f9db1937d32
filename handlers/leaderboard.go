package handlers

import (
	"errors"

	"leaderboard-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(
	app *fiber.App,
	userService *services.UserService,
	claimService *services.ClaimService,
	historyService *services.HistoryService,
	broadcaster *services.Broadcaster,
) {
	api := app.Group("/api")

	api.Get("/users", func(c *fiber.Ctx) error {
		users, err := userService.ListUsers(c.UserContext())
		if err != nil {
			return internalError(c, "failed to list users", err)
		}
		return c.JSON(users)
	})

	api.Post("/users", func(c *fiber.Ctx) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
			})
		}

		user, err := userService.AddUser(c.UserContext(), req.Name)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	api.Post("/claim-points", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
			})
		}

		result, err := claimService.ClaimPoints(c.UserContext(), req.UserID)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":       "Points claimed successfully",
			"pointsAwarded": result.PointsAwarded,
			"user":          result.User,
			"users":         result.Users,
		})
	})

	api.Get("/points-history", func(c *fiber.Ctx) error {
		entries, err := historyService.ListHistory(c.UserContext())
		if err != nil {
			return internalError(c, "failed to list history", err)
		}
		return c.JSON(entries)
	})

	api.Get("/points-history/:userId", func(c *fiber.Ctx) error {
		entries, err := historyService.ListHistoryForUser(c.UserContext(), c.Params("userId"))
		if err != nil {
			return internalError(c, "failed to list user history", err)
		}
		return c.JSON(entries)
	})

	// Realtime channel: every connected client receives usersUpdated and
	// pointsClaimed events, no per-client filtering.
	api.Get("/events", broadcaster.StreamEventsSSE)
}

func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c, "internal server error", err)
	}
}

func internalError(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": message,
		"cause": err.Error(),
	})
}
