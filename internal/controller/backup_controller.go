package controller

import (
	"errors"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/pkg/serverutils"
	"classrecord-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBackupController interface {
	RegisterRoutes(r fiber.Router)
	Export(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type backupController struct {
	backupService service.IBackupService
}

func NewBackupController(backupService service.IBackupService) IBackupController {
	return &backupController{
		backupService: backupService,
	}
}

func (c *backupController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/backup/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("export", c.Export)
	h.Post("import", c.Import)
	h.Get("history", c.History)
	h.Get("status", c.Status)
}

func (c *backupController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.backupService.Export(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success export backup", res))
}

func (c *backupController) Import(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ImportBackupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.backupService.Import(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrBackupNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success import backup", res))
}

func (c *backupController) History(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.backupService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success backup history", res))
}

func (c *backupController) Status(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.backupService.Status(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success backup status", res))
}
