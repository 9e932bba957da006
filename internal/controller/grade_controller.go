package controller

import (
	"errors"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/pkg/serverutils"
	"classrecord-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IGradeController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	ListByStudent(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Summary(ctx *fiber.Ctx) error
}

type gradeController struct {
	gradeService service.IGradeService
}

func NewGradeController(gradeService service.IGradeService) IGradeController {
	return &gradeController{
		gradeService: gradeService,
	}
}

func (c *gradeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/grade/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Record)
	h.Get("summary", c.Summary)
	h.Get("student/:studentId", c.ListByStudent)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *gradeController) Record(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RecordGradeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.gradeService.Record(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record grade", res))
}

func (c *gradeController) ListByStudent(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	studentId, err := uuid.Parse(ctx.Params("studentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	res, err := c.gradeService.ListByStudent(ctx.Context(), userId, studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list grades", res))
}

func (c *gradeController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade id")
	}

	var req dto.UpdateGradeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.gradeService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Grade not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update grade", res))
}

func (c *gradeController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid grade id")
	}

	deleted, err := c.gradeService.Delete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Grade not found")
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete grade", nil))
}

func (c *gradeController) Summary(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.gradeService.ClassSummaries(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success grade summary", res))
}
