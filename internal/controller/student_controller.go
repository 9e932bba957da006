package controller

import (
	"errors"

	"classrecord-be/internal/dto"
	"classrecord-be/internal/pkg/serverutils"
	"classrecord-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStudentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByClass(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type studentController struct {
	studentService service.IStudentService
}

func NewStudentController(studentService service.IStudentService) IStudentController {
	return &studentController{
		studentService: studentService,
	}
}

func (c *studentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/student/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("class/:classId", c.ListByClass)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *studentController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.studentService.Create(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrClassNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create student", res))
}

func (c *studentController) ListByClass(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	classId, err := uuid.Parse(ctx.Params("classId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	res, err := c.studentService.ListByClass(ctx.Context(), userId, classId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list students", res))
}

func (c *studentController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	var req dto.UpdateStudentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.studentService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update student", res))
}

func (c *studentController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	deleted, err := c.studentService.Delete(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete student", nil))
}
