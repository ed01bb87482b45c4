package controller

import (
	"errors"
	"strings"

	"furniture-catalog-be/internal/dto"
	"furniture-catalog-be/internal/pkg/serverutils"
	"furniture-catalog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
}

type interviewController struct {
	interviewService service.IInterviewService
}

func NewInterviewController(interviewService service.IInterviewService) IInterviewController {
	return &interviewController{
		interviewService: interviewService,
	}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("start", c.Start)
	h.Post("chat", c.Chat)
	h.Get("sessions", c.ListSessions)
}

func (c *interviewController) Start(ctx *fiber.Ctx) error {
	res, err := c.interviewService.Start(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Interview started", res))
}

func (c *interviewController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	// Whitespace-only input is an empty message, not an answer.
	req.Message = strings.TrimSpace(req.Message)
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.interviewService.Chat(ctx.Context(), &req)
	if err != nil {
		// Unknown sessions answer 200 with an error envelope so chat
		// clients can render the message without special casing.
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.JSON(serverutils.ErrorResponse(404, "Session not found. Please start a new interview."))
		}
		if errors.Is(err, service.ErrSessionCompleted) {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "Interview already completed. Please start a new interview."))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *interviewController) ListSessions(ctx *fiber.Ctx) error {
	req := dto.SessionListRequest{
		Page:      ctx.QueryInt("page", 1),
		Limit:     ctx.QueryInt("limit", 20),
		Completed: ctx.QueryBool("completed", false),
	}

	res, err := c.interviewService.ListSessions(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Sessions", res))
}
