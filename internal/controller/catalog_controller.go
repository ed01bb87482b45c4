package controller

import (
	"furniture-catalog-be/internal/pkg/serverutils"
	"furniture-catalog-be/internal/service"
	ws "furniture-catalog-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListRooms(ctx *fiber.Ctx) error
	GetRoomCatalog(ctx *fiber.Ctx) error
	ListProductConfigs(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
	hub            *ws.Hub
}

func NewCatalogController(catalogService service.ICatalogService, hub *ws.Hub) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		hub:            hub,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("rooms", c.ListRooms)
	h.Get("rooms/:id", c.GetRoomCatalog)
	h.Get("furniture-types/:id/configs", c.ListProductConfigs)

	if c.hub != nil {
		h.Use("feed", func(ctx *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(ctx) {
				return ctx.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		h.Get("feed", websocket.New(func(conn *websocket.Conn) {
			ws.ServeWs(c.hub, conn)
		}))
	}
}

func (c *catalogController) ListRooms(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListRooms(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Rooms", res))
}

func (c *catalogController) GetRoomCatalog(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid room id"))
	}

	res, err := c.catalogService.GetRoomCatalog(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Room not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Room catalog", res))
}

func (c *catalogController) ListProductConfigs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid furniture type id"))
	}

	res, err := c.catalogService.ListProductConfigs(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Product configs", res))
}
