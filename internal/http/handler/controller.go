package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"practice/internal/service"
)

// ProductController exposes the product service over HTTP.
type ProductController struct {
	svc service.ProductService
}

// NewProductController builds the controller and logs that it was wired.
func NewProductController(svc service.ProductService, logger *zap.Logger) *ProductController {
	logger.Info("product_controller_constructed", zap.String("component", "http"))
	return &ProductController{svc: svc}
}

// Register mounts the product routes. The application root serves the
// product as well as /product.
func (pc *ProductController) Register(r fiber.Router) {
	h := GetProduct(pc.svc)
	r.Get("/", h)
	r.Get("/product", h)
}

// GetProduct returns the product string.
//
// @Summary  Get the product
// @Produce  plain
// @Success  200 {string} string
// @Failure  404 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /product [get]
func GetProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetProduct(c.UserContext())
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "product not found")
			case errors.Is(err, service.ErrRepositoryUnavailable):
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusOK).SendString(p)
	}
}
