package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/inventory/repository"
)

type InventoryCtrl struct{ repo repository.InventoryRepository }

func New(repo repository.InventoryRepository) *InventoryCtrl { return &InventoryCtrl{repo} }

type itemReq struct {
	ProductID      uint    `json:"product_id" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gte=0"`
	Unit           string  `json:"unit" validate:"required"`
	ContainerCount *int    `json:"container_count"`
	Location       string  `json:"location"`
}

func (h *InventoryCtrl) Create(c echo.Context) error {
	var req itemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	it := &entities.InventoryItem{ProductID: req.ProductID, Quantity: req.Quantity, Unit: req.Unit, ContainerCount: req.ContainerCount, Location: req.Location}
	if err := h.repo.Create(it); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, it)
}

func (h *InventoryCtrl) List(c echo.Context) error {
	if p := c.QueryParam("product_id"); p != "" {
		pid, err := strconv.Atoi(p)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad product_id"})
		}
		out, err := h.repo.ByProduct(uint(pid))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryCtrl) Adjust(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Delta float64 `json:"delta"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.repo.Adjust(uint(id), body.Delta); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *InventoryCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
