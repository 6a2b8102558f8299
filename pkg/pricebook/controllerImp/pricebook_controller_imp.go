package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/pricebook"
	"farmops/pkg/pricebook/repository"
)

type PriceBookCtrl struct{ repo repository.PriceBookRepository }

func New(repo repository.PriceBookRepository) *PriceBookCtrl { return &PriceBookCtrl{repo} }

type entryReq struct {
	ProductID  uint    `json:"product_id" validate:"required"`
	SeasonYear int     `json:"season_year" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	PriceUOM   string  `json:"price_uom" validate:"required"`
	Source     string  `json:"source" validate:"required,oneof=manual_override manual awarded estimated invoice"`
	VendorName string  `json:"vendor_name"`
}

func (h *PriceBookCtrl) Create(c echo.Context) error {
	var req entryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	e := &entities.PriceBookEntry{ProductID: req.ProductID, SeasonYear: req.SeasonYear, Price: req.Price, PriceUOM: req.PriceUOM, Source: req.Source, VendorName: req.VendorName}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *PriceBookCtrl) List(c echo.Context) error {
	if y := c.QueryParam("season_year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season_year"})
		}
		out, err := h.repo.ByYear(year)
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

// Resolve answers "what planned price would the pass variance use" for one
// product and year, so the UI can show the baseline before any run.
func (h *PriceBookCtrl) Resolve(c echo.Context) error {
	pid, err := strconv.Atoi(c.QueryParam("product_id"))
	if err != nil || pid <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "product_id required"})
	}
	year, err := strconv.Atoi(c.QueryParam("season_year"))
	if err != nil || year <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "season_year required"})
	}
	entries, err := h.repo.ByYear(year)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	r := pricebook.ResolvePlanned(entries, uint(pid), year)
	if r == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no planned price"})
	}
	return c.JSON(http.StatusOK, r)
}

func (h *PriceBookCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
