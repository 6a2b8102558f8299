package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/invoice/repository"
)

type InvoiceCtrl struct{ repo repository.InvoiceRepository }

func New(repo repository.InvoiceRepository) *InvoiceCtrl { return &InvoiceCtrl{repo} }

type invLineReq struct {
	ProductID      uint     `json:"product_id" validate:"required"`
	Quantity       float64  `json:"quantity" validate:"gt=0"`
	Unit           string   `json:"unit" validate:"required"`
	LandedUnitCost *float64 `json:"landed_unit_cost"`
	LandedTotal    *float64 `json:"landed_total"`
}

type invoiceReq struct {
	VendorName  string       `json:"vendor_name" validate:"required"`
	SeasonYear  int          `json:"season_year" validate:"required"`
	InvoiceDate string       `json:"invoice_date"`
	Number      string       `json:"number"`
	Lines       []invLineReq `json:"lines" validate:"min=1,dive"`
}

func (h *InvoiceCtrl) Create(c echo.Context) error {
	var req invoiceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	date := time.Now()
	if req.InvoiceDate != "" {
		if d, err := time.Parse("2006-01-02", req.InvoiceDate); err == nil {
			date = d
		}
	}
	inv := &entities.Invoice{VendorName: req.VendorName, SeasonYear: req.SeasonYear, InvoiceDate: date, Number: req.Number}
	for _, l := range req.Lines {
		inv.Lines = append(inv.Lines, entities.InvoiceLine{
			ProductID: l.ProductID, Quantity: l.Quantity, Unit: l.Unit,
			LandedUnitCost: l.LandedUnitCost, LandedTotal: l.LandedTotal,
		})
	}
	if err := h.repo.Create(inv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *InvoiceCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	inv, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *InvoiceCtrl) List(c echo.Context) error {
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

func (h *InvoiceCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
