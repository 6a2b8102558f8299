package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/apprecord/repository"
)

type AppRecordCtrl struct{ repo repository.ApplicationRecordRepository }

func New(repo repository.ApplicationRecordRepository) *AppRecordCtrl { return &AppRecordCtrl{repo} }

type appliedProductReq struct {
	ProductID    uint    `json:"product_id" validate:"required"`
	ActualRate   float64 `json:"actual_rate" validate:"gte=0"`
	RateUnit     string  `json:"rate_unit" validate:"required"`
	TotalApplied float64 `json:"total_applied" validate:"gte=0"`
}

type recordReq struct {
	FieldID      uint                `json:"field_id" validate:"required"`
	CropID       uint                `json:"crop_id" validate:"required"`
	TimingID     uint                `json:"timing_id"`
	SeasonID     uint                `json:"season_id" validate:"required"`
	DateApplied  string              `json:"date_applied" validate:"required"`
	AcresTreated float64             `json:"acres_treated" validate:"gt=0"`
	Applicator   string              `json:"applicator"`
	Products     []appliedProductReq `json:"products" validate:"min=1,dive"`
	Notes        string              `json:"notes"`
}

func (h *AppRecordCtrl) Create(c echo.Context) error {
	var req recordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	date, err := time.Parse("2006-01-02", req.DateApplied)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date_applied must be YYYY-MM-DD"})
	}
	rec := &entities.ApplicationRecord{
		FieldID: req.FieldID, CropID: req.CropID, TimingID: req.TimingID, SeasonID: req.SeasonID,
		DateApplied: date, AcresTreated: req.AcresTreated, Applicator: req.Applicator, Notes: req.Notes,
	}
	for _, p := range req.Products {
		total := p.TotalApplied
		if total == 0 {
			total = p.ActualRate * req.AcresTreated
		}
		rec.Products = append(rec.Products, entities.AppliedProduct{
			ProductID: p.ProductID, ActualRate: p.ActualRate, RateUnit: p.RateUnit, TotalApplied: total,
		})
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *AppRecordCtrl) List(c echo.Context) error {
	if s := c.QueryParam("season_id"); s != "" {
		sid, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season_id"})
		}
		out, err := h.repo.BySeason(uint(sid))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, out)
	}
	if f := c.QueryParam("field_id"); f != "" {
		fid, err := strconv.Atoi(f)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad field_id"})
		}
		out, err := h.repo.ByField(uint(fid))
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

func (h *AppRecordCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
