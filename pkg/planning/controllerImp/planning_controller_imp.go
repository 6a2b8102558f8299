package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmops/pkg/planning/service"
	"farmops/pkg/restrictions"
)

type PlanningCtrl struct{ svc service.PlanningService }

func New(svc service.PlanningService) *PlanningCtrl { return &PlanningCtrl{svc} }

func seasonID(c echo.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *PlanningCtrl) Usage(c echo.Context) error {
	id, ok := seasonID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	out, err := h.svc.Usage(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlanningCtrl) Readiness(c echo.Context) error {
	id, ok := seasonID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	out, err := h.svc.Readiness(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlanningCtrl) ApplicationVariance(c echo.Context) error {
	id, ok := seasonID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	out, err := h.svc.ApplicationVariance(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlanningCtrl) PassVariance(c echo.Context) error {
	id, ok := seasonID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	out, err := h.svc.PassVariance(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

type candidateReq struct {
	FieldID     uint   `json:"field_id" validate:"required"`
	CropID      uint   `json:"crop_id" validate:"required"`
	TimingID    uint   `json:"timing_id"`
	DateApplied string `json:"date_applied" validate:"required"`
	HarvestDate string `json:"harvest_date"`
	Products    []struct {
		ProductID uint    `json:"product_id" validate:"required"`
		Rate      float64 `json:"rate" validate:"gte=0"`
		RateUnit  string  `json:"rate_unit" validate:"required"`
		Acres     float64 `json:"acres" validate:"gte=0"`
	} `json:"products" validate:"min=1,dive"`
}

// CheckRestrictions validates a would-be application against label
// restrictions before the user records it. Nothing is persisted.
func (h *PlanningCtrl) CheckRestrictions(c echo.Context) error {
	id, ok := seasonID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	var req candidateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	applied, err := time.Parse("2006-01-02", req.DateApplied)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "date_applied must be YYYY-MM-DD"})
	}
	cand := restrictions.Candidate{FieldID: req.FieldID, CropID: req.CropID, TimingID: req.TimingID, DateApplied: applied}
	if req.HarvestDate != "" {
		hd, err := time.Parse("2006-01-02", req.HarvestDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "harvest_date must be YYYY-MM-DD"})
		}
		cand.HarvestDate = &hd
	}
	for _, p := range req.Products {
		cand.Products = append(cand.Products, restrictions.CandidateProduct{ProductID: p.ProductID, Rate: p.Rate, RateUnit: p.RateUnit, Acres: p.Acres})
	}
	violations, err := h.svc.CheckRestrictions(id, cand)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"violations": violations,
		"blocking":   restrictions.HasBlockingViolations(violations),
	})
}
