package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/season/repository"
)

type SeasonCtrl struct{ repo repository.SeasonRepository }

func New(repo repository.SeasonRepository) *SeasonCtrl { return &SeasonCtrl{repo} }

type tierReq struct {
	Name    string  `json:"name" validate:"required"`
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type plannedAppReq struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Rate      float64 `json:"rate" validate:"gte=0"`
	RateUnit  string  `json:"rate_unit" validate:"required"`
	TierIDs   []uint  `json:"tier_ids"`
}

type timingReq struct {
	Name     string          `json:"name" validate:"required"`
	Ord      int             `json:"ord"`
	Products []plannedAppReq `json:"products" validate:"dive"`
}

type cropReq struct {
	Name       string      `json:"name" validate:"required"`
	TotalAcres float64     `json:"total_acres" validate:"gte=0"`
	Tiers      []tierReq   `json:"tiers" validate:"dive"`
	Timings    []timingReq `json:"timings" validate:"dive"`
}

type createSeasonReq struct {
	Name  string    `json:"name" validate:"required"`
	Year  int       `json:"year" validate:"required"`
	Crops []cropReq `json:"crops" validate:"dive"`
}

func (h *SeasonCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createSeasonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	s := &entities.Season{UserID: uid, Name: req.Name, Year: req.Year}
	for _, cr := range req.Crops {
		crop := entities.Crop{Name: cr.Name, TotalAcres: cr.TotalAcres}
		for _, t := range cr.Tiers {
			crop.Tiers = append(crop.Tiers, entities.Tier{Name: t.Name, Percent: t.Percent})
		}
		for _, tm := range cr.Timings {
			timing := entities.ApplicationTiming{Name: tm.Name, Ord: tm.Ord}
			for _, p := range tm.Products {
				timing.Products = append(timing.Products, entities.PlannedApplication{
					ProductID: p.ProductID, Rate: p.Rate, RateUnit: p.RateUnit, TierIDs: p.TierIDs,
				})
			}
			crop.Timings = append(crop.Timings, timing)
		}
		s.Crops = append(s.Crops, crop)
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SeasonCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SeasonCtrl) List(c echo.Context) error {
	if y := c.QueryParam("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad year"})
		}
		out, err := h.repo.FindByYear(year)
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

func (h *SeasonCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	existing, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req createSeasonReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Year != 0 {
		existing.Year = req.Year
	}
	if err := h.repo.Update(existing); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, existing)
}

func (h *SeasonCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
