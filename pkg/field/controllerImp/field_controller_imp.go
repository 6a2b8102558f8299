package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/field/repository"
)

type FieldCtrl struct{ repo repository.FieldRepository }

func New(repo repository.FieldRepository) *FieldCtrl { return &FieldCtrl{repo} }

type fieldReq struct {
	Name   string  `json:"name" validate:"required"`
	Acres  float64 `json:"acres" validate:"gte=0"`
	County string  `json:"county"`
	State  string  `json:"state"`
}

type assignReq struct {
	SeasonID     uint   `json:"season_id" validate:"required"`
	CropID       uint   `json:"crop_id" validate:"required"`
	PreviousCrop string `json:"previous_crop"`
	AssignedOn   string `json:"assigned_on"`
}

func (h *FieldCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	f := &entities.Field{UserID: uid, Name: req.Name, Acres: req.Acres, County: req.County, State: req.State}
	if err := h.repo.Create(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FieldCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FieldCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req fieldReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != "" {
		f.Name = req.Name
	}
	if req.Acres > 0 {
		f.Acres = req.Acres
	}
	if req.County != "" {
		f.County = req.County
	}
	if req.State != "" {
		f.State = req.State
	}
	if err := h.repo.Update(f); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FieldCtrl) Assign(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.repo.FindByID(uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	on := time.Now()
	if req.AssignedOn != "" {
		if d, err := time.Parse("2006-01-02", req.AssignedOn); err == nil {
			on = d
		}
	}
	a := &entities.FieldAssignment{FieldID: uint(id), SeasonID: req.SeasonID, CropID: req.CropID, PreviousCrop: req.PreviousCrop, AssignedOn: on}
	if err := h.repo.CreateAssignment(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *FieldCtrl) Assignments(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.Assignments(uint(id))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
