package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmops/pkg/export/service"
)

type ExportCtrl struct{ svc service.ExportService }

func New(svc service.ExportService) *ExportCtrl { return &ExportCtrl{svc} }

func (h *ExportCtrl) VarianceXLSX(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	f, err := h.svc.VarianceWorkbook(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=variance-season-%d.xlsx", id))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportCtrl) ReadinessCSV(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad season id"})
	}
	var buf bytes.Buffer
	if err := h.svc.ReadinessCSV(uint(id), &buf); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=readiness-season-%d.csv", id))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
