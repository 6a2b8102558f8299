package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmops/entities"
	"farmops/pkg/purchase/repository"
)

type PurchaseCtrl struct{ repo repository.PurchaseRepository }

func New(repo repository.PurchaseRepository) *PurchaseCtrl { return &PurchaseCtrl{repo} }

type lineReq struct {
	ProductID  uint    `json:"product_id" validate:"required"`
	OrderedQty float64 `json:"ordered_qty" validate:"gt=0"`
	Unit       string  `json:"unit" validate:"required"`
	UnitPrice  float64 `json:"unit_price" validate:"gte=0"`
}

type orderReq struct {
	VendorName string    `json:"vendor_name" validate:"required"`
	Status     string    `json:"status"`
	OrderedOn  string    `json:"ordered_on"`
	Lines      []lineReq `json:"lines" validate:"dive"`
}

func (h *PurchaseCtrl) Create(c echo.Context) error {
	var req orderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	status := req.Status
	if status == "" {
		status = entities.OrderDraft
	}
	var orderedOn *time.Time
	if req.OrderedOn != "" {
		if d, err := time.Parse("2006-01-02", req.OrderedOn); err == nil {
			orderedOn = &d
		}
	}
	o := &entities.PurchaseOrder{VendorName: req.VendorName, Status: status, OrderedOn: orderedOn}
	for _, l := range req.Lines {
		price := l.UnitPrice
		o.Lines = append(o.Lines, entities.PurchaseOrderLine{ProductID: l.ProductID, OrderedQty: l.OrderedQty, Unit: l.Unit, UnitPrice: &price})
	}
	if err := h.repo.Create(o); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *PurchaseCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	o, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, o)
}

func (h *PurchaseCtrl) List(c echo.Context) error {
	if c.QueryParam("open") == "true" {
		out, err := h.repo.Open()
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

func (h *PurchaseCtrl) UpdateStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil || body.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status required"})
	}
	switch body.Status {
	case entities.OrderDraft, entities.OrderOrdered, entities.OrderConfirmed, entities.OrderPartial, entities.OrderComplete:
	default:
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "unknown status"})
	}
	o, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	o.Status = body.Status
	if err := h.repo.Update(o); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, o)
}

// Receive records quantity arriving against one line. The repository clamps
// the received total at the ordered quantity and rolls the order status.
func (h *PurchaseCtrl) Receive(c echo.Context) error {
	lineID, _ := strconv.Atoi(c.Param("line_id"))
	var body struct {
		Qty float64 `json:"qty"`
	}
	if err := c.Bind(&body); err != nil || body.Qty <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "qty must be positive"})
	}
	if err := h.repo.ReceiveLine(uint(lineID), body.Qty); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PurchaseCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
