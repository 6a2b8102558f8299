package serviceImp

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmops/pkg/export/service"
	planning "farmops/pkg/planning/service"
)

type exportService struct {
	planner planning.PlanningService
}

func New(planner planning.PlanningService) service.ExportService {
	return &exportService{planner: planner}
}

// VarianceWorkbook builds a two-sheet workbook: per-application variance
// rows, then per-pass cost variance rows.
func (s *exportService) VarianceWorkbook(seasonID uint) (*excelize.File, error) {
	apps, err := s.planner.ApplicationVariance(seasonID)
	if err != nil {
		return nil, err
	}
	passes, err := s.planner.PassVariance(seasonID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const appSheet = "Applications"
	f.SetSheetName("Sheet1", appSheet)

	appHeader := []any{"Crop", "Timing", "Product", "Planned Rate", "Rate Unit", "Planned Acres", "Planned Total", "Applications", "Actual Rate", "Actual Acres", "Actual Total", "Total Variance", "Status"}
	for i, h := range appHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(appSheet, cell, h)
	}
	for ri, r := range apps.Rows {
		row := []any{r.CropName, r.TimingName, r.ProductName, r.PlannedRate, r.RateUnit, r.PlannedAcres, r.PlannedTotal, r.ApplicationCount, floatOrBlank(r.ActualRate), r.ActualAcres, r.ActualTotal, r.TotalVariance, r.Status}
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			f.SetCellValue(appSheet, cell, v)
		}
	}

	const passSheet = "Passes"
	if _, err := f.NewSheet(passSheet); err != nil {
		return nil, err
	}
	passHeader := []any{"Crop", "Timing", "Product", "Unit", "Quantity", "Share", "Planned Unit Price", "Price Source", "Planned Cost", "Actual Cost Allocated", "Variance", "Variance %"}
	for i, h := range passHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(passSheet, cell, h)
	}
	for ri, r := range passes.Rows {
		row := []any{r.CropName, r.TimingName, r.ProductName, r.Unit, r.Quantity, r.Share, floatOrBlank(r.PlannedUnitPrice), r.PriceSource, floatOrBlank(r.PlannedCost), r.ActualCostAllocated, floatOrBlank(r.Variance), floatOrBlank(r.VariancePct)}
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			f.SetCellValue(passSheet, cell, v)
		}
	}

	summary := len(passes.Rows) + 4
	f.SetCellValue(passSheet, fmt.Sprintf("A%d", summary), "Planned Total")
	f.SetCellValue(passSheet, fmt.Sprintf("B%d", summary), passes.PlannedTotal)
	f.SetCellValue(passSheet, fmt.Sprintf("A%d", summary+1), "Actual Total Allocated")
	f.SetCellValue(passSheet, fmt.Sprintf("B%d", summary+1), passes.ActualTotalAllocated)
	f.SetCellValue(passSheet, fmt.Sprintf("A%d", summary+2), "Variance Total")
	f.SetCellValue(passSheet, fmt.Sprintf("B%d", summary+2), passes.VarianceTotal)

	return f, nil
}

func (s *exportService) ReadinessCSV(seasonID uint, w io.Writer) error {
	res, err := s.planner.Readiness(seasonID)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_id", "label", "unit", "required", "on_hand", "on_order", "short_qty", "status"}); err != nil {
		return err
	}
	for _, it := range res.Items {
		rec := []string{
			fmt.Sprintf("%d", it.ProductID),
			it.Label,
			it.Unit,
			fmt.Sprintf("%g", it.Required),
			fmt.Sprintf("%g", it.OnHand),
			fmt.Sprintf("%g", it.OnOrder),
			fmt.Sprintf("%g", it.ShortQty),
			string(it.Status),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func floatOrBlank(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
