package service

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// ExportService renders engine output into downloadable report files.
type ExportService interface {
	VarianceWorkbook(seasonID uint) (*excelize.File, error)
	ReadinessCSV(seasonID uint, w io.Writer) error
}
