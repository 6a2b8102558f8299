package serviceImp

import (
	"farmops/entities"
	"farmops/pkg/purchase"
	"farmops/pkg/readiness"
	"farmops/pkg/restrictions"
	"farmops/pkg/usage"
	"farmops/pkg/variance"

	apprecordRepo "farmops/pkg/apprecord/repository"
	fieldRepo "farmops/pkg/field/repository"
	inventoryRepo "farmops/pkg/inventory/repository"
	invoiceRepo "farmops/pkg/invoice/repository"
	"farmops/pkg/planning/service"
	pricebookRepo "farmops/pkg/pricebook/repository"
	productRepo "farmops/pkg/product/repository"
	purchaseRepo "farmops/pkg/purchase/repository"
	seasonRepo "farmops/pkg/season/repository"
)

type planningService struct {
	seasons   seasonRepo.SeasonRepository
	products  productRepo.ProductRepository
	inventory inventoryRepo.InventoryRepository
	purchases purchaseRepo.PurchaseRepository
	invoices  invoiceRepo.InvoiceRepository
	prices    pricebookRepo.PriceBookRepository
	records   apprecordRepo.ApplicationRecordRepository
	fields    fieldRepo.FieldRepository
}

func New(
	seasons seasonRepo.SeasonRepository,
	products productRepo.ProductRepository,
	inventory inventoryRepo.InventoryRepository,
	purchases purchaseRepo.PurchaseRepository,
	invoices invoiceRepo.InvoiceRepository,
	prices pricebookRepo.PriceBookRepository,
	records apprecordRepo.ApplicationRecordRepository,
	fields fieldRepo.FieldRepository,
) service.PlanningService {
	return &planningService{
		seasons: seasons, products: products, inventory: inventory, purchases: purchases,
		invoices: invoices, prices: prices, records: records, fields: fields,
	}
}

func (s *planningService) snapshot(seasonID uint) (*entities.Season, []entities.Product, error) {
	season, err := s.seasons.FindByID(seasonID)
	if err != nil {
		return nil, nil, err
	}
	products, err := s.products.List()
	if err != nil {
		return nil, nil, err
	}
	return season, products, nil
}

func (s *planningService) Usage(seasonID uint) ([]usage.Requirement, error) {
	season, products, err := s.snapshot(seasonID)
	if err != nil {
		return nil, err
	}
	return usage.Aggregate(season, products), nil
}

func (s *planningService) Readiness(seasonID uint) (readiness.Result, error) {
	reqs, err := s.Usage(seasonID)
	if err != nil {
		return readiness.Result{}, err
	}
	items, err := s.inventory.List()
	if err != nil {
		return readiness.Result{}, err
	}
	stock := make([]readiness.StockLine, 0, len(items))
	for _, it := range items {
		cc := 0
		if it.ContainerCount != nil {
			cc = *it.ContainerCount
		}
		stock = append(stock, readiness.StockLine{ProductID: it.ProductID, Quantity: it.Quantity, Unit: it.Unit, ContainerCount: cc})
	}
	open, err := s.purchases.Open()
	if err != nil {
		return readiness.Result{}, err
	}
	return readiness.Evaluate(readiness.FromUsage(reqs), stock, purchase.OpenSupply(open)), nil
}

func (s *planningService) ApplicationVariance(seasonID uint) (variance.AppResult, error) {
	season, products, err := s.snapshot(seasonID)
	if err != nil {
		return variance.AppResult{}, err
	}
	records, err := s.records.BySeason(seasonID)
	if err != nil {
		return variance.AppResult{}, err
	}
	return variance.Application(season, products, records), nil
}

func (s *planningService) PassVariance(seasonID uint) (variance.PassResult, error) {
	season, products, err := s.snapshot(seasonID)
	if err != nil {
		return variance.PassResult{}, err
	}
	invoices, err := s.invoices.ByYear(season.Year)
	if err != nil {
		return variance.PassResult{}, err
	}
	prices, err := s.prices.ByYear(season.Year)
	if err != nil {
		return variance.PassResult{}, err
	}
	return variance.Pass(season, products, invoices, prices), nil
}

func (s *planningService) CheckRestrictions(seasonID uint, cand restrictions.Candidate) ([]restrictions.Violation, error) {
	season, products, err := s.snapshot(seasonID)
	if err != nil {
		return nil, err
	}
	prior, err := s.seasons.ListBefore(season.Year)
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.List()
	if err != nil {
		return nil, err
	}
	assigns, err := s.fields.AllAssignments()
	if err != nil {
		return nil, err
	}
	records, err := s.records.BySeason(seasonID)
	if err != nil {
		return nil, err
	}
	ctx := restrictions.Context{
		Season:       season,
		PriorSeasons: prior,
		Fields:       fields,
		Assignments:  assigns,
		Records:      records,
		Products:     products,
	}
	return restrictions.Check(ctx, cand), nil
}
