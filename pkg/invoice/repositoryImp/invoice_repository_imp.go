package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/invoice/repository"
)

type invoiceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.InvoiceRepository { return &invoiceRepo{db} }

func (r *invoiceRepo) Create(inv *entities.Invoice) error { return r.db.Create(inv).Error }

func (r *invoiceRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Invoice{}, id).Error
}

func (r *invoiceRepo) FindByID(id uint) (*entities.Invoice, error) {
	var inv entities.Invoice
	if err := r.db.Preload("Lines").First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List() ([]entities.Invoice, error) {
	var out []entities.Invoice
	if err := r.db.Preload("Lines").Order("invoice_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *invoiceRepo) ByYear(seasonYear int) ([]entities.Invoice, error) {
	var out []entities.Invoice
	if err := r.db.Preload("Lines").Where("season_year = ?", seasonYear).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
