package repositoryImp

import (
	"gorm.io/gorm"

	"farmops/entities"
	"farmops/pkg/field/repository"
)

type fieldRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FieldRepository { return &fieldRepo{db} }

func (r *fieldRepo) Create(f *entities.Field) error { return r.db.Create(f).Error }
func (r *fieldRepo) Update(f *entities.Field) error { return r.db.Save(f).Error }

func (r *fieldRepo) FindByID(id uint) (*entities.Field, error) {
	var f entities.Field
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fieldRepo) List() ([]entities.Field, error) {
	var out []entities.Field
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) CreateAssignment(a *entities.FieldAssignment) error {
	return r.db.Create(a).Error
}

func (r *fieldRepo) Assignments(fieldID uint) ([]entities.FieldAssignment, error) {
	var out []entities.FieldAssignment
	if err := r.db.Where("field_id = ?", fieldID).Order("assigned_on DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fieldRepo) AllAssignments() ([]entities.FieldAssignment, error) {
	var out []entities.FieldAssignment
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
