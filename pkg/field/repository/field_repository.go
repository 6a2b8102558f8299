package repository

import "farmops/entities"

type FieldRepository interface {
	Create(f *entities.Field) error
	Update(f *entities.Field) error
	FindByID(id uint) (*entities.Field, error)
	List() ([]entities.Field, error)

	CreateAssignment(a *entities.FieldAssignment) error
	Assignments(fieldID uint) ([]entities.FieldAssignment, error)
	AllAssignments() ([]entities.FieldAssignment, error)
}
