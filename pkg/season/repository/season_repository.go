package repository

import "farmops/entities"

type SeasonRepository interface {
	Create(s *entities.Season) error
	Update(s *entities.Season) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Season, error)
	FindByYear(year int) (*entities.Season, error)
	List() ([]entities.Season, error)
	// ListBefore returns seasons for years strictly before the given year,
	// newest first. Rotation lookback uses this.
	ListBefore(year int) ([]entities.Season, error)
}
