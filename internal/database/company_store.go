package database

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"

	"github.com/justsurfingit/placement-portal/internal/models"
)

// CompanyStore persists companies in the companies table.
type CompanyStore struct {
	DB *gorm.DB
}

func NewCompanyStore(db *gorm.DB) *CompanyStore {
	return &CompanyStore{DB: db}
}

// FindAll returns every company in insertion order.
func (s *CompanyStore) FindAll(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&companies).Error; err != nil {
		return nil, errors.Trace(err)
	}
	return companies, nil
}

// FindByName returns an errors.NotFound error when no company has the name.
func (s *CompanyStore) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFoundf("company %q", name)
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &company, nil
}

func (s *CompanyStore) Insert(ctx context.Context, company *models.Company) error {
	if err := company.Validate(); err != nil {
		return err
	}
	company.Normalize()
	err := s.DB.WithContext(ctx).Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.AlreadyExistsf("company %q", company.Name)
	}
	return errors.Trace(err)
}
