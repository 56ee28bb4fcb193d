package database

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"

	"github.com/justsurfingit/placement-portal/internal/models"
)

type AdminStore struct {
	DB *gorm.DB
}

func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{DB: db}
}

func (s *AdminStore) FindAll(ctx context.Context) ([]models.Admin, error) {
	admins := []models.Admin{}
	if err := s.DB.WithContext(ctx).Order("id").Find(&admins).Error; err != nil {
		return nil, errors.Trace(err)
	}
	return admins, nil
}

func (s *AdminStore) Insert(ctx context.Context, admin *models.Admin) error {
	if err := admin.Validate(); err != nil {
		return err
	}
	return errors.Trace(s.DB.WithContext(ctx).Create(admin).Error)
}
