package services

import (
	"context"
	"strings"

	"github.com/juju/errors"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
)

type AdminStore interface {
	FindAll(ctx context.Context) ([]models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) error
}

type AdminService struct {
	Store AdminStore
}

func NewAdminService(store AdminStore) *AdminService {
	return &AdminService{Store: store}
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if admins == nil {
		admins = []models.Admin{}
	}
	return admins, nil
}

func (s *AdminService) AddAdmin(ctx context.Context, req *dtos.AdminCreationRequest) (*models.Admin, error) {
	admin := &models.Admin{
		Name:        strings.TrimSpace(req.Name),
		Designation: strings.TrimSpace(req.Designation),
	}
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	if err := s.Store.Insert(ctx, admin); err != nil {
		return nil, errors.Trace(err)
	}
	return admin, nil
}
