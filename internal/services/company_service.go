package services

import (
	"context"
	"strings"

	"github.com/juju/errors"

	"github.com/justsurfingit/placement-portal/internal/dtos"
	"github.com/justsurfingit/placement-portal/internal/models"
)

const ErrCompanyExists = errors.ConstError("Company already exists")

// CompanyStore is the slice of the document store the company operations need.
type CompanyStore interface {
	FindAll(ctx context.Context) ([]models.Company, error)
	FindByName(ctx context.Context, name string) (*models.Company, error)
	Insert(ctx context.Context, company *models.Company) error
}

type CompanyService struct {
	Store CompanyStore
}

func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{Store: store}
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if companies == nil {
		companies = []models.Company{}
	}
	return companies, nil
}

// AddCompany creates a company after checking no company already uses the
// name. The check and the insert are not atomic; the unique index on name
// turns a lost race into ErrCompanyExists as well.
func (s *CompanyService) AddCompany(ctx context.Context, req *dtos.CompanyCreationRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrNameRequired
	}

	existing, err := s.Store.FindByName(ctx, name)
	if err != nil && !errors.Is(err, errors.NotFound) {
		return nil, errors.Trace(err)
	}
	if existing != nil {
		return nil, ErrCompanyExists
	}

	company := &models.Company{
		Name:                name,
		Location:            strings.TrimSpace(req.Location),
		Positions:           req.Positions,
		EligibilityCriteria: req.EligibilityCriteria,
	}
	if err := s.Store.Insert(ctx, company); err != nil {
		if errors.Is(err, errors.AlreadyExists) {
			return nil, ErrCompanyExists
		}
		return nil, errors.Trace(err)
	}
	return company, nil
}
