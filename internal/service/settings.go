package service

import (
	"context"
	"fmt"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type settingsService struct {
	feePolicyRepo repository.FeePolicyRepository
	companyRepo   repository.CompanyRepository
}

func NewSettingsService(feePolicyRepo repository.FeePolicyRepository, companyRepo repository.CompanyRepository) SettingsService {
	return &settingsService{
		feePolicyRepo: feePolicyRepo,
		companyRepo:   companyRepo,
	}
}

func (s *settingsService) GetFeePolicy(ctx context.Context) (*domain.FeePolicy, error) {
	return s.feePolicyRepo.Get(ctx)
}

func (s *settingsService) UpdateFeePolicy(ctx context.Context, policy *domain.FeePolicy) error {
	for _, def := range policy.PredefinedFees {
		if def.ID == "" {
			return fmt.Errorf("%w: fee definition id is required", ErrInvalidInput)
		}
		if def.UnitPrice < 0 {
			return fmt.Errorf("%w: fee %q has a negative unit price", ErrInvalidInput, def.ID)
		}
	}
	for _, fee := range policy.CustomFees {
		if fee.Label == "" {
			return fmt.Errorf("%w: custom fee label is required", ErrInvalidInput)
		}
	}
	return s.feePolicyRepo.Save(ctx, policy)
}

func (s *settingsService) GetCompany(ctx context.Context) (*domain.Company, error) {
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, mapRepoError(err, "company")
	}
	return company, nil
}

func (s *settingsService) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if company.Name == "" {
		return fmt.Errorf("%w: company name is required", ErrInvalidInput)
	}
	return s.companyRepo.Save(ctx, company)
}
