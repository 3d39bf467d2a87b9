package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Pagajob/easyold-sub001/internal/domain"
	"github.com/Pagajob/easyold-sub001/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) AddClient(ctx context.Context, client *domain.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "client")
	}
	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return mapRepoError(err, "client")
	}
	return nil
}

func (s *clientService) ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	return s.clientRepo.List(ctx, page, pageSize)
}

func validateClient(client *domain.Client) error {
	if client.FirstName == "" || client.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	// Email is optional at creation; contract generation enforces its presence.
	if client.Email != "" && !strings.Contains(client.Email, "@") {
		return fmt.Errorf("%w: malformed email address", ErrInvalidInput)
	}
	return nil
}
