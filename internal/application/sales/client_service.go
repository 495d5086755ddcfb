package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/millimonojeanfaya1-commits/etsyalidistribution/internal/domain/sales"
)

// ClientService handles customer operations
type ClientService struct {
	clients sales.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clients sales.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// Create registers a customer
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := sales.NewClient(req.Nom, req.Prenom, req.Telephone, req.Email, req.Adresse)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves customers with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, int64, error) {
	domainFilter := buildFilter(filter, "nom", "asc")
	clients, err := s.clients.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clients.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToClientResponses(clients), total, nil
}

// Update replaces a customer's descriptive fields
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req CreateClientRequest) (*ClientResponse, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Update(req.Nom, req.Prenom, req.Telephone, req.Email, req.Adresse); err != nil {
		return nil, err
	}
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a customer
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clients.Delete(ctx, id)
}
