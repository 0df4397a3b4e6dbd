package dto

import "github.com/freelanceflow/freelance-flow-api/internal/models"

// ClientDTO represents a client in API responses
type ClientDTO struct {
	ID             uint64  `json:"id"`
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Company        *string `json:"company"`
	Stage          *string `json:"stage"`
	NextActionDate *string `json:"next_action_date"`
}

// ToClientDTO converts a Client model to ClientDTO
func ToClientDTO(client models.Client) ClientDTO {
	return ClientDTO{
		ID:             client.ID,
		Name:           client.Name,
		Email:          client.Email,
		Company:        client.Company,
		Stage:          client.Stage,
		NextActionDate: formatDate(client.NextActionDate),
	}
}

// ToClientDTOs converts a slice of clients
func ToClientDTOs(clients []models.Client) []ClientDTO {
	items := make([]ClientDTO, len(clients))
	for i, client := range clients {
		items[i] = ToClientDTO(client)
	}
	return items
}
