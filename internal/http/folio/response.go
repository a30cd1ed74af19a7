package folio

import (
	"time"

	"github.com/google/uuid"

	"github.com/khata-app/khata/internal/folio"
)

type folioResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Type      folio.Kind `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toResponse(f *folio.Folio) folioResponse {
	return folioResponse{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Type:      f.Kind,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toResponseList(folios []*folio.Folio) []folioResponse {
	resp := make([]folioResponse, len(folios))
	for i, f := range folios {
		resp[i] = toResponse(f)
	}

	return resp
}
