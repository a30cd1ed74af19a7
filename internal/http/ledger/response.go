package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/ledger"
)

type entryResponse struct {
	ID         int64              `json:"id"`
	Type       *ledger.EntryType  `json:"type"`
	Date       *string            `json:"date"`
	Amount     *decimal.Decimal   `json:"amount"`
	FolioType  *ledger.FolioClass `json:"folioType"`
	Investor   *string            `json:"investor"`
	Worker     *string            `json:"worker"`
	ActionType *string            `json:"actionType"`
	LinkID     *int64             `json:"linkId"`
	CreatedAt  time.Time          `json:"createdAt"`
}

type paginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type pageResponse struct {
	Data       []entryResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type importResponse struct {
	Imported int             `json:"imported"`
	Entries  []entryResponse `json:"entries"`
}

func toResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:         e.ID,
		Type:       e.Type,
		Date:       e.Date,
		Amount:     e.Amount,
		FolioType:  e.FolioType,
		Investor:   e.Investor,
		Worker:     e.Worker,
		ActionType: e.ActionType,
		LinkID:     e.LinkID,
		CreatedAt:  e.CreatedAt,
	}
}

func toResponseList(entries []*ledger.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}

func toPageResponse(entries []*ledger.Entry, page ledger.Pagination) pageResponse {
	return pageResponse{
		Data: toResponseList(entries),
		Pagination: paginationResponse{
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalItems:   page.TotalItems,
			ItemsPerPage: page.ItemsPerPage,
		},
	}
}
