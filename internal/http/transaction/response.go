package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khata-app/khata/internal/folio"
	"github.com/khata-app/khata/internal/transaction"
)

type transactionResponse struct {
	ID            uuid.UUID        `json:"id"`
	Amount        decimal.Decimal  `json:"amount"`
	Description   string           `json:"description"`
	Type          transaction.Type `json:"type"`
	InvestorID    *uuid.UUID       `json:"investorId,omitempty"`
	FolioTypeFrom *folio.Kind      `json:"folioTypeFrom,omitempty"`
	FolioIDFrom   *uuid.UUID       `json:"folioIdFrom,omitempty"`
	FolioTypeTo   *folio.Kind      `json:"folioTypeTo,omitempty"`
	FolioIDTo     *uuid.UUID       `json:"folioIdTo,omitempty"`
	Date          time.Time        `json:"date"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

type paginationResponse struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type pageResponse struct {
	Data       []transactionResponse `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Amount:        tx.Amount,
		Description:   tx.Description,
		Type:          tx.Type,
		InvestorID:    tx.InvestorID,
		FolioTypeFrom: tx.FolioTypeFrom,
		FolioIDFrom:   tx.FolioIDFrom,
		FolioTypeTo:   tx.FolioTypeTo,
		FolioIDTo:     tx.FolioIDTo,
		Date:          tx.Date,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func toPageResponse(txs []*transaction.Transaction, page transaction.Pagination) pageResponse {
	return pageResponse{
		Data: toResponseList(txs),
		Pagination: paginationResponse{
			CurrentPage:  page.CurrentPage,
			TotalPages:   page.TotalPages,
			TotalItems:   page.TotalItems,
			ItemsPerPage: page.ItemsPerPage,
		},
	}
}
