package importer

import (
	"fmt"
	"io"

	"github.com/khata-app/khata/internal/importer/csvledger"
	"github.com/khata-app/khata/internal/ledger"
)

type Service struct {
	csvImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter: csvledger.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]ledger.AppendParams, error) {
	var importer Importer

	switch format {
	case FormatCSV:
		importer = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
