package importer

import (
	"io"

	"github.com/khata-app/khata/internal/ledger"
)

type Format string

const (
	FormatCSV Format = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]ledger.AppendParams, error)
}
