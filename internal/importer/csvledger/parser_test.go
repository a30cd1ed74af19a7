package csvledger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/khata-app/khata/internal/importer/csvledger"
	"github.com/khata-app/khata/internal/ledger"
)

func TestParser_FullSheet(t *testing.T) {
	csv := `Ledger export - site books
Exported,2025-04-02

Type,Date,Amount,Folio Type,Investor,Worker,Action Type,Link Id
credit,2025-01-05,1200.50,investor,Anup,,,
debit,2025-01-09,40,worker,,Aarsh,material,
credit,2025-01-09,,expense,,,,2
`

	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].Type)
	assert.Equal(t, ledger.EntryCredit, *rows[0].Type)
	assert.Equal(t, "2025-01-05", *rows[0].Date)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("1200.50")))
	assert.Equal(t, ledger.ClassInvestor, *rows[0].FolioType)
	assert.Equal(t, "Anup", *rows[0].Investor)
	assert.Nil(t, rows[0].Worker)
	assert.Nil(t, rows[0].LinkID)

	assert.Equal(t, ledger.EntryDebit, *rows[1].Type)
	assert.Equal(t, "Aarsh", *rows[1].Worker)
	assert.Equal(t, "material", *rows[1].ActionType)

	// The expense row has no amount of its own, only the link.
	assert.Nil(t, rows[2].Amount)
	require.NotNil(t, rows[2].LinkID)
	assert.Equal(t, int64(2), *rows[2].LinkID)
}

func TestParser_HeaderVariants(t *testing.T) {
	// Underscored, lowercased headers in a different order.
	csv := `amount,folio_type,type,link_id
100,investor,CREDIT,
`

	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, ledger.EntryCredit, *rows[0].Type)
	assert.Equal(t, ledger.ClassInvestor, *rows[0].FolioType)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestParser_ThousandSeparators(t *testing.T) {
	csv := `Type,Amount
credit,"1,234,567.89"
`

	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("1234567.89")))
}

func TestParser_SkipsBlankAndFooterRows(t *testing.T) {
	csv := `Type,Date,Amount
credit,2025-01-05,10
,,
,,Total: see above
`

	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	// The footer cell is not a number, so that row yields nothing.
	require.Len(t, rows, 1)
}

func TestParser_UnknownTypeLeftUnset(t *testing.T) {
	csv := `Type,Amount,Worker
payment,55,Aarsh
`

	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Nil(t, rows[0].Type)
	assert.Equal(t, "Aarsh", *rows[0].Worker)
}

func TestParser_Windows1252(t *testing.T) {
	utf8CSV := "Type,Amount,Action Type\ndebit,10,Décor\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := csvledger.New()
	rows, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Décor", *rows[0].ActionType)
}

func TestParser_NoHeader(t *testing.T) {
	p := csvledger.New()
	_, err := p.Parse(strings.NewReader("just,some,cells\n1,2,3\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestParser_HeaderOnly(t *testing.T) {
	p := csvledger.New()
	rows, err := p.Parse(strings.NewReader("Type,Date,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
