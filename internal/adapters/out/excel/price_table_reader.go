// Package excel reads price tables from .xlsx workbooks.
package excel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	columnModel        = "model"
	columnComponents   = "components"
	columnUnitPrice    = "unit price"
	columnInstallPrice = "install price"
	columnAffiliate    = "affiliate"
)

var headerAliases = map[string]string{
	"model":         columnModel,
	"model name":    columnModel,
	"components":    columnComponents,
	"unit price":    columnUnitPrice,
	"price":         columnUnitPrice,
	"install price": columnInstallPrice,
	"installation":  columnInstallPrice,
	"affiliate":     columnAffiliate,
}

// PriceTableReader parses the first sheet of a workbook. The first row is
// the header; columns are matched by name, so their order is free. Model
// and unit price columns are required.
type PriceTableReader struct{}

func NewPriceTableReader() PriceTableReader {
	return PriceTableReader{}
}

// Read returns one entry per non-blank data row. Every malformed row is
// reported in the joined error.
func (PriceTableReader) Read(ctx context.Context, content []byte) ([]*pricing.PriceEntry, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("price table", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("price table", err)
	}
	if len(rows) == 0 {
		return nil, errs.NewValueIsRequiredError("price table header")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	entries := make([]*pricing.PriceEntry, 0, len(rows)-1)
	var rowErrs []error
	for i, row := range rows[1:] {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if isBlank(row) {
			continue
		}

		entry, rowErr := parseRow(row, columns)
		if rowErr != nil {
			// sheet rows are 1-based and the header is row 1
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", i+2, rowErr))
			continue
		}
		entries = append(entries, entry)
	}

	if len(rowErrs) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price table", errors.Join(rowErrs...))
	}
	return entries, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, cell := range header {
		name, ok := headerAliases[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		if _, dup := columns[name]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("price table header", fmt.Errorf("column %q appears twice", name))
		}
		columns[name] = i
	}

	for _, required := range []string{columnModel, columnUnitPrice} {
		if _, ok := columns[required]; !ok {
			return nil, errs.NewValueIsRequiredError("price table column " + required)
		}
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (*pricing.PriceEntry, error) {
	unitPrice, err := parsePrice(cell(row, columns, columnUnitPrice))
	if err != nil {
		return nil, fmt.Errorf("unit price: %w", err)
	}
	installPrice, err := parsePrice(cell(row, columns, columnInstallPrice))
	if err != nil {
		return nil, fmt.Errorf("install price: %w", err)
	}
	components, err := pricing.ParseComponents(cell(row, columns, columnComponents))
	if err != nil {
		return nil, err
	}

	return pricing.NewPriceEntry(
		kernel.NewUUID(),
		cell(row, columns, columnAffiliate),
		cell(row, columns, columnModel),
		components,
		unitPrice,
		installPrice,
	)
}

// cell returns "" for optional columns that are missing and for short rows.
func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parsePrice accepts thousands separators and currency suffixes such as
// "1,250,000원". A blank price is zero.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer(",", "", " ", "", "원", "", "₩", "").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
