// Package report renders a single standby calculation in the formats a user
// can take away: a terminal table, CSV, JSON, HTML, XLSX and PDF.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ja7ad/phantom/pkg/display"
	"github.com/ja7ad/phantom/pkg/greenops"
	"github.com/ja7ad/phantom/pkg/standby"
)

// Format is an output format name.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
	FormatXLSX  Format = "xlsx"
	FormatPDF   Format = "pdf"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatCSV, FormatJSON, FormatHTML, FormatXLSX, FormatPDF}
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool { return f == FormatXLSX || f == FormatPDF }

// ContentType is the MIME type of the rendered format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension is the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// Currency describes the fixed monetary unit of the tariff.
type Currency struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// Report is one calculation with everything needed to present it.
type Report struct {
	ID          string                   `json:"id"`
	CreatedAt   time.Time                `json:"created_at"`
	Input       standby.ConsumptionInput `json:"input"`
	Result      standby.ImpactResult     `json:"result"`
	Constants   standby.Config           `json:"constants"`
	Currency    Currency                 `json:"currency"`
	Comparisons greenops.Summary         `json:"comparisons"`
}

// New assembles a report for a finished calculation.
func New(in standby.ConsumptionInput, res standby.ImpactResult, constants standby.Config, cur Currency) *Report {
	return &Report{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		Input:       in,
		Result:      res,
		Constants:   constants,
		Currency:    cur,
		Comparisons: greenops.Describe(res),
	}
}

// Cost returns the formatted monthly cost.
func (r *Report) Cost() string { return display.Money(r.Result.MonthlyCost, r.Currency.Symbol) }

// CO2 returns the formatted monthly CO₂ mass.
func (r *Report) CO2() string { return display.Mass(r.Result.MonthlyCO2) }

// Write renders r in format f to w.
func Write(w io.Writer, f Format, r *Report) error {
	var err error
	switch f {
	case FormatTable:
		err = writeTable(w, r)
	case FormatCSV:
		err = writeCSV(w, r)
	case FormatJSON:
		err = writeJSON(w, r)
	case FormatHTML:
		err = writeHTML(w, r)
	case FormatXLSX:
		err = writeXLSX(w, r)
	case FormatPDF:
		err = writePDF(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("report: write %s: %w", f, err)
	}
	return nil
}
