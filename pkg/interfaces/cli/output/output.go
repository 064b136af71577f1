package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vsinha/stockcheck/pkg/application/dto"
	"github.com/vsinha/stockcheck/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
}

// reportHeader is the column header of the line item table
var reportHeader = []string{
	"Part Number",
	"Description",
	"Location",
	"Qty Needed",
	"Qty Available",
	"In-Stock Confidence",
	"Color",
	"Size",
	"Unit Price",
	"Notes",
}

// Generate writes one report per store in the configured format and returns
// the paths written. The text format prints to the console and writes nothing.
func Generate(result *dto.StockResult, config Config, console *Console) ([]string, error) {
	switch config.Format {
	case "", "csv":
		return generateFiles(result, config, console, ".csv", writeCSVReport)
	case "json":
		return generateFiles(result, config, console, ".json", writeJSONReport)
	case "text":
		generateTextOutput(result, console)
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func generateFiles(
	result *dto.StockResult,
	config Config,
	console *Console,
	ext string,
	write func(io.Writer, entities.StoreReport) error,
) ([]string, error) {
	dir := config.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, report := range result.Reports {
		filename := filepath.Join(dir, ReportFilename(report.Store)+ext)
		if err := writeFile(filename, report, write); err != nil {
			return written, err
		}
		written = append(written, filename)
		console.Saved(filename)
	}
	return written, nil
}

func writeFile(filename string, report entities.StoreReport, write func(io.Writer, entities.StoreReport) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", filename, err)
	}

	if err := write(file, report); err != nil {
		file.Close()
		return fmt.Errorf("failed to write report %s: %w", filename, err)
	}
	return file.Close()
}

// ReportFilename derives a file name from the store's display name
func ReportFilename(store entities.Store) string {
	name := strings.TrimSpace(store.DisplayName())
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}

// ReportRows renders a store report as rows: the summary block, a blank
// separator row, the header and one row per line item
func ReportRows(report entities.StoreReport) [][]string {
	rows := [][]string{
		{"Store Name:", report.Store.DisplayName()},
		{"Store ID:", report.Store.ID.String()},
		{"Meets Quantity Requirements", strconv.FormatBool(report.MeetsQuantityRequirements)},
		{"Total Items", strconv.FormatInt(int64(report.TotalItemCount), 10)},
		{"In-Stock Confidence", report.OverallConfidence.String()},
		{"Total Price", report.TotalPrice.StringFixed(2)},
		{""},
		reportHeader,
	}

	for _, line := range report.LineItems {
		rows = append(rows, []string{
			string(line.PartNumber),
			line.Description,
			line.LocationLabel,
			strconv.FormatInt(int64(line.QuantityNeeded), 10),
			strconv.FormatInt(int64(line.QuantityAvailable), 10),
			line.Confidence.String(),
			line.Color,
			line.Size,
			line.UnitPrice.StringFixed(2),
			line.Notes,
		})
	}
	return rows
}

func writeCSVReport(w io.Writer, report entities.StoreReport) error {
	qw := newQuotedWriter(w)
	for _, row := range ReportRows(report) {
		if err := qw.Write(row); err != nil {
			return err
		}
	}
	return qw.Flush()
}

type jsonLine struct {
	PartNumber        string `json:"partNumber"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	QuantityNeeded    int64  `json:"qtyNeeded"`
	QuantityAvailable int64  `json:"qtyAvailable"`
	Confidence        string `json:"inStockConfidence"`
	Color             string `json:"color"`
	Size              string `json:"size"`
	UnitPrice         string `json:"unitPrice"`
	Notes             string `json:"notes"`
}

type jsonReport struct {
	StoreName                 string     `json:"storeName"`
	StoreID                   int        `json:"storeId"`
	MeetsQuantityRequirements bool       `json:"meetsQuantityRequirements"`
	TotalItems                int64      `json:"totalItems"`
	Confidence                string     `json:"inStockConfidence"`
	TotalPrice                string     `json:"totalPrice"`
	Lines                     []jsonLine `json:"lines"`
}

func writeJSONReport(w io.Writer, report entities.StoreReport) error {
	out := jsonReport{
		StoreName:                 report.Store.DisplayName(),
		StoreID:                   int(report.Store.ID),
		MeetsQuantityRequirements: report.MeetsQuantityRequirements,
		TotalItems:                int64(report.TotalItemCount),
		Confidence:                report.OverallConfidence.String(),
		TotalPrice:                report.TotalPrice.StringFixed(2),
		Lines:                     make([]jsonLine, 0, len(report.LineItems)),
	}
	for _, line := range report.LineItems {
		out.Lines = append(out.Lines, jsonLine{
			PartNumber:        string(line.PartNumber),
			Description:       line.Description,
			Location:          line.LocationLabel,
			QuantityNeeded:    int64(line.QuantityNeeded),
			QuantityAvailable: int64(line.QuantityAvailable),
			Confidence:        line.Confidence.String(),
			Color:             line.Color,
			Size:              line.Size,
			UnitPrice:         line.UnitPrice.StringFixed(2),
			Notes:             line.Notes,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// generateTextOutput prints a summary table per store
func generateTextOutput(result *dto.StockResult, console *Console) {
	for _, report := range result.Reports {
		console.Printf("%s (%d)\n", report.Store.DisplayName(), report.Store.ID)
		console.Printf("  Meets Quantity Requirements: %t\n", report.MeetsQuantityRequirements)
		console.Printf("  Total Items: %d  Total Price: %s  Confidence: %s\n",
			report.TotalItemCount,
			report.TotalPrice.StringFixed(2),
			console.Confidence(report.OverallConfidence))

		console.Printf("  %-10s %-32s %-28s %-8s %-8s %-8s\n",
			"Part", "Description", "Location", "Needed", "Avail", "Conf")
		for _, line := range report.LineItems {
			console.Printf("  %-10s %-32s %-28s %-8d %-8d %-8s %s\n",
				line.PartNumber,
				truncate(line.Description, 32),
				truncate(line.LocationLabel, 28),
				line.QuantityNeeded,
				line.QuantityAvailable,
				line.Confidence,
				line.Notes)
		}
		console.Printf("\n")
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
