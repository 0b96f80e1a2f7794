package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Results"

var xlsxHeader = []string{
	"Domain", "Years Popular", "Status", "HTTP Status", "Redirect URL",
	"Page Title", "Parked", "For Sale", "Sale Platform",
	"Registrar", "Created", "Expires", "Registrant",
	"Score", "Estimated Value", "Reason", "Checked At",
}

// WriteXLSX exports results as a spreadsheet for manual triage
func WriteXLSX(out *Output, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	for col, name := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(resultsSheet, cell, name); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, r := range out.Results {
		row := []interface{}{
			r.Domain,
			formatYears(r.YearsPopular),
			string(r.Status),
			formatHTTPStatus(r.HTTPStatusCode),
			r.RedirectURL,
			r.PageTitle,
			r.IsParked,
			r.IsForSale,
			r.SalePlatform,
			r.Whois.Registrar,
			r.Whois.CreationDate,
			r.Whois.ExpirationDate,
			r.Whois.Registrant,
			r.Recommendation.Score,
			r.Recommendation.EstimatedValue,
			r.Recommendation.Reason,
			formatCheckedAt(r.CheckedAt),
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(resultsSheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving spreadsheet to %s: %w", outputPath, err)
	}
	return nil
}
