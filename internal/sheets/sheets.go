// Package sheets reads ticker watchlists from and writes analysis
// results back to a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API for one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	resultsSheet  string
}

// NewClient builds a Sheets client from a service-account credentials
// file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, resultsSheet string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, resultsSheet: resultsSheet}, nil
}

// ReadTickers returns the ticker symbols listed in column A of the
// first sheet. A leading "Ticker" header row is skipped, symbols are
// upper-cased and de-duplicated in order.
func (c *Client) ReadTickers(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, "A:A").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read ticker column: %w", err)
	}

	seen := make(map[string]bool)
	var tickers []string
	for i, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		cell, ok := row[0].(string)
		if !ok {
			continue
		}
		sym := strings.ToUpper(strings.TrimSpace(cell))
		if sym == "" {
			continue
		}
		if i == 0 && sym == "TICKER" {
			continue
		}
		if seen[sym] {
			continue
		}
		seen[sym] = true
		tickers = append(tickers, sym)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers found in spreadsheet %s", c.spreadsheetID)
	}
	return tickers, nil
}

// WriteResults replaces the results sheet contents with the given
// rows, creating the sheet if it does not exist yet.
func (c *Client) WriteResults(ctx context.Context, rows [][]any) error {
	if err := c.ensureSheet(ctx); err != nil {
		return err
	}

	clearRange := fmt.Sprintf("'%s'!A:Z", c.resultsSheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear results sheet: %w", err)
	}

	vals := make([][]interface{}, len(rows))
	for i, row := range rows {
		vals[i] = row
	}
	vr := &sheets.ValueRange{Values: vals}
	writeRange := fmt.Sprintf("'%s'!A1", c.resultsSheet)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

func (c *Client) ensureSheet(ctx context.Context) error {
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.resultsSheet {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: c.resultsSheet},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("create results sheet %q: %w", c.resultsSheet, err)
	}
	return nil
}
