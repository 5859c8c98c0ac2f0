package sheets

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/amassarte/pizzeria-backend/internal/core"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// preferredSheetName is the tab orders are written to when it exists;
// otherwise the first tab of the spreadsheet is used.
const preferredSheetName = "Pedidos"

// Ledger implements core.OrderLedger on a Google Sheets spreadsheet. Rows
// span columns A through M; row 1 is the header. Appends go through the
// Sheets append API, which assigns the target row atomically, so two
// concurrent submissions can never land on the same row.
type Ledger struct {
	svc           *sheetsapi.Service
	spreadsheetID string

	mu        sync.Mutex
	sheetName string
}

// NewLedger creates a ledger client from service account credentials JSON.
func NewLedger(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*Ledger, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Ledger{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// Append adds one order row after the last populated row.
func (l *Ledger) Append(ctx context.Context, order *core.Order) error {
	name, err := l.resolveSheetName(ctx)
	if err != nil {
		return err
	}

	values := &sheetsapi.ValueRange{Values: [][]interface{}{orderToRow(order)}}
	_, err = l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, fmt.Sprintf("'%s'!A:M", name), values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append order row: %w", err)
	}

	return nil
}

// List returns every persisted order, newest first.
func (l *Ledger) List(ctx context.Context) ([]*core.Order, error) {
	name, err := l.resolveSheetName(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := l.svc.Spreadsheets.Values.
		Get(l.spreadsheetID, fmt.Sprintf("'%s'!A2:M", name)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read order rows: %w", err)
	}

	orders := make([]*core.Order, 0, len(resp.Values))
	for i, row := range resp.Values {
		orders = append(orders, rowToOrder(row, i+2))
	}

	// Newest first.
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}

	return orders, nil
}

// GetByID returns the order whose id column matches.
func (l *Ledger) GetByID(ctx context.Context, id string) (*core.Order, error) {
	orders, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if order.ID == id {
			return order, nil
		}
	}

	return nil, core.ErrOrderNotFound
}

// UpdateStatus rewrites the status cell (column M) of the row matching id.
func (l *Ledger) UpdateStatus(ctx context.Context, id string, status core.OrderStatus) error {
	name, err := l.resolveSheetName(ctx)
	if err != nil {
		return err
	}

	resp, err := l.svc.Spreadsheets.Values.
		Get(l.spreadsheetID, fmt.Sprintf("'%s'!A:A", name)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to read id column: %w", err)
	}

	rowNumber := 0
	for i, row := range resp.Values {
		if len(row) > 0 && fmt.Sprintf("%v", row[0]) == id {
			rowNumber = i + 1 // 1-based
			break
		}
	}
	if rowNumber == 0 {
		return core.ErrOrderNotFound
	}

	values := &sheetsapi.ValueRange{Values: [][]interface{}{{string(status)}}}
	_, err = l.svc.Spreadsheets.Values.
		Update(l.spreadsheetID, fmt.Sprintf("'%s'!M%d", name, rowNumber), values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update status cell: %w", err)
	}

	return nil
}

// resolveSheetName finds the tab to use, preferring "Pedidos" and falling
// back to the first tab. The result is cached for the process lifetime.
func (l *Ledger) resolveSheetName(ctx context.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sheetName != "" {
		return l.sheetName, nil
	}

	meta, err := l.svc.Spreadsheets.Get(l.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch spreadsheet metadata: %w", err)
	}

	name := ""
	for _, sheet := range meta.Sheets {
		if sheet.Properties == nil {
			continue
		}
		if name == "" {
			name = sheet.Properties.Title
		}
		if sheet.Properties.Title == preferredSheetName {
			name = preferredSheetName
			break
		}
	}
	if name == "" {
		name = preferredSheetName
	}

	l.sheetName = name
	log.Printf("[sheets] using tab %q of spreadsheet %s", name, l.spreadsheetID)
	return name, nil
}

// orderToRow flattens an order into the A–M column layout.
func orderToRow(o *core.Order) []interface{} {
	return []interface{}{
		o.ID,
		o.Date,
		o.Time,
		o.CustomerName,
		o.Phone,
		o.ZoneInfo,
		o.Address,
		o.DeliveryType,
		o.PaymentType,
		o.Items,
		o.Notes,
		o.Total,
		string(o.Status),
	}
}

// rowToOrder parses one sheet row; short rows leave trailing fields empty
// and a missing status defaults to pending.
func rowToOrder(row []interface{}, localID int) *core.Order {
	order := &core.Order{
		LocalID:      localID,
		ID:           cell(row, 0),
		Date:         cell(row, 1),
		Time:         cell(row, 2),
		CustomerName: cell(row, 3),
		Phone:        cell(row, 4),
		ZoneInfo:     cell(row, 5),
		Address:      cell(row, 6),
		DeliveryType: cell(row, 7),
		PaymentType:  cell(row, 8),
		Items:        cell(row, 9),
		Notes:        cell(row, 10),
		Total:        cell(row, 11),
		Status:       core.OrderStatus(cell(row, 12)),
	}
	if order.Status == "" {
		order.Status = core.StatusPending
	}
	return order
}

func cell(row []interface{}, index int) string {
	if index >= len(row) || row[index] == nil {
		return ""
	}
	return fmt.Sprintf("%v", row[index])
}
