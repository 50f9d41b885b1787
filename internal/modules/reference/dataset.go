package reference

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/aristath/folio/internal/database"
	"github.com/aristath/folio/internal/domain"
	"github.com/aristath/folio/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dataset is the import file format: the reference tables, latest prices keyed
// by ticker and the holdings list.
type Dataset struct {
	domain.ReferenceData
	Prices   map[string]decimal.Decimal `json:"prices"`
	Holdings []HoldingRecord            `json:"holdings"`
}

// HoldingRecord is a holding as written in a dataset file. PurchaseDate is
// YYYY-MM-DD and may be empty. An empty ID is replaced by a generated one.
type HoldingRecord struct {
	ID            string          `json:"id,omitempty"`
	Ticker        string          `json:"ticker"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchaseDate  string          `json:"purchase_date,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// DecodeDataset reads a JSON dataset
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return &ds, nil
}

// holdings converts the records to domain holdings, normalizing tickers and
// assigning ids to records that have none.
func (ds *Dataset) holdings() ([]domain.Holding, error) {
	out := make([]domain.Holding, 0, len(ds.Holdings))
	for i, rec := range ds.Holdings {
		h := domain.Holding{
			ID:            rec.ID,
			Ticker:        utils.NormalizeCode(rec.Ticker),
			Quantity:      rec.Quantity,
			PurchasePrice: rec.PurchasePrice,
		}
		if h.ID == "" {
			h.ID = uuid.NewString()
		}
		if rec.PurchaseDate != "" {
			date, err := time.Parse(time.DateOnly, rec.PurchaseDate)
			if err != nil {
				return nil, &domain.ValidationError{Table: "holdings", Row: i, Field: "purchase_date", Reason: "not YYYY-MM-DD"}
			}
			h.PurchaseDate = date
		}
		out = append(out, h)
	}
	return out, nil
}

// Import replaces the stored dataset in a single transaction. The dataset is
// validated first; a malformed dataset leaves the database untouched.
func (r *Repository) Import(ctx context.Context, ds *Dataset) error {
	ref := ds.ReferenceData
	ref.Instruments = make([]domain.Instrument, len(ds.Instruments))
	for i, inst := range ds.Instruments {
		inst.Ticker = utils.NormalizeCode(inst.Ticker)
		ref.Instruments[i] = inst
	}
	if err := ref.Validate(); err != nil {
		return err
	}

	holdings, err := ds.holdings()
	if err != nil {
		return err
	}
	if err := domain.ValidateHoldings(holdings); err != nil {
		return err
	}

	asOf := time.Now().Unix()

	err = database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{
			"holdings", "prices", "instruments", "countries", "regions",
			"currencies", "industries", "sectors", "asset_classes", "markets",
		} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		inserts := []struct {
			query string
			rows  [][]interface{}
		}{
			{"INSERT INTO markets (id, code, name) VALUES (?, ?, ?)", rowsOf(ref.Markets, func(m domain.Market) []interface{} {
				return []interface{}{m.ID, m.Code, m.Name}
			})},
			{"INSERT INTO asset_classes (id, name, description) VALUES (?, ?, ?)", rowsOf(ref.AssetClasses, func(a domain.AssetClass) []interface{} {
				return []interface{}{a.ID, a.Name, a.Description}
			})},
			{"INSERT INTO sectors (id, name) VALUES (?, ?)", rowsOf(ref.Sectors, func(s domain.Sector) []interface{} {
				return []interface{}{s.ID, s.Name}
			})},
			{"INSERT INTO industries (id, sector_id, name) VALUES (?, ?, ?)", rowsOf(ref.Industries, func(i domain.Industry) []interface{} {
				return []interface{}{i.ID, i.SectorID, i.Name}
			})},
			{"INSERT INTO currencies (id, code, name) VALUES (?, ?, ?)", rowsOf(ref.Currencies, func(c domain.Currency) []interface{} {
				return []interface{}{c.ID, utils.NormalizeCode(c.Code), c.Name}
			})},
			{"INSERT INTO regions (id, name) VALUES (?, ?)", rowsOf(ref.Regions, func(g domain.Region) []interface{} {
				return []interface{}{g.ID, g.Name}
			})},
			{"INSERT INTO countries (id, region_id, code, name) VALUES (?, ?, ?, ?)", rowsOf(ref.Countries, func(c domain.Country) []interface{} {
				return []interface{}{c.ID, c.RegionID, c.Code, c.Name}
			})},
			{`INSERT INTO instruments (id, ticker, name, isin, market_id, asset_class_id, currency_id, industry_id, country_id)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, rowsOf(ref.Instruments, func(i domain.Instrument) []interface{} {
				return []interface{}{i.ID, i.Ticker, i.Name, i.ISIN, i.MarketID, i.AssetClassID, i.CurrencyID, i.IndustryID, i.CountryID}
			})},
			{"INSERT INTO holdings (id, ticker, quantity, purchase_date, purchase_price) VALUES (?, ?, ?, ?, ?)", rowsOf(holdings, func(h domain.Holding) []interface{} {
				date := ""
				if !h.PurchaseDate.IsZero() {
					date = h.PurchaseDate.Format(time.DateOnly)
				}
				return []interface{}{h.ID, h.Ticker, h.Quantity.String(), date, h.PurchasePrice.String()}
			})},
		}

		for _, ins := range inserts {
			if err := execAll(ctx, tx, ins.query, ins.rows); err != nil {
				return err
			}
		}

		for ticker, price := range ds.Prices {
			if _, err := tx.ExecContext(ctx, "INSERT INTO prices (ticker, price, as_of) VALUES (?, ?, ?)",
				utils.NormalizeCode(ticker), price.String(), asOf); err != nil {
				return fmt.Errorf("failed to insert price for %s: %w", ticker, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import dataset: %w", err)
	}

	r.log.Info().
		Int("instruments", len(ref.Instruments)).
		Int("holdings", len(holdings)).
		Int("prices", len(ds.Prices)).
		Msg("Dataset imported")

	return nil
}

func rowsOf[T any](items []T, row func(T) []interface{}) [][]interface{} {
	out := make([][]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, row(item))
	}
	return out
}

func execAll(ctx context.Context, tx *sql.Tx, query string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, args := range rows {
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}
	return nil
}
