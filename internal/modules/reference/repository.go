// Package reference persists reference dimensions, instruments, prices and
// holdings in SQLite and loads them as snapshot inputs.
package reference

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aristath/folio/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repository reads and writes reference.db
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new reference repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "reference").Logger(),
	}
}

// LoadReferenceData loads every dimension table and the instrument universe.
// Rows come back in id order, which is the table order allocation ties fall
// back to.
func (r *Repository) LoadReferenceData(ctx context.Context) (domain.ReferenceData, error) {
	var ref domain.ReferenceData

	loaders := []struct {
		table string
		query string
		scan  func(*sql.Rows) error
	}{
		{"markets", "SELECT id, code, name FROM markets ORDER BY id", func(rows *sql.Rows) error {
			var m domain.Market
			if err := rows.Scan(&m.ID, &m.Code, &m.Name); err != nil {
				return err
			}
			ref.Markets = append(ref.Markets, m)
			return nil
		}},
		{"asset_classes", "SELECT id, name, description FROM asset_classes ORDER BY id", func(rows *sql.Rows) error {
			var a domain.AssetClass
			if err := rows.Scan(&a.ID, &a.Name, &a.Description); err != nil {
				return err
			}
			ref.AssetClasses = append(ref.AssetClasses, a)
			return nil
		}},
		{"sectors", "SELECT id, name FROM sectors ORDER BY id", func(rows *sql.Rows) error {
			var s domain.Sector
			if err := rows.Scan(&s.ID, &s.Name); err != nil {
				return err
			}
			ref.Sectors = append(ref.Sectors, s)
			return nil
		}},
		{"industries", "SELECT id, sector_id, name FROM industries ORDER BY id", func(rows *sql.Rows) error {
			var i domain.Industry
			if err := rows.Scan(&i.ID, &i.SectorID, &i.Name); err != nil {
				return err
			}
			ref.Industries = append(ref.Industries, i)
			return nil
		}},
		{"currencies", "SELECT id, code, name FROM currencies ORDER BY id", func(rows *sql.Rows) error {
			var c domain.Currency
			if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
				return err
			}
			ref.Currencies = append(ref.Currencies, c)
			return nil
		}},
		{"regions", "SELECT id, name FROM regions ORDER BY id", func(rows *sql.Rows) error {
			var g domain.Region
			if err := rows.Scan(&g.ID, &g.Name); err != nil {
				return err
			}
			ref.Regions = append(ref.Regions, g)
			return nil
		}},
		{"countries", "SELECT id, region_id, code, name FROM countries ORDER BY id", func(rows *sql.Rows) error {
			var c domain.Country
			if err := rows.Scan(&c.ID, &c.RegionID, &c.Code, &c.Name); err != nil {
				return err
			}
			ref.Countries = append(ref.Countries, c)
			return nil
		}},
		{"instruments", `SELECT id, ticker, name, isin, market_id, asset_class_id, currency_id, industry_id, country_id
			FROM instruments ORDER BY id`, func(rows *sql.Rows) error {
			var i domain.Instrument
			if err := rows.Scan(&i.ID, &i.Ticker, &i.Name, &i.ISIN, &i.MarketID, &i.AssetClassID, &i.CurrencyID, &i.IndustryID, &i.CountryID); err != nil {
				return err
			}
			ref.Instruments = append(ref.Instruments, i)
			return nil
		}},
	}

	for _, l := range loaders {
		if err := r.query(ctx, l.query, l.scan); err != nil {
			return domain.ReferenceData{}, fmt.Errorf("failed to load %s: %w", l.table, err)
		}
	}

	r.log.Debug().
		Int("instruments", len(ref.Instruments)).
		Int("countries", len(ref.Countries)).
		Msg("Loaded reference data")

	return ref, nil
}

// LoadHoldings loads holdings in insertion order
func (r *Repository) LoadHoldings(ctx context.Context) ([]domain.Holding, error) {
	holdings := make([]domain.Holding, 0)
	err := r.query(ctx, "SELECT id, ticker, quantity, purchase_date, purchase_price FROM holdings ORDER BY rowid", func(rows *sql.Rows) error {
		var (
			h                       domain.Holding
			quantity, price, bought string
		)
		if err := rows.Scan(&h.ID, &h.Ticker, &quantity, &bought, &price); err != nil {
			return err
		}

		var err error
		if h.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return fmt.Errorf("holding %s: invalid quantity %q: %w", h.ID, quantity, err)
		}
		if h.PurchasePrice, err = decimal.NewFromString(price); err != nil {
			return fmt.Errorf("holding %s: invalid purchase price %q: %w", h.ID, price, err)
		}
		if bought != "" {
			if h.PurchaseDate, err = time.Parse(time.DateOnly, bought); err != nil {
				return fmt.Errorf("holding %s: invalid purchase date %q: %w", h.ID, bought, err)
			}
		}

		holdings = append(holdings, h)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings: %w", err)
	}
	return holdings, nil
}

// LoadPrices loads the latest known price per ticker
func (r *Repository) LoadPrices(ctx context.Context) (domain.PriceMap, error) {
	prices := make(domain.PriceMap)
	err := r.query(ctx, "SELECT ticker, price FROM prices", func(rows *sql.Rows) error {
		var ticker, price string
		if err := rows.Scan(&ticker, &price); err != nil {
			return err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("price for %s: invalid amount %q: %w", ticker, price, err)
		}
		prices[ticker] = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	return prices, nil
}

func (r *Repository) query(ctx context.Context, query string, scan func(*sql.Rows) error) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
