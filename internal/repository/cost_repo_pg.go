package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var ErrBookingNotFound = errors.New("booking not found")

// CostRepository resolves the base flight cost for a booking reference.
type CostRepository interface {
	CostOfFlight(ctx context.Context, bookingRef string) (decimal.Decimal, error)
}

type PGCostRepository struct {
	db *pgxpool.Pool
}

func NewCostRepository(db *pgxpool.Pool) CostRepository {
	return &PGCostRepository{db: db}
}

func (r *PGCostRepository) CostOfFlight(ctx context.Context, bookingRef string) (decimal.Decimal, error) {
	row := r.db.QueryRow(ctx, `SELECT cost::text FROM flight_costs WHERE booking_ref=$1`, bookingRef)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, ErrBookingNotFound
		}
		return decimal.Zero, err
	}

	cost, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse cost %q for booking %s: %w", raw, bookingRef, err)
	}
	return cost, nil
}

var _ CostRepository = (*PGCostRepository)(nil)
