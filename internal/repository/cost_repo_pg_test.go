package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewCostRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewCostRepository(pool)
	assert.NotNil(t, repo)
}
