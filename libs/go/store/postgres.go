package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the store needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

const createWalletConnectionsTable = `
CREATE TABLE IF NOT EXISTS wallet_connections (
    session_id   TEXT PRIMARY KEY,
    address      TEXT NOT NULL,
    wallet_type  TEXT NOT NULL DEFAULT '',
    connected_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const getWalletConnection = `
SELECT session_id, address, wallet_type, connected_at
FROM wallet_connections
WHERE session_id = $1`

const upsertWalletConnection = `
INSERT INTO wallet_connections (session_id, address, wallet_type, connected_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (session_id) DO UPDATE
SET address = EXCLUDED.address,
    wallet_type = EXCLUDED.wallet_type,
    connected_at = EXCLUDED.connected_at`

const deleteWalletConnection = `
DELETE FROM wallet_connections
WHERE session_id = $1`

// PostgresStore keeps connections in the wallet_connections table.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the wallet_connections table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createWalletConnectionsTable); err != nil {
		return fmt.Errorf("failed to create wallet_connections table: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConnection(ctx context.Context, sessionID string) (*business.WalletConnection, error) {
	var conn business.WalletConnection
	err := s.db.QueryRow(ctx, getWalletConnection, sessionID).Scan(
		&conn.SessionID,
		&conn.Address,
		&conn.WalletType,
		&conn.ConnectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get wallet connection: %w", err)
	}
	return &conn, nil
}

func (s *PostgresStore) SaveConnection(ctx context.Context, conn business.WalletConnection) error {
	_, err := s.db.Exec(ctx, upsertWalletConnection,
		conn.SessionID,
		conn.Address,
		conn.WalletType,
		conn.ConnectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save wallet connection: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteConnection(ctx context.Context, sessionID string) error {
	if _, err := s.db.Exec(ctx, deleteWalletConnection, sessionID); err != nil {
		return fmt.Errorf("failed to delete wallet connection: %w", err)
	}
	return nil
}
