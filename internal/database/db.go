package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// TxTimeout bounds every multi-statement order transaction. The driver has
// no implicit statement deadline, so each coordinator operation derives its
// context from this constant instead of relying on driver defaults.
const TxTimeout = 5 * time.Second

// Open connects to MySQL and verifies the connection. The returned *sql.DB
// is a pooled, thread-safe handle shared by all repositories; individual
// requests acquire connections (and transactions) from it per operation.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// TxContext returns a context bounded by TxTimeout for one coordinator
// operation. The caller must invoke the returned cancel func.
func TxContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, TxTimeout)
}
