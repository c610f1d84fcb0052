// Package database opens the PostgreSQL handle behind the examples store.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"exampleapi/internal/config"
)

// sqlOpen is swapped by tests to hand back a sqlmock connection.
var sqlOpen = sql.Open

// ErrIncompleteConfig is returned when a required DB_* setting is empty.
var ErrIncompleteConfig = errors.New("incomplete database config")

// Pool describes the connection pool for the examples table.
type Pool struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

const (
	defaultMaxOpen     = 4
	defaultMaxIdle     = 2
	defaultLifetime    = 5 * time.Minute
	defaultPingTimeout = 5 * time.Second
	applicationName    = "exampleapi"
)

// PoolFor turns the DB_* settings into a Pool. Zero or negative pool sizes
// fall back to the defaults and the DSN is checked by the pgx parser before
// anything is dialled.
func PoolFor(c config.DatabaseConfig) (Pool, error) {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"DB_HOST", c.Host}, {"DB_PORT", c.Port}, {"DB_USER", c.User}, {"DB_NAME", c.Name},
	} {
		if f.val == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Pool{}, fmt.Errorf("%w: %s", ErrIncompleteConfig, strings.Join(missing, ", "))
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	q := url.Values{}
	q.Set("application_name", applicationName)
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()

	dsn := u.String()
	if _, err := pgx.ParseConfig(dsn); err != nil {
		return Pool{}, fmt.Errorf("parse database url: %w", err)
	}

	p := Pool{
		DSN:             dsn,
		MaxOpen:         c.MaxOpenConns,
		MaxIdle:         c.MaxIdleConns,
		ConnMaxLifetime: time.Duration(c.ConnMaxLifetimeSec) * time.Second,
		PingTimeout:     defaultPingTimeout,
	}
	if p.MaxOpen <= 0 {
		p.MaxOpen = defaultMaxOpen
	}
	if p.MaxIdle <= 0 {
		p.MaxIdle = defaultMaxIdle
	}
	if p.MaxIdle > p.MaxOpen {
		p.MaxIdle = p.MaxOpen
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = defaultLifetime
	}
	return p, nil
}

// Open dials PostgreSQL through the pgx stdlib driver wrapped by otelsql,
// applies the pool limits and pings once within PingTimeout.
func Open(ctx context.Context, p Pool) (*sql.DB, error) {
	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register traced driver: %w", err)
	}

	db, err := sqlOpen(driverName, p.DSN)
	if err != nil {
		return nil, fmt.Errorf("open examples database: %w", err)
	}
	db.SetMaxOpenConns(p.MaxOpen)
	db.SetMaxIdleConns(p.MaxIdle)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, p.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping examples database: %w", err)
	}
	return db, nil
}
