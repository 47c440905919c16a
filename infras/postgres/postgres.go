package postgres

//nolint:revive
import (
	"fmt"
	"hotel/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName            = "postgres"
	maxIdleConnections    = 10
	maxOpenConnections    = 25
	connectionMaxLifetime = 30 * time.Minute
)

// Connection splits reads from writes. Bookings and order creation always go through Write,
// list and report queries through Read.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	host     string
	port     string
	user     string
	password string
	database string
	sslMode  string
	timezone string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	write := connect(endpoint{
		name:     "write",
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		user:     pg.Write.Username,
		password: pg.Write.Password,
		database: pg.Prefix + pg.Write.Name,
		sslMode:  pg.Write.SSLMode,
		timezone: pg.Write.Timezone,
	}, pg.MaxRetry, pg.RetryWaitTime)

	read := connect(endpoint{
		name:     "read",
		host:     pg.Read.Host,
		port:     pg.Read.Port,
		user:     pg.Read.Username,
		password: pg.Read.Password,
		database: pg.Prefix + pg.Read.Name,
		sslMode:  pg.Read.SSLMode,
		timezone: pg.Read.Timezone,
	}, pg.MaxRetry, pg.RetryWaitTime)

	return &Connection{Read: read, Write: write}
}

// Close releases both pools. Read and Write may share one server but never one pool.
func (c *Connection) Close() {
	for name, db := range map[string]*sqlx.DB{"read": c.Read, "write": c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Str("name", name).Msg("Failed to close database pool")
		}
	}
}

func (e endpoint) dsn() string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)

	if e.timezone != "" {
		query.Set("timezone", e.timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.user, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     e.database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries until the database accepts connections. Startup aborts once the attempts run out.
func connect(e endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	attempts := max(maxRetry, 1)

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, e.dsn())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connectionMaxLifetime)

			log.Info().
				Str("name", e.name).
				Str("host", e.host).
				Str("port", e.port).
				Str("dbName", e.database).
				Msg("Connected to database")

			return db
		}

		lastErr = err

		log.Error().
			Err(err).
			Str("name", e.name).
			Str("host", e.host).
			Int("attempt", attempt).
			Int("maxAttempts", attempts).
			Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(time.Duration(waitSeconds) * time.Second)
		}
	}

	log.Fatal().Err(fmt.Errorf("connect %s database: %w", e.name, lastErr)).Msg("Giving up on database connection")

	return nil
}
