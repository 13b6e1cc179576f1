// Package connectors holds the fetchers behind non-mock data sources.
package connectors

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// SQLConnector connects to an external SQL database backing a
// "database"-type data source.
type SQLConnector struct {
	dbType string // "postgresql" or "mysql"
	db     *sql.DB
}

// NewSQLConnector creates a connector for the given engine.
func NewSQLConnector(dbType string) *SQLConnector {
	return &SQLConnector{dbType: dbType}
}

// Connect establishes the connection described by the data source config.
func (c *SQLConnector) Connect(ctx context.Context, config map[string]interface{}) error {
	connStr, err := c.buildConnectionString(config)
	if err != nil {
		return fmt.Errorf("failed to build connection string: %w", err)
	}

	driver := c.dbType
	if c.dbType == "postgresql" {
		driver = "postgres"
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)

	c.db = db
	return nil
}

// Disconnect closes the database connection.
func (c *SQLConnector) Disconnect() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Fetch runs the configured query and returns the rows as maps, the shape
// widget data payloads expect.
func (c *SQLConnector) Fetch(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if c.db == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	if query == "" {
		return nil, fmt.Errorf("data source has no query configured")
	}

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	return rowsToMaps(rows)
}

func rowsToMaps(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func (c *SQLConnector) buildConnectionString(config map[string]interface{}) (string, error) {
	host, _ := config["host"].(string)
	port, _ := config["port"].(float64)
	database, _ := config["database"].(string)
	username, _ := config["username"].(string)
	password, _ := config["password"].(string)

	if host == "" || database == "" || username == "" {
		return "", fmt.Errorf("missing required connection parameters")
	}

	if port == 0 {
		if c.dbType == "postgresql" {
			port = 5432
		} else {
			port = 3306
		}
	}

	if c.dbType == "postgresql" {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			host, int(port), username, password, database,
		), nil
	}

	// MySQL
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?parseTime=true",
		username, password, host, int(port), database,
	), nil
}
