package dashboard

import (
	"context"
	"math/rand"
	"sync"

	"livpulse/internal/common/apperror"
	"livpulse/internal/connectors"
	"livpulse/internal/features/kpi"
)

// DataResolver turns a registered data source into a widget payload.
type DataResolver interface {
	Resolve(ctx context.Context, source kpi.DataSource) (interface{}, error)
}

// resolver handles mock and api sources with generated payloads and
// database sources through a SQL connection described by the source config.
type resolver struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewDataResolver builds the default resolver. rng drives the generated
// payloads; tests pass a seeded source for deterministic output.
func NewDataResolver(rng *rand.Rand) DataResolver {
	return &resolver{rng: rng}
}

func (r *resolver) Resolve(ctx context.Context, source kpi.DataSource) (interface{}, error) {
	switch source.Type {
	case kpi.DataSourceDatabase:
		return r.resolveDatabase(ctx, source)
	case kpi.DataSourceFile:
		return nil, apperror.BadRequest("File data sources are ingested through data input, not resolved on demand")
	default:
		// api sources are served generated payloads too until their
		// upstreams are wired in.
		return r.mockPayload(source.ID), nil
	}
}

func (r *resolver) resolveDatabase(ctx context.Context, source kpi.DataSource) (interface{}, error) {
	dbType, _ := source.Config.Connection["type"].(string)
	if dbType == "" {
		dbType = "postgresql"
	}

	conn := connectors.NewSQLConnector(dbType)
	if err := conn.Connect(ctx, source.Config.Connection); err != nil {
		return nil, apperror.Wrap(apperror.KindBadRequest, err, "data source connection failed")
	}
	defer conn.Disconnect()

	rows, err := conn.Fetch(ctx, source.Config.Query)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindBadRequest, err, "data source query failed")
	}
	return map[string]interface{}{"data": rows}, nil
}

func (r *resolver) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

func (r *resolver) float() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

func (r *resolver) mockPayload(sourceID string) interface{} {
	switch sourceID {
	case "system-health":
		return map[string]interface{}{
			"value": r.intn(40) + 60,
			"trend": Trend{Direction: "up", Value: r.float() * 5, Label: "vs last week"},
		}

	case "user-metrics":
		direction := "down"
		if r.float() > 0.5 {
			direction = "up"
		}
		return map[string]interface{}{
			"value": r.intn(10000) + 50000,
			"trend": Trend{Direction: direction, Value: r.float() * 10, Label: "vs yesterday"},
		}

	case "platform-metrics":
		days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
		points := make([]map[string]interface{}, len(days))
		for i, day := range days {
			points[i] = map[string]interface{}{"name": day, "value": r.intn(20) + 80}
		}
		return map[string]interface{}{"data": points}

	case "alerts":
		return map[string]interface{}{
			"data": []map[string]interface{}{
				{"title": "High CPU Usage", "severity": "high", "source": "backend"},
				{"title": "Memory Leak Detected", "severity": "medium", "source": "platform"},
				{"title": "Database Connection Timeout", "severity": "critical", "source": "database"},
			},
		}

	case "service-status":
		return map[string]interface{}{
			"data": []map[string]interface{}{
				{"name": "API Gateway", "status": "operational", "uptime": "99.9%"},
				{"name": "Database", "status": "operational", "uptime": "99.8%"},
				{"name": "Cache", "status": "degraded", "uptime": "95.2%"},
				{"name": "CDN", "status": "operational", "uptime": "99.9%"},
			},
		}

	default:
		return map[string]interface{}{"value": 0}
	}
}
