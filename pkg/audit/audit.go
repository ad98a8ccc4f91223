// Package audit records who changed what in the back office. Entries go
// to a MongoDB collection so they survive independently of the main
// relational database.
//
// Writes are designed for zero impact on the hot request path:
//
//   - Record enqueues into a buffered channel (non-blocking).
//   - A single background goroutine drains the channel and performs
//     InsertMany in batches.
//   - If the channel is full, the entry is dropped; auditing must never
//     block application code.
//   - Call Close() at shutdown to flush and disconnect.
//
// When AUDIT_MONGO_URI is empty the trail is disabled and Record is a
// no-op, so local setups don't need a Mongo instance.
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fabiogif/moday-backoffice/config"
	"github.com/fabiogif/moday-backoffice/pkg/logger"
)

const (
	queueSize  = 4096
	batchSize  = 50
	drainTick  = 2 * time.Second
	collection = "audit_trail"
)

// Entry is the shape written to MongoDB.
type Entry struct {
	Time     time.Time `bson:"time"`
	ActorID  uint      `bson:"actor_id"`
	Action   string    `bson:"action"` // "product.created", "order.status_changed", ...
	Entity   string    `bson:"entity"`
	EntityID uint      `bson:"entity_id,omitempty"`
	Detail   bson.M    `bson:"detail,omitempty"`
}

// trail is the package singleton, nil until Connect succeeds.
var trail *writer

type writer struct {
	col    *mongo.Collection
	client *mongo.Client
	queue  chan Entry
	done   chan struct{}
}

// Connect boots the audit trail. Call once at startup; returns nil when
// no AUDIT_MONGO_URI is configured.
func Connect() error {
	uri := config.AuditMongoURI()
	if uri == "" {
		logger.Info("audit: disabled, AUDIT_MONGO_URI not set")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("audit: connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("audit: ping: %w", err)
	}

	col := client.Database(config.AuditMongoDB()).Collection(collection)

	// Time index so the trail can be queried and expired efficiently.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "time", Value: -1}},
	})

	trail = &writer{
		col:    col,
		client: client,
		queue:  make(chan Entry, queueSize),
		done:   make(chan struct{}),
	}
	go trail.drainLoop()

	logger.Info("audit: connected", "db", config.AuditMongoDB())
	return nil
}

// Record enqueues an audit entry. No-op when the trail is disabled;
// drops the entry instead of blocking when the queue is full.
func Record(actorID uint, action, entity string, entityID uint, detail map[string]any) {
	if trail == nil {
		return
	}
	e := Entry{
		Time:     time.Now().UTC(),
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if len(detail) > 0 {
		e.Detail = bson.M(detail)
	}
	select {
	case trail.queue <- e:
	default:
	}
}

// Close flushes pending entries and disconnects. Safe when disabled and
// safe to call multiple times.
func Close() {
	if trail == nil {
		return
	}
	trail.close()
}

func (w *writer) drainLoop() {
	ticker := time.NewTicker(drainTick)
	defer ticker.Stop()

	batch := make([]interface{}, 0, batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := w.col.InsertMany(ctx, batch); err != nil {
			logger.Warn("audit: flush failed", "error", err, "dropped", len(batch))
		}
		cancel()
		batch = batch[:0]
	}

	for {
		select {
		case e := <-w.queue:
			batch = append(batch, e)
			if len(batch) >= batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-w.done:
			for len(w.queue) > 0 {
				batch = append(batch, <-w.queue)
			}
			flush()
			return
		}
	}
}

func (w *writer) close() {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = w.client.Disconnect(ctx)
}
