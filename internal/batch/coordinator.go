// Package batch fans a single-token operation out across a token selection
// and collects every outcome, keyed by token UUID, without stopping at the
// first failure.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

// NoSelectionMessage is shown when an operation has nothing to work on
const NoSelectionMessage = "No tokens given or selected"

// ErrNoSelection is returned when neither tokens nor a selection were given
var ErrNoSelection = errors.FailedPrecondition(NoSelectionMessage)

const tracerName = "github.com/KirkDiggler/rpg-lootsheet/internal/batch"

// Func is a single-token operation. A returned error is recorded as that
// token's envelope.
type Func[T any] func(ctx context.Context, token *entities.Token) (*response.Envelope[T], error)

// Config holds the coordinator settings
type Config struct {
	// Parallelism is how many actors are worked on at once; values below 2
	// run every token sequentially
	Parallelism int
	// Tracer defaults to the global provider
	Tracer trace.Tracer
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Parallelism < 0 {
		vb.InvalidField("Parallelism", "must not be negative")
	}
	return vb.Build()
}

// Coordinator runs batches
type Coordinator struct {
	parallelism int
	tracer      trace.Tracer
}

// NewCoordinator creates a coordinator
func NewCoordinator(cfg *Config) (*Coordinator, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Coordinator{
		parallelism: cfg.Parallelism,
		tracer:      tracer,
	}, nil
}

// Resolve applies the selection policy: a non-nil slice is used as given,
// even when empty; nil falls back to the session selection; nil with an
// empty selection is ErrNoSelection.
func Resolve(tokens []*entities.Token, sess *session.Session) ([]*entities.Token, error) {
	if tokens != nil {
		return tokens, nil
	}
	if sess == nil || len(sess.Selection) == 0 {
		return nil, ErrNoSelection
	}
	return sess.Selection, nil
}

// Run invokes fn for every token and returns the outcomes keyed by UUID.
// Each token's own steps run in order inside fn. With parallelism above 1,
// tokens of different actors may run concurrently, but tokens sharing an
// actor always run one after another on the same worker since they mutate
// the same *entities.Actor. A token listed twice is processed once. Nil
// entries have no UUID to key an envelope under; they are logged and
// skipped.
func Run[T any](ctx context.Context, c *Coordinator, tokens []*entities.Token, fn Func[T]) response.Batch[T] {
	if c == nil {
		c = &Coordinator{tracer: otel.Tracer(tracerName)}
	}

	ctx, span := c.tracer.Start(ctx, "batch.Run", trace.WithAttributes(attribute.Int("batch.size", len(tokens))))
	defer span.End()

	unique := dedupe(tokens)
	result := make(response.Batch[T], len(unique))
	var mu sync.Mutex
	store := func(key string, env *response.Envelope[T]) {
		mu.Lock()
		defer mu.Unlock()
		result[key] = env
	}

	if c.parallelism < 2 {
		for _, token := range unique {
			store(token.UUID(), runOne(ctx, c, token, fn))
		}
	} else {
		sem := make(chan struct{}, c.parallelism)
		var wg sync.WaitGroup
		for _, group := range groupByActor(unique) {
			wg.Add(1)
			sem <- struct{}{}
			go func(group []*entities.Token) {
				defer wg.Done()
				defer func() { <-sem }()
				for _, token := range group {
					store(token.UUID(), runOne(ctx, c, token, fn))
				}
			}(group)
		}
		wg.Wait()
	}

	failed := result.Failed()
	span.SetAttributes(attribute.Int("batch.failed", len(failed)))
	if len(failed) > 0 {
		slog.Warn("Batch finished with failures", "total", len(result), "failed", len(failed))
	}
	return result
}

// groupByActor splits tokens into per-actor runs, keeping input order both
// across and within groups. Tokens without an actor form their own group.
func groupByActor(tokens []*entities.Token) [][]*entities.Token {
	index := make(map[string]int, len(tokens))
	var groups [][]*entities.Token
	for _, t := range tokens {
		key := actorKey(t)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], t)
	}
	return groups
}

func actorKey(t *entities.Token) string {
	switch {
	case t.Actor != nil && t.Actor.ID != "":
		return "actor:" + t.Actor.ID
	case t.ActorID != "":
		return "actor:" + t.ActorID
	default:
		return "token:" + t.UUID()
	}
}

func runOne[T any](ctx context.Context, c *Coordinator, token *entities.Token, fn Func[T]) (env *response.Envelope[T]) {
	ctx, span := c.tracer.Start(ctx, "batch.token", trace.WithAttributes(attribute.String("token.uuid", token.UUID())))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Token operation panicked", "token", token.UUID(), "panic", r)
			env = response.FromError[T](errors.Internalf("token operation failed: %v", r))
			span.SetStatus(codes.Error, fmt.Sprint(r))
		}
	}()

	out, err := fn(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.Warn("Token operation failed", "token", token.UUID(), "error", err)
		return response.FromError[T](err)
	}
	if out == nil {
		return response.FromError[T](errors.Internal("token operation returned no result"))
	}
	if out.Error {
		span.SetStatus(codes.Error, out.Msg)
	}
	return out
}

func dedupe(tokens []*entities.Token) []*entities.Token {
	seen := make(map[string]bool, len(tokens))
	out := make([]*entities.Token, 0, len(tokens))
	for i, t := range tokens {
		if t == nil {
			slog.Warn("Skipping nil token in batch", "index", i)
			continue
		}
		if seen[t.UUID()] {
			continue
		}
		seen[t.UUID()] = true
		out = append(out, t)
	}
	return out
}
