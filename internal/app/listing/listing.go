// Package listing is the headless consumer of the item services. It keeps
// one list per screen, replaces it whenever a load is delivered, and routes
// item selections to a per-screen detail, the way a tabbed list UI would.
//
// All state changes driven by a load or a selection happen on the delivery
// executor. Readers on other goroutines see them through SafeRef.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-item-loader/internal/app/delivery"
	"github.com/jsamuelsen11/go-item-loader/internal/app/fanout"
	"github.com/jsamuelsen11/go-item-loader/internal/app/policy"
	"github.com/jsamuelsen11/go-item-loader/internal/domain"
	"github.com/jsamuelsen11/go-item-loader/internal/domain/item"
	"github.com/jsamuelsen11/go-item-loader/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-loader/internal/ports"
)

const instrumentationName = "github.com/jsamuelsen11/go-item-loader/internal/app/listing"

// Compile-time interface check.
var _ ports.ListService = (*Service)(nil)

// screenState is the last delivered list of a screen.
type screenState struct {
	items  []item.DisplayItem
	loaded bool
}

type screen struct {
	name      ports.Screen
	service   ports.ItemService
	state     *SafeRef[screenState]
	selection *SafeRef[*ports.Selection]
}

// route stores sel as the screen's current detail.
func (sc *screen) route(sel ports.Selection) {
	sel.Screen = sc.name
	sc.selection.Set(&sel)
}

// Service implements ports.ListService over the per-screen item services
// assembled by the policy package.
type Service struct {
	exec    delivery.Executor
	logger  *slog.Logger
	order   []ports.Screen
	screens map[ports.Screen]*screen

	tracer       trace.Tracer
	loadTotal    metric.Int64Counter
	loadDuration metric.Float64Histogram
}

// New assembles every screen from backends and opts. Loads and selections
// are delivered on exec; a nil exec delivers on the completing goroutine.
func New(backends policy.Backends, opts policy.Options, exec delivery.Executor, logger *slog.Logger) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("policy options: %w", err)
	}
	if exec == nil {
		exec = delivery.Immediate{}
	}

	s := &Service{
		exec:    exec,
		logger:  logger,
		order:   []ports.Screen{ports.ScreenFriends, ports.ScreenCards, ports.ScreenSent, ports.ScreenReceived},
		screens: make(map[ports.Screen]*screen),
		tracer:  otel.Tracer(instrumentationName),
	}
	for _, name := range s.order {
		s.screens[name] = &screen{
			name:      name,
			state:     NewRef(screenState{}),
			selection: NewRef[*ports.Selection](nil),
		}
	}

	friends := s.screens[ports.ScreenFriends]
	friends.service = policy.Friends(backends, opts, func(f item.Friend) {
		friends.route(ports.Selection{Kind: ports.SelectionFriend, Friend: &f})
	}, exec)

	cards := s.screens[ports.ScreenCards]
	cards.service = policy.Cards(backends, opts, func(c item.Card) {
		cards.route(ports.Selection{Kind: ports.SelectionCard, Card: &c})
	}, exec)

	sent := s.screens[ports.ScreenSent]
	sent.service = policy.SentTransfers(backends, opts, func(t item.Transfer) {
		sent.route(ports.Selection{Kind: ports.SelectionTransfer, Transfer: &t})
	}, exec)

	received := s.screens[ports.ScreenReceived]
	received.service = policy.ReceivedTransfers(backends, opts, func(t item.Transfer) {
		received.route(ports.Selection{Kind: ports.SelectionTransfer, Transfer: &t})
	}, exec)

	if err := s.initMetrics(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) initMetrics() error {
	meter := otel.Meter(instrumentationName)

	var err error
	s.loadTotal, err = meter.Int64Counter(
		"items.load.total",
		metric.WithDescription("Total number of top-level item loads"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return fmt.Errorf("creating items.load.total: %w", err)
	}

	s.loadDuration, err = meter.Float64Histogram(
		"items.load.duration",
		metric.WithDescription("Duration of top-level item loads, retries and fallbacks included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("creating items.load.duration: %w", err)
	}
	return nil
}

// Screens returns the screens in tab order.
func (s *Service) Screens() []ports.Screen {
	return append([]ports.Screen(nil), s.order...)
}

func (s *Service) screen(name ports.Screen) (*screen, error) {
	sc, ok := s.screens[name]
	if !ok {
		return nil, fmt.Errorf("screen %q: %w", name, domain.ErrNotFound)
	}
	return sc, nil
}

// Load issues one LoadItems call on the screen's service and waits for its
// delivery. A successful delivery replaces the screen's items; a failed one
// leaves the previous items in place. The load itself is never canceled:
// if ctx ends first Load returns ctx.Err() and the delivery still updates
// the screen when it arrives.
func (s *Service) Load(ctx context.Context, name ports.Screen) ([]item.DisplayItem, error) {
	sc, err := s.screen(name)
	if err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "listing.Load",
		trace.WithAttributes(attribute.String("screen", name.String())),
	)
	defer span.End()

	logger := s.logger.With(slog.String("screen", name.String()))
	ctx = logging.With(ctx, slog.String("screen", name.String()))
	start := time.Now()
	done := make(chan domain.Result[[]item.DisplayItem], 1)

	sc.service.LoadItems(context.WithoutCancel(ctx), func(result domain.Result[[]item.DisplayItem]) {
		if result.IsSuccess() {
			sc.state.Set(screenState{items: result.Value(), loaded: true})
		}
		done <- result
	})

	var result domain.Result[[]item.DisplayItem]
	select {
	case result = <-done:
	case <-ctx.Done():
		logger.WarnContext(ctx, "stopped waiting for item load",
			slog.String("operation", "Load"),
			slog.Any("error", ctx.Err()),
		)
		return nil, ctx.Err()
	}

	outcome := "success"
	items, err := result.Get()
	if err != nil {
		outcome = "failure"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.ErrorContext(ctx, "failed to load items",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
	} else {
		logger.InfoContext(ctx, "items loaded", slog.Int("count", len(items)))
	}

	attrs := metric.WithAttributes(
		attribute.String("screen", name.String()),
		attribute.String("result", outcome),
	)
	s.loadTotal.Add(ctx, 1, attrs)
	s.loadDuration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		return nil, err
	}
	return items, nil
}

// LoadAll loads every screen at once and reports each outcome in tab order.
func (s *Service) LoadAll(ctx context.Context) []ports.ScreenOutcome {
	results := fanout.Map(ctx, len(s.order), s.order, s.Load)

	outcomes := make([]ports.ScreenOutcome, len(s.order))
	for i, name := range s.order {
		items, err := results[i].Get()
		outcomes[i] = ports.ScreenOutcome{Screen: name, Items: items, Err: err}
	}
	return outcomes
}

// Select runs the selection action of the item at index on the delivery
// executor and returns the detail it routed to.
func (s *Service) Select(ctx context.Context, name ports.Screen, index int) (*ports.Selection, error) {
	sc, err := s.screen(name)
	if err != nil {
		return nil, err
	}

	state := sc.state.Get()
	if !state.loaded {
		return nil, fmt.Errorf("screen %q has not been loaded: %w", name, domain.ErrNotFound)
	}
	if index < 0 || index >= len(state.items) {
		return nil, fmt.Errorf("item %d of screen %q: %w", index, name, domain.ErrNotFound)
	}

	selected := state.items[index]
	done := make(chan struct{})
	s.exec.Dispatch(func() {
		selected.Select()
		close(done)
	})

	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.logger.InfoContext(ctx, "item selected",
		slog.String("screen", name.String()),
		slog.Int("index", index),
	)
	return s.Selection(name)
}

// Selection returns a copy of the screen's current detail.
func (s *Service) Selection(name ports.Screen) (*ports.Selection, error) {
	sc, err := s.screen(name)
	if err != nil {
		return nil, err
	}

	sel := sc.selection.Get()
	if sel == nil {
		return nil, fmt.Errorf("no selection on screen %q: %w", name, domain.ErrNotFound)
	}
	cp := *sel
	return &cp, nil
}
