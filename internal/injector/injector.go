// Package injector places the WidgetBot widget into a host panel page.
//
// Run waits for the host's client API, fetches the public configuration and
// then either injects a passive <widgetbot> embed or constructs the vendor
// Crate widget. Every failure after the host is ready is logged and leaves
// the page without a widget; nothing propagates to the host.
package injector

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/widgetbot/internal/dom"
)

// Variant selects how the widget is shown.
type Variant string

const (
	VariantEmbed Variant = "embed"
	VariantCrate Variant = "crate"
)

// DefaultPollInterval matches how often the browser script re-checks globals.
const DefaultPollInterval = 100 * time.Millisecond

var (
	// ErrInvalidResponse means the envelope was unsuccessful or had no data.
	ErrInvalidResponse = errors.New("config API did not return a valid response")
	// ErrMissingIDs means the data lacked the IDs the variant needs.
	ErrMissingIDs = errors.New("config missing server_id or channel_id")
)

// HostAPI is the host panel's client handle. It is only checked for presence.
type HostAPI any

// Options configures a Plugin.
type Options struct {
	Variant      Variant
	PollInterval time.Duration
	// ReadyTimeout bounds each readiness wait. Zero waits until ctx ends.
	ReadyTimeout time.Duration
}

// Plugin is one injector instance bound to a page.
type Plugin struct {
	opts   Options
	doc    *dom.Document
	source ConfigSource
	host   *Slot[HostAPI]
	vendor *Slot[CrateConstructor]
	log    zerolog.Logger

	mu    sync.Mutex
	api   HostAPI
	crate any
	ready bool
}

// New creates a Plugin. vendor may be nil when only the embed variant is used.
func New(opts Options, doc *dom.Document, source ConfigSource, host *Slot[HostAPI], vendor *Slot[CrateConstructor], logger zerolog.Logger) *Plugin {
	if opts.Variant == "" {
		opts.Variant = VariantEmbed
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if vendor == nil {
		vendor = &Slot[CrateConstructor]{}
	}
	return &Plugin{
		opts:   opts,
		doc:    doc,
		source: source,
		host:   host,
		vendor: vendor,
		log:    logger,
	}
}

// Run waits for the host API and then initializes the plugin. It returns an
// error only when the host API never became available.
func (p *Plugin) Run(ctx context.Context) error {
	waitCtx, cancel := withTimeout(ctx, p.opts.ReadyTimeout)
	api, err := p.host.WaitForReady(waitCtx, p.opts.PollInterval)
	cancel()
	if err != nil {
		return fmt.Errorf("host API not available: %w", err)
	}

	p.Init(ctx, api)
	return nil
}

// Init records the host handle and sets up the widget. Errors are logged and
// swallowed; the plugin is marked ready either way.
func (p *Plugin) Init(ctx context.Context, api HostAPI) {
	p.mu.Lock()
	p.api = api
	p.mu.Unlock()

	p.log.Info().Str("variant", string(p.opts.Variant)).Msg("widgetbot plugin initialized")

	err := p.setup(ctx)

	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidResponse), errors.Is(err, ErrMissingIDs):
		p.log.Warn().Err(err).Msg("widgetbot not shown")
	default:
		p.log.Error().Err(err).Msg("failed to set up widgetbot")
	}

	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
	p.log.Info().Msg("widgetbot plugin ready")
}

// setup runs the configured variant. A panic from vendor code is
// returned as an error so it never reaches the host.
func (p *Plugin) setup(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("widget setup panicked: %v", r)
		}
	}()

	switch p.opts.Variant {
	case VariantCrate:
		return p.setupCrate(ctx)
	default:
		return p.setupEmbed(ctx)
	}
}

// Ready reports whether Init has completed.
func (p *Plugin) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// API returns the recorded host handle.
func (p *Plugin) API() HostAPI {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.api
}

// Crate returns the constructed Crate instance, or nil.
func (p *Plugin) Crate() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.crate
}

func (p *Plugin) fetch(ctx context.Context) (*ConfigData, error) {
	env, err := p.source.FetchConfig(ctx)
	if err != nil {
		return nil, err
	}
	if env == nil || !env.Success || env.Data == nil {
		return nil, ErrInvalidResponse
	}
	return env.Data, nil
}

func (p *Plugin) setupEmbed(ctx context.Context) error {
	data, err := p.fetch(ctx)
	if err != nil {
		return err
	}
	if data.ServerID == "" || data.ChannelID == "" {
		return ErrMissingIDs
	}

	InjectEmbed(p.doc, data.ServerID, data.ChannelID)
	p.log.Info().Str("server", data.ServerID).Str("channel", data.ChannelID).Msg("widgetbot embed injected")
	return nil
}

func (p *Plugin) setupCrate(ctx context.Context) error {
	data, err := p.fetch(ctx)
	if err != nil {
		return err
	}
	if data.ServerID == "" {
		return ErrMissingIDs
	}

	ensureCrateScript(p.doc)

	waitCtx, cancel := withTimeout(ctx, p.opts.ReadyTimeout)
	defer cancel()
	construct, err := p.vendor.WaitForReady(waitCtx, p.opts.PollInterval)
	if err != nil {
		return fmt.Errorf("crate script not loaded: %w", err)
	}

	crate := construct(CrateOptions(*data))

	p.mu.Lock()
	p.crate = crate
	p.mu.Unlock()
	p.log.Info().Str("server", data.ServerID).Msg("widgetbot crate created")
	return nil
}
