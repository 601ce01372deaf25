// Package bot wires classification, extraction, recommendation and
// rendering into a single conversational turn.
package bot

import (
	"go.uber.org/zap"

	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/intent"
	"github.com/rcliao/gamebot/internal/model"
	"github.com/rcliao/gamebot/internal/prefs"
	"github.com/rcliao/gamebot/internal/recommend"
	"github.com/rcliao/gamebot/internal/respond"
	"github.com/rcliao/gamebot/internal/session"
)

// DefaultPlatformCount is how many games a platform request lists.
const DefaultPlatformCount = 5

// Rand is a pseudo-random source shared by the engine and the composer.
type Rand interface {
	Intn(n int) int
}

type options struct {
	rnd           Rand
	logger        *zap.Logger
	count         int
	platformCount int
}

// Option configures a Bot.
type Option func(*options)

// WithRand pins every random choice to rnd.
func WithRand(rnd Rand) Option {
	return func(o *options) { o.rnd = rnd }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCount sets how many games a recommendation or genre request lists.
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithPlatformCount sets how many games a platform request lists.
func WithPlatformCount(n int) Option {
	return func(o *options) { o.platformCount = n }
}

// Reply is the outcome of one turn.
type Reply struct {
	Intent      model.Intent      `json:"intent"`
	Preferences model.Preferences `json:"preferences"`
	Text        string            `json:"response"`
}

// Bot is one conversation. It is not safe for concurrent use.
type Bot struct {
	catalog       *catalog.Catalog
	extractor     *prefs.Extractor
	engine        *recommend.Engine
	composer      *respond.Composer
	log           session.Log
	logger        *zap.Logger
	count         int
	platformCount int
}

// New builds a conversation over c. It fails with catalog.ErrEmpty when c
// holds no items.
func New(c *catalog.Catalog, opts ...Option) (*Bot, error) {
	if c == nil || c.Size() == 0 {
		return nil, catalog.ErrEmpty
	}
	o := options{
		logger:        zap.NewNop(),
		count:         recommend.DefaultCount,
		platformCount: DefaultPlatformCount,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// A nil interface must reach the constructors as nil, not as a typed nil.
	var engineRand recommend.Rand
	var composerRand respond.Rand
	if o.rnd != nil {
		engineRand, composerRand = o.rnd, o.rnd
	}

	return &Bot{
		catalog:       c,
		extractor:     prefs.NewExtractor(c.Categories()),
		engine:        recommend.New(c, engineRand),
		composer:      respond.New(composerRand),
		logger:        o.logger,
		count:         o.count,
		platformCount: o.platformCount,
	}, nil
}

// GenerateReply processes one utterance and returns the reply text.
// Callers should not pass blank input.
func (b *Bot) GenerateReply(text string) string {
	return b.Respond(text).Text
}

// Respond is GenerateReply with the intent and extracted preferences attached.
func (b *Bot) Respond(text string) Reply {
	in := intent.Classify(text)
	r := Reply{Intent: in}

	var p respond.Payload
	switch in {
	case model.IntentRecommendation:
		r.Preferences = b.extractor.Extract(text)
		p.Entries = b.recommend(r.Preferences, b.count)

	case model.IntentPlatformPreference:
		r.Preferences = b.extractor.Extract(text)
		if len(r.Preferences.Platforms) > 0 {
			p.Platform = r.Preferences.Platforms[0]
			p.Entries = b.recommend(r.Preferences, b.platformCount)
		} else {
			p.Platforms = prefs.SupportedPlatforms()
		}

	case model.IntentGenrePreference:
		r.Preferences = b.extractor.Extract(text)
		if len(r.Preferences.Categories) > 0 {
			p.Category = r.Preferences.Categories[0]
			p.Entries = b.recommend(r.Preferences, b.count)
		} else {
			p.Categories = b.catalog.Categories()
		}

	case model.IntentGameInfo:
		if e, ok := b.engine.FindByToken(text); ok {
			p.Item = &e
		}

	case model.IntentReview:
		if e, ok := b.findForReview(text); ok {
			p.Item = &e
		}
	}

	r.Text = b.composer.Compose(in, p)

	b.log.Append(model.RoleUser, text)
	b.log.Append(model.RoleBot, r.Text)

	b.logger.Debug("turn",
		zap.String("intent", string(in)),
		zap.Bool("constrained", !r.Preferences.IsEmpty()),
		zap.Any("preferences", r.Preferences),
		zap.Int("entries", len(p.Entries)),
		zap.Bool("item", p.Item != nil),
	)
	return r
}

func (b *Bot) recommend(p model.Preferences, count int) []model.Entry {
	entries, matched := b.engine.Match(p, count)
	if !matched {
		b.logger.Debug("no catalog match, using random sample", zap.Any("preferences", p))
	}
	return entries
}

// TurnCount returns the number of logged turns, two per reply.
func (b *Bot) TurnCount() int { return b.log.TurnCount() }

// Summary describes the conversation so far.
func (b *Bot) Summary() string { return b.log.Summary() }

// Turns returns a copy of the conversation log.
func (b *Bot) Turns() []model.Turn { return b.log.Turns() }
