// Package dino implements a Chrome Dino-style endless runner.
// The runner jumps over cacti and ducks under birds while the world scrolls
// faster as the score climbs. Game advances one fixed step per Tick and
// exposes every tick as a FrameState.
package dino

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	// GameID identifies the runner in score storage.
	GameID = "dino"
	// DisplayName is shown in titles and score listings.
	DisplayName = "Dino Dash"
)

// session is everything owned by one run. Restart replaces it wholesale.
type session struct {
	runner    Runner
	obstacles []Obstacle
	schedule  SpawnSchedule
	scenery   *Scenery
	score     ScoreKeeper
	frame     int
	speed     float64
	phase     Phase
}

// Game is the simulation state machine: Playing -> GameOver -> Playing.
type Game struct {
	cfg      config.DinoConfig
	rng      RandomSource // Obstacles; continues across restarts
	sceneRng RandomSource // Scenery only
	store    HighScoreStore
	intents  *core.IntentQueue
	observer Observer
	sess     *session
	last     FrameState
}

// Option configures a Game.
type Option func(*Game)

// WithObserver registers a callback for GameOver, NewHighScore and Restarted.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithRandomSource replaces the obstacle generator.
func WithRandomSource(rng RandomSource) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// New validates cfg and starts a game in the Playing phase.
// A nil store keeps the high score in memory only.
func New(cfg config.DinoConfig, seed int64, store HighScoreStore, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dino: invalid config: %w", err)
	}
	if store == nil {
		store = NewMemoryHighScores(0)
	}

	g := &Game{
		cfg:      cfg,
		rng:      NewRandomSource(seed),
		sceneRng: NewRandomSource(seed + 1),
		store:    store,
		intents:  core.NewIntentQueue(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.sess = g.newSession()
	g.last = g.snapshot(nil)
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return DisplayName
}

// Config returns the validated configuration.
func (g *Game) Config() *config.DinoConfig {
	return &g.cfg
}

// Push queues an intent for the next tick. Safe to call from any goroutine.
func (g *Game) Push(i core.Intent) {
	g.intents.Push(i)
}

// Frame returns the snapshot produced by the most recent tick.
func (g *Game) Frame() FrameState {
	return g.last
}

func (g *Game) newSession() *session {
	return &session{
		runner:    NewRunner(g.cfg.Runner),
		obstacles: make([]Obstacle, 0, 16),
		schedule:  NewSpawnSchedule(&g.cfg, g.rng),
		scenery:   NewScenery(&g.cfg, g.sceneRng),
		score:     NewScoreKeeper(g.store),
		speed:     g.cfg.Speed.Base,
		phase:     PhasePlaying,
	}
}

// Tick drains pending intents and advances the simulation by exactly one
// step, whatever the wall-clock time since the previous call.
func (g *Game) Tick() FrameState {
	intents := g.intents.Drain()

	if g.sess.phase == PhaseGameOver {
		return g.tickGameOver(intents)
	}

	for _, i := range collapseIntents(intents) {
		g.apply(i)
	}

	var events []Event
	s := g.sess
	s.frame++

	s.runner = UpdateRunner(s.runner, g.cfg.Physics)

	sp := g.cfg.Speed
	s.speed = CurrentSpeed(s.score.Score, sp.Base, sp.IncrementInterval, sp.IncrementAmount)

	var cacti []*GroundObstacle
	cacti, s.schedule = SpawnGround(s.frame, s.schedule, g.rng, &g.cfg)
	for _, c := range cacti {
		s.obstacles = append(s.obstacles, c)
	}

	var bird *AerialObstacle
	bird, s.schedule = SpawnAerial(s.score.Score, s.frame, s.schedule, g.rng, &g.cfg)
	if bird != nil {
		s.obstacles = append(s.obstacles, bird)
	}

	s.obstacles = AdvanceObstacles(s.obstacles, s.speed, g.cfg.Aerial.WingFlapFrames)
	s.scenery.Update(s.frame, s.speed)

	if CheckAll(s.runner, s.obstacles, g.cfg.Hitboxes) {
		s.phase = PhaseGameOver
		events = append(events, EventGameOver)
	} else if s.score.Increment() {
		events = append(events, EventNewHighScore)
	}

	return g.publish(events)
}

// tickGameOver holds the final frame until a Restart intent arrives.
func (g *Game) tickGameOver(intents []core.Intent) FrameState {
	at := -1
	for n, i := range intents {
		if i == core.IntentRestart {
			at = n
			break
		}
	}
	if at < 0 {
		g.last = g.snapshot(nil)
		return g.last
	}

	g.sess = g.newSession()
	for _, i := range collapseIntents(intents[at+1:]) {
		g.apply(i)
	}
	return g.publish([]Event{EventRestarted})
}

// collapseIntents reduces one tick's key edges to what the player is doing
// at the end of it. A jump press anywhere still launches, but a release is
// only kept if it is the last jump edge. Only the last duck edge is kept.
// The two keys are applied in the order their surviving edges arrived.
func collapseIntents(intents []core.Intent) []core.Intent {
	var (
		lastJump, lastDuck core.Intent
		pressAt, jumpAt    = -1, -1
		duckAt             = -1
	)
	for n, i := range intents {
		switch i {
		case core.IntentJumpPressed, core.IntentJumpReleased:
			if i == core.IntentJumpPressed && pressAt < 0 {
				pressAt = n
			}
			lastJump, jumpAt = i, n
		case core.IntentDuckPressed, core.IntentDuckReleased:
			lastDuck, duckAt = i, n
		}
	}

	var jump, duck []core.Intent
	if pressAt >= 0 {
		jump = append(jump, core.IntentJumpPressed)
	}
	if jumpAt >= 0 && lastJump == core.IntentJumpReleased {
		jump = append(jump, core.IntentJumpReleased)
	}
	if duckAt >= 0 {
		duck = append(duck, lastDuck)
	}

	jumpFirst := pressAt
	if jumpFirst < 0 {
		jumpFirst = jumpAt
	}
	if duckAt < jumpFirst {
		return append(duck, jump...)
	}
	return append(jump, duck...)
}

// apply mutates the runner for one intent. Illegal combinations are ignored.
func (g *Game) apply(i core.Intent) {
	r := g.sess.runner
	switch i {
	case core.IntentJumpPressed:
		r = r.PressJump(g.cfg.Physics)
	case core.IntentJumpReleased:
		r = r.ReleaseJump(g.cfg.Physics)
	case core.IntentDuckPressed:
		r = r.PressDuck(g.cfg.Runner)
	case core.IntentDuckReleased:
		r = r.ReleaseDuck(g.cfg.Runner)
	}
	g.sess.runner = r
}

func (g *Game) publish(events []Event) FrameState {
	g.last = g.snapshot(events)
	if g.observer != nil {
		for _, e := range events {
			g.observer(e, g.last)
		}
	}
	return g.last
}

func (g *Game) snapshot(events []Event) FrameState {
	s := g.sess
	return FrameState{
		Runner:    s.runner,
		Obstacles: copyObstacles(s.obstacles),
		Clouds:    append([]Cloud(nil), s.scenery.Clouds...),
		Dots:      append([]GroundDot(nil), s.scenery.Dots...),
		Score:     s.score.Score,
		HighScore: s.score.HighScore,
		Frame:     s.frame,
		Speed:     s.speed,
		Phase:     s.phase,
		Events:    events,
	}
}
