// Package engine implements the typestorm simulation: the entity model,
// the typing-match state machine, the spawn scheduler and the damped-spring
// camera. It is pure logic with no terminal, audio or storage code; those
// arrive through the Deps interfaces so the whole game is testable headless
// and reproducible from a seed.
package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/typestorm/internal/config"
	"github.com/vovakirdan/typestorm/internal/core"
	"github.com/vovakirdan/typestorm/internal/words"
)

// Difficulty names, also used as storage keys.
const (
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// State identifies which screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlay
	StateOptions
)

// Menu rows, in display order.
const (
	menuNormal = iota
	menuHard
	menuOptions
	menuQuit
	menuCount
)

// Options rows, in display order.
const (
	optPalette = iota
	optLanguage
	optZoom
	optSFX
	optMusic
	optCount
)

const volumeStep = 10

// WordProvider lists available languages and loads their word lists.
type WordProvider interface {
	Languages() []string
	Source(language string) (*words.Source, error)
}

// ScoreStore persists per-language, per-difficulty best scores and the
// session history.
type ScoreStore interface {
	Best(language, difficulty string) (int, error)
	SaveBest(language, difficulty string, score int) error
	RecordSession(language, difficulty string, score, hits, shots int, duration float64) error
}

// ConfigSink receives the options snapshot when the player applies changes.
type ConfigSink interface {
	Apply(config.Config) error
}

// Deps are the session's external collaborators. All fields are required;
// use NopCues and no-op implementations for headless runs.
type Deps struct {
	Words  WordProvider
	Scores ScoreStore
	Cues   CueSink
	Config ConfigSink
}

// Session is the complete game state machine: menu, options and play. Step
// advances it by one tick; Render draws it. All randomness flows through a
// single seeded source, so a fixed seed and input sequence replays exactly.
type Session struct {
	cfg  config.Config
	deps Deps
	rng  *rand.Rand

	state     State
	menuIndex int
	quit      bool

	// options drafts, populated on entering the options screen
	optIndex    int
	paletteIdx  int
	languageIdx int
	zoomIdx     int
	sfxDraft    int
	musicDraft  int

	words   *words.Source
	loadErr error

	player    *Player
	enemies   []*Enemy
	lasers    []*Laser
	camera    *Camera
	selection uint64 // enemy id, 0 = none
	nextID    uint64

	difficulty string
	score      int
	hits       int
	shots      int
	time       float64
	timer      float64 // countdown to next spawn

	bestNormal int
	bestHard   int
}

// NewSession builds a session in the menu state. A missing or broken word
// list for the configured language is recorded rather than returned: the
// menu and options still work, only starting a game is blocked until the
// player picks a loadable language.
func NewSession(cfg config.Config, rtc core.RuntimeConfig, deps Deps) *Session {
	seed := rtc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		deps:   deps,
		rng:    rand.New(rand.NewSource(seed)),
		camera: NewCamera(cfg.Zoom),
		player: NewPlayer(),
		nextID: 1,
	}
	s.words, s.loadErr = deps.Words.Source(cfg.Language)
	s.refreshBests()
	return s
}

// Quitting reports whether the player asked to exit the program.
func (s *Session) Quitting() bool {
	return s.quit
}

// State returns the current screen.
func (s *Session) State() State {
	return s.state
}

// Config returns the active options snapshot.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Brightness returns the camera's full-screen flash level.
func (s *Session) Brightness() float64 {
	return s.camera.Brightness
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score
}

// Step advances the session by one tick. dt is in simulation time units;
// the platform derives it from wall-clock time between ticks.
func (s *Session) Step(input core.InputFrame, dt float64) {
	if input.Has(core.ActionQuit) {
		s.quit = true
		return
	}

	switch s.state {
	case StateMenu:
		s.stepMenu(input)
	case StateOptions:
		s.stepOptions(input)
	case StatePlay:
		s.stepPlay(input, dt)
	}
}

func (s *Session) stepMenu(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		s.quit = true
		return
	}
	if input.Has(core.ActionUp) {
		s.menuIndex = (s.menuIndex + menuCount - 1) % menuCount
	}
	if input.Has(core.ActionDown) {
		s.menuIndex = (s.menuIndex + 1) % menuCount
	}
	if !input.Has(core.ActionConfirm) {
		return
	}

	switch s.menuIndex {
	case menuNormal:
		s.startGame(DifficultyNormal)
	case menuHard:
		if s.hardLocked() {
			s.deps.Cues.Play(CueError)
			return
		}
		s.startGame(DifficultyHard)
	case menuOptions:
		s.enterOptions()
	case menuQuit:
		s.quit = true
	}
}

func (s *Session) hardLocked() bool {
	return s.bestNormal < s.cfg.HardUnlock
}

func (s *Session) startGame(difficulty string) {
	if s.words == nil {
		s.deps.Cues.Play(CueError)
		return
	}

	s.difficulty = difficulty
	s.player = NewPlayer()
	s.enemies = nil
	s.lasers = nil
	s.selection = 0
	s.score = 0
	s.hits = 0
	s.shots = 0
	s.time = 0
	s.timer = 0 // first enemy spawns on the first frame
	s.camera = NewCamera(s.cfg.Zoom)
	s.state = StatePlay
	s.deps.Cues.Play(CueSelect)
}

func (s *Session) enterOptions() {
	s.optIndex = 0
	s.paletteIdx = indexOf(config.PaletteNames(), s.cfg.Palette)
	s.languageIdx = indexOf(s.deps.Words.Languages(), s.cfg.Language)
	s.zoomIdx = 0
	for i, z := range config.ZoomLevels {
		if z == s.cfg.Zoom {
			s.zoomIdx = i
		}
	}
	s.sfxDraft = s.cfg.SFXVolume
	s.musicDraft = s.cfg.MusicVolume
	s.state = StateOptions
}

func (s *Session) stepOptions(input core.InputFrame) {
	if input.Has(core.ActionBack) {
		s.state = StateMenu
		return
	}
	if input.Has(core.ActionUp) {
		s.optIndex = (s.optIndex + optCount - 1) % optCount
	}
	if input.Has(core.ActionDown) {
		s.optIndex = (s.optIndex + 1) % optCount
	}

	step := 0
	if input.Has(core.ActionLeft) {
		step = -1
	}
	if input.Has(core.ActionRight) {
		step = 1
	}
	if step != 0 {
		s.cycleOption(step)
	}

	if input.Has(core.ActionConfirm) {
		s.applyOptions()
	}
}

func (s *Session) cycleOption(step int) {
	switch s.optIndex {
	case optPalette:
		names := config.PaletteNames()
		s.paletteIdx = (s.paletteIdx + step + len(names)) % len(names)
	case optLanguage:
		langs := s.deps.Words.Languages()
		if len(langs) > 0 {
			s.languageIdx = (s.languageIdx + step + len(langs)) % len(langs)
		}
	case optZoom:
		n := len(config.ZoomLevels)
		s.zoomIdx = (s.zoomIdx + step + n) % n
	case optSFX:
		s.sfxDraft = core.Clamp(s.sfxDraft+step*volumeStep, 0, 100)
	case optMusic:
		s.musicDraft = core.Clamp(s.musicDraft+step*volumeStep, 0, 100)
	}
}

// applyOptions commits the drafts: the word list for a changed language is
// resolved immediately so a broken list surfaces here instead of at game
// start, and the snapshot is handed to the sink for persistence.
func (s *Session) applyOptions() {
	cfg := s.cfg
	cfg.Palette = config.PaletteNames()[s.paletteIdx]
	if langs := s.deps.Words.Languages(); len(langs) > 0 {
		cfg.Language = langs[s.languageIdx]
	}
	cfg.Zoom = config.ZoomLevels[s.zoomIdx]
	cfg.SFXVolume = s.sfxDraft
	cfg.MusicVolume = s.musicDraft

	s.cfg = cfg
	s.words, s.loadErr = s.deps.Words.Source(cfg.Language)
	s.camera.SetZoom(cfg.Zoom)
	s.refreshBests()
	_ = s.deps.Config.Apply(cfg)

	s.deps.Cues.Play(CueSelect)
	s.state = StateMenu
}

func (s *Session) refreshBests() {
	s.bestNormal, _ = s.deps.Scores.Best(s.cfg.Language, DifficultyNormal)
	s.bestHard, _ = s.deps.Scores.Best(s.cfg.Language, DifficultyHard)
}

func (s *Session) stepPlay(input core.InputFrame, dt float64) {
	if input.Has(core.ActionBack) {
		s.toMenu()
		return
	}

	for _, r := range input.Letters {
		if !s.player.Alive() {
			break
		}
		s.handleLetter(r)
	}

	s.advance(dt)
}

// handleLetter runs the typing-match machine for one keystroke. With no
// target, a keystroke that matches some enemy's first letter both selects
// that enemy and damages it; any keystroke that matches nothing is a miss,
// which on hard difficulty ends the game.
func (s *Session) handleLetter(r rune) {
	s.shots++

	sel := s.selectedEnemy()
	if sel == nil {
		for _, e := range s.enemies {
			if e.Alive() && e.FirstLetter() == r {
				s.selection = e.id
				e.selected = true
				sel = e
				break
			}
		}
	}
	if sel == nil || sel.FirstLetter() != r {
		if s.difficulty == DifficultyHard {
			s.endGame()
		} else {
			s.deps.Cues.Play(CueError)
		}
		return
	}

	s.hits++
	target := sel.Position()
	dir := target.Norm()

	sel.Damage(s.rng)
	s.lasers = append(s.lasers, NewLaser(target))
	s.player.Aim(dir)
	s.player.Kickback(dir)
	s.camera.Shake(0.5, s.rng)
	s.deps.Cues.Play(CueLaser)

	if !sel.Alive() {
		s.selection = 0
		s.score++
		s.camera.Flash(0.5)
		s.camera.Shake(2, s.rng)
		s.deps.Cues.Play(CueExplosion)
	}
}

// selectedEnemy resolves the selection id, clearing it if the referenced
// enemy is gone or dead.
func (s *Session) selectedEnemy() *Enemy {
	if s.selection == 0 {
		return nil
	}
	for _, e := range s.enemies {
		if e.id == s.selection && e.Alive() {
			return e
		}
	}
	s.selection = 0
	return nil
}

// advance moves the world forward: spawn clock, camera spring, entities,
// collision and removal of expired entities.
func (s *Session) advance(dt float64) {
	s.time += dt

	if s.player.Alive() {
		s.timer -= dt
		if s.timer <= 0 {
			s.spawnEnemy()
			s.timer = spawnInterval(s.score)
		}
	}

	s.camera.Update(dt)
	s.player.Update(dt)

	// enemies freeze during the death animation; their debris still decays
	live := s.enemies[:0]
	for _, e := range s.enemies {
		if s.player.Alive() {
			e.Update(dt)
			if e.Alive() &&
				core.Dist(e.Position(), s.player.Position()) < e.Radius()+0.5*s.player.Radius() {
				s.endGame()
			}
		} else {
			e.updateDebris(dt)
		}
		if !e.Removable() {
			live = append(live, e)
		}
	}
	s.enemies = live

	flying := s.lasers[:0]
	for _, l := range s.lasers {
		l.Update(dt)
		if !l.Done() {
			flying = append(flying, l)
		}
	}
	s.lasers = flying

	// after death, wait for the player's destruction debris to finish
	if !s.player.Alive() && len(s.player.Debris()) == 0 {
		s.toMenu()
	}
}

// spawnEnemy adds one enemy with a word whose first letter no live enemy
// already uses. When every candidate clashes the spawn is skipped; the next
// wave retries.
func (s *Session) spawnEnemy() {
	taken := make(map[rune]bool, len(s.enemies))
	for _, e := range s.enemies {
		if e.Alive() {
			taken[e.FirstLetter()] = true
		}
	}

	word := pickWord(s.words, taken, s.rng)
	if word == "" {
		return
	}
	s.enemies = append(s.enemies, NewEnemy(s.nextID, word, s.rng))
	s.nextID++
}

// endGame destroys the player and persists the run. Guarded on health so a
// tick with several lethal events only ends the game once.
func (s *Session) endGame() {
	if s.player.Health() <= 0 {
		return
	}

	s.camera.Flash(0.5)
	s.camera.Shake(4, s.rng)
	s.player.Damage(s.rng)
	s.deps.Cues.Play(CueExplosion)

	best := s.bestNormal
	if s.difficulty == DifficultyHard {
		best = s.bestHard
	}
	if s.score > best {
		_ = s.deps.Scores.SaveBest(s.cfg.Language, s.difficulty, s.score)
		if s.difficulty == DifficultyHard {
			s.bestHard = s.score
		} else {
			s.bestNormal = s.score
		}
	}
	_ = s.deps.Scores.RecordSession(s.cfg.Language, s.difficulty, s.score, s.hits, s.shots, s.time)
}

func (s *Session) toMenu() {
	s.enemies = nil
	s.lasers = nil
	s.selection = 0
	s.state = StateMenu
}

// hudTime converts simulation time to the displayed seconds counter.
func (s *Session) hudTime() int {
	return int(s.time / 6)
}

// hudWPM computes words per minute from kills over elapsed time.
func (s *Session) hudWPM() int {
	if s.time <= 0 {
		return 0
	}
	return int(360 * float64(s.score) / s.time)
}

// hudAccuracy computes the hit percentage over all keystrokes. Before the
// first keystroke it reads zero.
func (s *Session) hudAccuracy() int {
	if s.shots == 0 {
		return 0
	}
	return 100 * s.hits / s.shots
}

func indexOf(values []string, v string) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}
