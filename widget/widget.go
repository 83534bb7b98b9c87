package widget

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"lunie/anim"
	"lunie/audio"
	"lunie/parameter"
	"lunie/phase"
	"lunie/render"
	"lunie/shade"
	"lunie/vmath"
)

// Config is the widget's runtime configuration, populated by the CLI
type Config struct {
	Hemisphere  shade.Hemisphere
	Softness    float64
	FPS         int
	Music       bool
	MusicDir    string
	TargetDate  time.Time
	FollowToday bool // re-resolve on calendar-day rollover
}

// Widget owns the terminal surface and drives the ambient loop: one
// goroutine advances the animation controller and composites the cached
// disc artifact; pointer events only overwrite the raw pointer input.
type Widget struct {
	cfg    Config
	logger *zap.SugaredLogger

	screen     tcell.Screen
	resolver   *phase.Resolver
	renderer   *render.Renderer
	controller *anim.Controller
	player     *audio.Player

	cols, rows int
	frame      *render.Frame
	sky        []render.Pixel

	record phase.Record
	disc   *render.DiscState
	radius float64
	center vmath.Vec2

	pointer       *vmath.Vec2
	lastPointerAt time.Time
}

var infoTextColor = func() tcell.Color {
	c, err := colorful.Hex(parameter.InfoTextHex)
	if err != nil {
		return tcell.ColorWhite
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}()

// New initializes the screen and renders the first disc eagerly, so no
// tick is ever the first caller to pay the render cost
func New(cfg Config, resolver *phase.Resolver, controller *anim.Controller, logger *zap.SugaredLogger) (*Widget, error) {
	if cfg.FPS < parameter.MinFPS || cfg.FPS > parameter.MaxFPS {
		cfg.FPS = parameter.DefaultFPS
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents | tcell.MouseButtonEvents)

	w := &Widget{
		cfg:        cfg,
		logger:     logger,
		screen:     screen,
		resolver:   resolver,
		renderer:   render.NewRenderer(cfg.Softness, logger),
		controller: controller,
	}
	w.layout()
	w.refresh(w.targetDate(time.Now()))

	if cfg.Music {
		w.player = audio.NewPlayer(logger)
		w.player.Start(cfg.MusicDir)
	}
	return w, nil
}

// Disc exposes the current cached artifact to the host surface
func (w *Widget) Disc() *render.DiscState {
	return w.disc
}

// AnimationState exposes the controller's read-only snapshot
func (w *Widget) AnimationState() anim.State {
	return w.controller.State()
}

func (w *Widget) targetDate(now time.Time) time.Time {
	if !w.cfg.FollowToday {
		return w.cfg.TargetDate
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// layout recomputes pixel-space geometry from the cell grid. Pixel space
// is cols x rows*2: two half-block pixels per cell row.
func (w *Widget) layout() {
	w.cols, w.rows = w.screen.Size()
	pxW, pxH := w.cols, w.rows*2

	minAxis := pxW
	if pxH < minAxis {
		minAxis = pxH
	}
	w.radius = parameter.DiscScreenFraction * float64(minAxis)
	w.center = vmath.Vec2{
		X: float64(pxW) / 2,
		Y: float64(pxH) * parameter.DiscCenterYFraction,
	}
	w.frame = render.NewFrame(w.cols, w.rows)
	w.sky = render.SkyColumn(pxH)
	w.controller.SetCenter(w.center)
}

// refresh re-resolves the date and rebuilds the cached disc. Every error
// path substitutes a safe default; always show something.
func (w *Widget) refresh(date time.Time) {
	rec, err := w.resolver.Resolve(date)
	if err != nil {
		// Startup-fatal condition made visible once, then degraded
		w.logger.Errorw("no phase data for date, showing new moon", "date", date, "error", err)
		rec = phase.Record{Date: date, Phase: phase.NewMoon}
	}

	term, err := shade.ToTerminator(rec, w.cfg.Hemisphere)
	if err != nil {
		w.logger.Warnw("invalid phase record, using analytic substitute", "error", err)
		rec = phase.Fallback(date)
		term, _ = shade.ToTerminator(rec, w.cfg.Hemisphere)
	}

	radius := w.radius
	disc, err := w.renderer.Render(term, radius, w.center)
	if errors.Is(err, render.ErrRenderSizeInvalid) {
		radius = parameter.MinDiscRadius
		disc, err = w.renderer.Render(term, radius, w.center)
	}
	if err != nil {
		w.logger.Errorw("disc render failed", "error", err)
		return
	}

	changed := rec != w.record
	w.record = rec
	w.disc = disc
	if changed {
		w.logger.Infow("phase resolved",
			"date", rec.Date.Format("2006-01-02"),
			"phase", rec.Phase.String(),
			"illumination_pct", rec.IlluminationPct,
			"age_days", rec.AgeDays)
	}
}

// Run drives the loop until a quit key or ctx-free screen teardown
func (w *Widget) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(w.cfg.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	nextRollover := last.Add(parameter.RolloverCheckInterval)

	for {
		select {
		case ev := <-eventChan:
			if !w.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			// Picks up both the day rollover and a table hot-reload;
			// a no-op when neither happened, the caches absorb it
			if now.After(nextRollover) {
				nextRollover = now.Add(parameter.RolloverCheckInterval)
				w.refresh(w.targetDate(now))
			}
			if w.pointer != nil && now.Sub(w.lastPointerAt) > parameter.PointerStaleAfter {
				w.pointer = nil
			}

			st := w.controller.Tick(dt, w.pointer)
			w.draw(st)
		}
	}
}

func (w *Widget) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		w.pointer = &vmath.Vec2{
			X: float64(x) + 0.5,
			Y: (float64(y) + 0.5) * 2, // cell row to pixel row
		}
		w.lastPointerAt = time.Now()

	case *tcell.EventResize:
		w.screen.Sync()
		w.layout()
		w.refresh(w.targetDate(time.Now()))
	}
	return true
}

// draw composites sky, moon and face through the per-frame transform and
// flushes half-block cells to the screen
func (w *Widget) draw(st anim.State) {
	w.frame.FillSky(w.sky)

	if w.disc != nil {
		moonOffset := st.ParallaxOffset.Scale(parameter.MoonParallaxDepth)
		faceOffset := st.ParallaxOffset.Scale(parameter.FaceParallaxDepth)
		scale := st.BlinkScale()

		w.frame.DrawDisc(w.disc, moonOffset, scale)
		render.DrawFace(w.frame, w.disc.Center.Add(faceOffset), w.disc.Radius, scale)
	}

	for r := 0; r < w.rows; r++ {
		for x := 0; x < w.cols; x++ {
			upper := w.frame.At(x, 2*r)
			lower := w.frame.At(x, 2*r+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			w.screen.SetContent(x, r, '▀', nil, style)
		}
	}

	w.drawInfoText()
	w.screen.Show()
}

// drawInfoText writes the bottom status line:
// MM/DD/YYYY • Phase • NN% • Age Y.Y d
func (w *Widget) drawInfoText() {
	txt := fmt.Sprintf("%s • %s • %d%% • Age %.1f d",
		w.record.Date.Format("01/02/2006"),
		w.record.Phase.String(),
		int(w.record.IlluminationPct+0.5),
		w.record.AgeDays)

	row := w.rows - 2
	if row < 0 {
		row = 0
	}
	runes := []rune(txt)
	col := (w.cols - len(runes)) / 2
	if col < 0 {
		col = 0
	}
	style := tcell.StyleDefault.Foreground(infoTextColor).Bold(true)
	for i, r := range runes {
		w.screen.SetContent(col+i, row, r, nil, style)
	}
}

// Close releases the screen and the audio device
func (w *Widget) Close() {
	if w.player != nil {
		w.player.Close()
	}
	w.screen.Fini()
}
