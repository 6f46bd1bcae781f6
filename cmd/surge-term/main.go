// Command surge-term plays Chromatic Surge in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/simukka/chromatic-surge/audio"
	"github.com/simukka/chromatic-surge/common"
	"github.com/simukka/chromatic-surge/game"
	"github.com/simukka/chromatic-surge/terminal"
)

// pixelScale is world units per raster pixel.
const pixelScale = 6

func defaultBestFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "chromatic-surge.json"
	}
	return filepath.Join(dir, "chromatic-surge", "best.json")
}

func main() {
	seed := flag.Uint("seed", 0, "world seed, 0 picks one from the clock")
	bestFile := flag.String("best-file", common.GetEnv("SURGE_BEST_FILE", defaultBestFile()), "best score file")
	mute := flag.Bool("mute", false, "start with sound off")
	fps := flag.Int("fps", common.GetEnvInt("SURGE_FPS", 60), "frames per second")
	logFile := flag.String("log", "", "write debug output to this file")
	debug := flag.Bool("debug", false, "enable debug output")
	flag.Parse()

	// Anything written to stderr would tear the screen.
	common.SetLogOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		common.SetLogOutput(f)
	}
	common.EnableDebug = *debug

	if *seed == 0 {
		*seed = uint(time.Now().UnixNano())
	}
	if *fps <= 0 {
		*fps = 60
	}

	screen, err := terminal.NewScreen(pixelScale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}

	engine := initAudio(*mute)

	start := time.Now()
	clock := func() float64 { return float64(time.Since(start)) / float64(time.Millisecond) }
	width, height := screen.WorldSize()
	session := game.NewSession(game.Options{
		Width:  width,
		Height: height,
		Seed:   uint32(*seed),
		Canvas: screen.Raster,
		HUD:    screen.HUD,
		Menus:  screen.Menus,
		Store:  game.NewFileStore(*bestFile),
		Audio:  engine,
		Clock:  clock,
	})

	run(screen, session, *fps, clock)

	speaker.Close()
	screen.Fini()
}

// initAudio opens the speaker. Failure leaves the game silent.
func initAudio(mute bool) *audio.Engine {
	rate := beep.SampleRate(audio.AudioConfig.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		common.DebugWarn("audio initialization failed:", err)
		return audio.NewEngine(nil)
	}
	renderer := audio.NewRenderer(rate)
	speaker.Play(renderer)

	engine := audio.NewEngine(renderer)
	if mute {
		engine.SetEnabled(false)
	}
	return engine
}

func run(screen *terminal.Screen, session *game.Session, fps int, clock func() float64) {
	events := screen.Events()
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	holds := terminal.NewHolds(terminal.DefaultHold)
	pointerDown := false

	session.Open()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit(ev) {
					return
				}
				handleKey(session, holds, ev, clock())

			case *tcell.EventMouse:
				col, row := ev.Position()
				x, y := screen.CellToWorld(col, row)
				pressed := ev.Buttons()&tcell.Button1 != 0
				switch {
				case pressed && !pointerDown:
					pointerDown = session.PointerDown(0, x, y, clock())
				case pressed:
					session.PointerMove(0, x, y)
				case pointerDown:
					session.PointerUp(0)
					pointerDown = false
				default:
					session.MouseMove(x, y)
				}

			case *tcell.EventResize:
				screen.Sync()
				screen.Fit()
				session.Resize(screen.WorldSize())
			}

		case now := <-ticker.C:
			for _, key := range holds.Expired(now) {
				session.KeyUp(key)
			}
			screen.Raster.BeginFrame()
			if session.State() == game.StatePlaying {
				session.Frame(clock())
			} else {
				session.Renderer.Draw(screen.Raster, session.World, 0)
			}
			screen.Flush()
		}
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func handleKey(session *game.Session, holds *terminal.Holds, ev *tcell.EventKey, now float64) {
	if ev.Key() == tcell.KeyEnter {
		if session.State() != game.StatePlaying {
			for _, key := range holds.ReleaseAll() {
				session.KeyUp(key)
			}
			session.Start(now)
		}
		return
	}

	pressKey(session, holds, ev, time.Now())
}

// pressKey forwards a key press, marking terminal auto-repeats so toggles
// fire once per hold.
func pressKey(session *game.Session, holds *terminal.Holds, ev *tcell.EventKey, at time.Time) {
	key, boost := terminal.KeyName(ev)
	if boost {
		session.KeyDown("Shift", holds.Repeat(game.ControlBoost, at))
		holds.Press(game.ControlBoost, at)
	}
	if key == "" {
		return
	}
	c := game.TranslateKey(key)
	session.KeyDown(key, holds.Repeat(c, at))
	holds.Press(c, at)
}
