package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
	"github.com/younwookim/cutscene/internal/application/game"
	"github.com/younwookim/cutscene/internal/application/replay"
	"github.com/younwookim/cutscene/internal/application/scene/cutscene"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/config"
	"github.com/younwookim/cutscene/internal/infrastructure/i18n"
	"github.com/younwookim/cutscene/internal/infrastructure/sound"
	"github.com/younwookim/cutscene/internal/infrastructure/storage"
)

const appName = "cutscene"

// keepVolume leaves a saved volume unchanged
const keepVolume = -1

// options are the command line settings
type options struct {
	dataDir  string
	cutscene string
	slot     int
	level    string
	record   string
	replay   string

	mute        bool
	unmute      bool
	musicVolume float64
	soundVolume float64
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet(appName, flag.ContinueOnError)
	fset.SetOutput(output)
	fset.StringVar(&opts.dataDir, "data", "", "Data directory (default: embedded data)")
	fset.StringVar(&opts.cutscene, "cutscene", "intro", "Cutscene to play from cutscenes/")
	fset.IntVar(&opts.slot, "slot", cutscene.NoSlot, "Save slot to resume when the cutscene ends")
	fset.StringVar(&opts.level, "level", "", "Write this level into -slot before playing")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json, \"auto\" for a timestamped name)")
	fset.StringVar(&opts.replay, "replay", "", "Replay input from file")
	fset.BoolVar(&opts.mute, "mute", false, "Disable music and sound and save the setting")
	fset.BoolVar(&opts.unmute, "unmute", false, "Enable music and sound and save the setting")
	fset.Float64Var(&opts.musicVolume, "music-volume", keepVolume, "Save a music volume (0.0 ~ 1.0)")
	fset.Float64Var(&opts.soundVolume, "sound-volume", keepVolume, "Save a sound volume (0.0 ~ 1.0)")
	if err := fset.Parse(args); err != nil {
		return opts, err
	}
	if opts.record != "" && opts.replay != "" {
		return opts, errors.New("-record and -replay are mutually exclusive")
	}
	if opts.mute && opts.unmute {
		return opts, errors.New("-mute and -unmute are mutually exclusive")
	}
	if opts.level != "" && opts.slot == cutscene.NoSlot {
		return opts, errors.New("-level needs -slot")
	}
	if opts.record == "auto" {
		opts.record = replay.GenerateFilename(opts.cutscene)
	}
	return opts, nil
}

// openData returns a loader over the data directory when given, else over
// the embedded copy.
func openData(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to get data subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "embedded"), nil
}

// AudioPrefs is the part of the settings store the audio flags change
type AudioPrefs interface {
	SetMusicEnabled(enabled bool)
	SetSoundEnabled(enabled bool)
	SetMusicVolume(v float64)
	SetSoundVolume(v float64)
	Save() error
}

// applyAudioFlags stores the audio flags and saves them when any was given
func applyAudioFlags(opts options, prefs AudioPrefs) error {
	changed := false
	if opts.mute || opts.unmute {
		prefs.SetMusicEnabled(opts.unmute)
		prefs.SetSoundEnabled(opts.unmute)
		changed = true
	}
	if opts.musicVolume != keepVolume {
		prefs.SetMusicVolume(opts.musicVolume)
		changed = true
	}
	if opts.soundVolume != keepVolume {
		prefs.SetSoundVolume(opts.soundVolume)
		changed = true
	}
	if !changed {
		return nil
	}
	if err := prefs.Save(); err != nil {
		return fmt.Errorf("failed to save audio settings: %w", err)
	}
	return nil
}

// prepareSlot writes the -level given on the command line into -slot
func prepareSlot(opts options, slots SlotStore, now time.Time) error {
	if opts.level == "" {
		return nil
	}
	sd := &storage.SlotData{Slot: opts.slot, Level: opts.level, SavedAt: now}
	if err := slots.Save(sd); err != nil {
		return err
	}
	log.Printf("[Main] Slot %d set to level %s", opts.slot, opts.level)
	return nil
}

// loadOptionalImage loads art that has a drawn fallback
func loadOptionalImage(images *assets.ImageLoader, path string) *assets.Image {
	if path == "" {
		return nil
	}
	img, err := images.LoadImage(path)
	if err != nil {
		log.Printf("[Main] Using fallback for %s: %v", path, err)
		return nil
	}
	return img
}

func loadFont(fsys fs.FS, cfg config.FontConfig) (*assets.Font, error) {
	if cfg.Caption != "" {
		f, err := assets.LoadFont(fsys, cfg.Caption, cfg.CaptionSize)
		if err == nil {
			return f, nil
		}
		log.Printf("[Main] Falling back to the default font: %v", err)
	}
	return assets.DefaultFont(cfg.CaptionSize)
}

// session is the input source of a run plus the recorder or replayer
// behind it, if any
type session struct {
	input    cutscene.InputSource
	recorder *replay.Recorder
	replayer *replay.Replayer
}

func inputSource(opts options, live cutscene.InputSource) (session, error) {
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return session{}, err
		}
		r := replay.NewReplayer(*data)
		if r.Cutscene() != opts.cutscene {
			log.Printf("[Main] Replay %s was recorded for %s, playing %s", opts.replay, r.Cutscene(), opts.cutscene)
		}
		log.Printf("[Main] Replaying %s (%d ticks)", opts.replay, r.TotalTicks())
		return session{input: r, replayer: r}, nil
	}
	if opts.record != "" {
		rec := replay.NewRecorder(opts.cutscene)
		log.Printf("[Main] Recording enabled: %s", opts.record)
		return session{input: replay.NewRecordingSource(live, rec), recorder: rec}, nil
	}
	return session{input: live}, nil
}

// finish saves the recording or reports how far the replay got
func (s session) finish(opts options) {
	if s.recorder != nil {
		if err := s.recorder.Save(opts.record); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d ticks, %d frames)", opts.record, s.recorder.Ticks(), s.recorder.FrameCount())
		}
	}
	if s.replayer != nil && !s.replayer.Done() {
		log.Printf("Replay stopped at tick %d of %d", s.replayer.CurrentTick(), s.replayer.TotalTicks())
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	loader, err := openData(opts.dataDir)
	if err != nil {
		log.Fatalf("Failed to open data: %v", err)
	}
	fsys := loader.FS()

	cfg, err := loader.LoadEngine()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := i18n.LoadCatalog(fsys, "messages.yaml")
	if err != nil {
		log.Printf("[Main] No messages loaded: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Main] Persistent storage unavailable: %v", err)
		manager = nil
	}
	settings := storage.NewSettingsStore(manager)
	if err := applyAudioFlags(opts, settings); err != nil {
		log.Printf("[Main] %v", err)
	}
	slots := storage.NewSlotStore(manager)
	if err := prepareSlot(opts, slots, time.Now()); err != nil {
		log.Fatalf("Failed to write slot: %v", err)
	}

	mixer := sound.NewMixer(audio.NewContext(cfg.Audio.SampleRate), fsys, settings)
	defer mixer.Close()

	images := assets.NewImageLoader(fsys)
	font, err := loadFont(fsys, cfg.Fonts)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	env := &cutscene.Env{
		ViewW:       cfg.Display.ScreenWidth,
		ViewH:       cfg.Display.ScreenHeight,
		FPS:         cfg.Display.Framerate,
		Images:      images,
		Sounds:      mixer,
		Font:        font,
		NextButton:  loadOptionalImage(images, cfg.Buttons.Next),
		CloseButton: loadOptionalImage(images, cfg.Buttons.Close),
	}

	live := system.NewInputSystem(cfg.Input)
	sess, err := inputSource(opts, live)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}

	seq, err := cutscene.Load(loader, opts.cutscene, catalog, env, sess.input, mixer, nil)
	if err != nil {
		log.Fatalf("Failed to load cutscene: %v", err)
	}

	if seq.WantsMenuBackground() && len(cfg.Menu.Backgrounds) > 0 {
		path := cfg.Menu.Backgrounds[rand.Intn(len(cfg.Menu.Backgrounds))]
		seq.SetMenuBackground(loadOptionalImage(images, path))
	}

	if opts.slot != cutscene.NoSlot {
		seq.ResumeSlot(opts.slot, &slotResumer{
			slots: slots,
			input: sess.input,
			font:  font,
			now:   time.Now,
		})
	}

	g := game.New(seq, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))
	g.SetResizable(cfg.Display.Resizable)
	g.SetScale(cfg.Display.Scale)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Cutscene Player")
	ebiten.SetTPS(cfg.Display.Framerate)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	// Run game
	runErr := ebiten.RunGame(g)

	sess.finish(opts)

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
