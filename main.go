package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"mazerun/pkg/game/audio"
	"mazerun/pkg/game/config"
	"mazerun/pkg/game/gameplay"
	"mazerun/pkg/game/locale"
	"mazerun/pkg/game/renderer"
	ebitenRenderer "mazerun/pkg/game/renderer/ebiten"
	"mazerun/pkg/game/renderer/tui"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use: ebiten or tui")
	flag.StringVar(&cfg.Language, "lang", cfg.Language, "interface language (fr, en)")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding img/ and Audio/")
	flag.StringVar(&cfg.DumpPath, "dump", cfg.DumpPath, "file written by F9")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed, 0 for a new maze every time (for developer testing)")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "start the window fullscreen")
	flag.BoolVar(&cfg.AudioEnabled, "audio", cfg.AudioEnabled, "play music")
	flag.DurationVar(&cfg.MoveCooldown, "cooldown", cfg.MoveCooldown, "minimum time between two moves")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration: %v", err)
	}

	if err := locale.Load(cfg.Language); err != nil {
		log.Printf("Cannot load language %q, using %s: %v", cfg.Language, locale.DefaultLanguage, err)
		if err := locale.Load(locale.DefaultLanguage); err != nil {
			log.Fatalf("Cannot load default language: %v", err)
		}
	}

	jukebox := audio.NewJukebox(cfg.AssetDir, cfg.MusicVolume, cfg.AudioEnabled)
	defer jukebox.Close()

	settings := gameplay.Settings{
		ScreenWidth:   cfg.WindowWidth,
		ScreenHeight:  cfg.WindowHeight,
		Cooldown:      cfg.MoveCooldown,
		Seed:          cfg.Seed,
		DumpPath:      cfg.DumpPath,
		ScreenshotDir: filepath.Dir(cfg.DumpPath),
	}

	switch cfg.Renderer {
	case config.RendererTUI:
		renderer.SetRenderer(tui.New(settings, jukebox))
	default:
		renderer.SetRenderer(ebitenRenderer.New(ebitenRenderer.Options{
			AssetDir:     cfg.AssetDir,
			Fullscreen:   cfg.Fullscreen,
			WindowWidth:  cfg.WindowWidth,
			WindowHeight: cfg.WindowHeight,
			TPS:          cfg.TPS,
		}, settings, jukebox))
	}

	if err := run(renderer.Current); err != nil {
		log.Printf("Game stopped: %v", err)
		jukebox.Close()
		os.Exit(1)
	}
	log.Printf("Bye")
}

func run(r renderer.Renderer) error {
	if err := r.Init(); err != nil {
		return err
	}
	defer r.Close()
	return r.Run()
}
