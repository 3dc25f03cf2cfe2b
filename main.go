package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/padchat/command"
	"github.com/automoto/padchat/config"
	"github.com/automoto/padchat/scenes"
	"github.com/automoto/padchat/systems"
	"github.com/automoto/padchat/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.Window.Width, config.Window.Height
}

func main() {
	exportPath := flag.String("export-telemetry", "", "Write telemetry counters as JSON to this file and exit")
	envFile := flag.String("env", "", "Load configuration from this .env file instead of ./.env")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	c, err := config.Load(files...)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize persistence; counters stay in memory without it
	_ = systems.InitPersistence(c.AppName)
	recorder := telemetry.NewRecorder(systems.TelemetryStore())
	recorder.SetListener(telemetry.LogListener)
	if !c.TelemetryEnabled {
		recorder.Disable()
	}

	if *exportPath != "" {
		if err := exportTelemetry(recorder, *exportPath); err != nil {
			log.Fatalf("Failed to export telemetry: %v", err)
		}
		log.Printf("[telemetry] exported to %s", *exportPath)
		return
	}

	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	// Keep polling while another window has focus
	ebiten.SetRunnableOnUnfocused(true)

	log.Printf("[plugin] start gamepad=%d dead=%.2f/%.2f active=%.2f/%.2f",
		c.GamepadIndex, c.Left.Dead, c.Right.Dead, c.Left.Active, c.Right.Active)

	scene := scenes.NewRelayScene(c, command.LogSender{}, recorder)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}

func exportTelemetry(recorder *telemetry.Recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return recorder.Export(f)
}
