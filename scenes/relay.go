package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/padchat/command"
	cfg "github.com/automoto/padchat/config"
	"github.com/automoto/padchat/systems"
	"github.com/automoto/padchat/systems/factory"
	"github.com/automoto/padchat/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RelayScene polls the gamepad and relays its commands
type RelayScene struct {
	ecs      *ecs.ECS
	config   cfg.Config
	sender   command.Sender
	recorder *telemetry.Recorder
	once     sync.Once
}

// NewRelayScene creates a new relay scene
func NewRelayScene(c cfg.Config, sender command.Sender, recorder *telemetry.Recorder) *RelayScene {
	return &RelayScene{
		config:   c,
		sender:   sender,
		recorder: recorder,
	}
}

func (rs *RelayScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RelayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
}

func (rs *RelayScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())

	sampler := systems.NewEbitenSampler(rs.config.GamepadIndex, rs.config.InvertY)
	factory.CreateController(rs.ecs, rs.config.Engine(), sampler)
	factory.CreateRelay(rs.ecs,
		command.NewRelay(rs.sender, rs.config.DropFirstCommand, rs.config.Randomize),
		rs.recorder,
	)

	// Order matters: sample, then dispatch, then count
	rs.ecs.AddSystem(systems.UpdateController)
	rs.ecs.AddSystem(systems.NewUpdateDispatch(rs.config))
	rs.ecs.AddSystem(systems.UpdateTelemetry)
	rs.ecs.AddSystem(systems.UpdateStatus)
}
