package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/air-hockey/audio"
	"github.com/lixenwraith/air-hockey/config"
	"github.com/lixenwraith/air-hockey/engine"
	"github.com/lixenwraith/air-hockey/game"
	"github.com/lixenwraith/air-hockey/logging"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "air-hockey",
		Short:         "Terminal air hockey against an AI paddle",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, viper.New(), cfgFile)
			if err != nil {
				return err
			}
			return play(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./air-hockey.toml)")
	flags.StringP("difficulty", "d", "", "starting AI difficulty: easy, medium, hard")
	flags.Uint64("seed", 0, "serve randomization seed, 0 for time-based")
	flags.String("collision", "", "paddle collision model: push, specular")
	flags.Bool("mute", false, "start with audio muted")
	flags.Bool("debug", false, "write logs to the log directory")

	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	return cmd
}

// loadConfig binds flags over file and env settings and decodes the result
func loadConfig(cmd *cobra.Command, v *viper.Viper, path string) (*config.Config, error) {
	flags := cmd.Flags()
	bindings := map[string]string{
		"game.difficulty":         "difficulty",
		"game.seed":               "seed",
		"physics.collision_model": "collision",
		"log.debug":               "debug",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(v, path)
	if err != nil {
		return nil, err
	}

	if mute, _ := flags.GetBool("mute"); mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func play(cmd *cobra.Command, cfg *config.Config) error {
	logger, closeLog, err := logging.New(logging.Options{
		Debug: cfg.Log.Debug,
		Level: cfg.Log.Level,
		Dir:   cfg.Log.Dir,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting air-hockey", zap.String("version", Version))

	sim, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:       cfg.Audio.Enabled,
		Music:         cfg.Audio.Music,
		MasterVolume:  cfg.Audio.MasterVolume,
		SampleRate:    cfg.Audio.SampleRate,
		EffectVolumes: audio.DefaultAudioConfig().EffectVolumes,
	})
	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			logger.Warn("audio initialization failed", zap.Error(err))
		}
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			logger.Error("crashed", zap.Any("panic", r))
			_ = logger.Sync()
			game.HandleCrash(screen, r)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(sim, screen, game.Options{
		TickInterval: cfg.Game.TickInterval,
		Audio:        sounds,
		Muted:        !cfg.Audio.Enabled,
		Logger:       logger,
	})
	return g.Run(ctx)
}

func newSimulation(cfg *config.Config) (*engine.Simulation, error) {
	difficulty, err := cfg.DifficultyLevel()
	if err != nil {
		return nil, err
	}
	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}

	opts := []engine.Option{
		engine.WithDifficulty(difficulty),
		engine.WithResolver(resolver),
	}
	if cfg.Game.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Game.Seed))
	}
	return engine.New(cfg.CoreTable(), opts...)
}
