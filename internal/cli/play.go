package cli

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tombs/assets"
	"tombs/internal/config"
	"tombs/internal/game"
	"tombs/internal/generate"
	"tombs/internal/logger"
	"tombs/internal/render"
)

const noSaveWidth = 24

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	logger.Init(cfg.Log.Level, cfg.Log.Format, logFile)

	tables, err := assets.LoadSpawnTables()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	return playOn(screen, options(cfg, cfg.SavePath()), tables, newRand(cfg.Seed))
}

// playOn runs the main menu loop on screen until the player quits.
func playOn(screen tcell.Screen, opts game.Options, tables *generate.SpawnTables, rng *rand.Rand) error {
	r := render.New(screen)
	for {
		var (
			g   *game.Game
			err error
		)
		switch r.MainMenu() {
		case render.ChoiceNewGame:
			g, err = game.New(opts, tables, rng, r)
			if err != nil {
				return err
			}
		case render.ChoiceContinue:
			g, err = game.Load(opts, tables, rng, r)
			if err != nil {
				logger.Log.WithError(err).WithField("path", opts.SavePath).Warn("cannot continue")
				r.ShowMessage("\nNo saved game to load.\n", noSaveWidth)
				continue
			}
		default:
			return nil
		}
		if err := g.Run(r); err != nil {
			return err
		}
	}
}

// options maps the configuration onto game settings saving to savePath.
func options(cfg config.Config, savePath string) game.Options {
	return game.Options{
		MapWidth:    cfg.Map.Width,
		MapHeight:   cfg.Map.Height,
		RoomMinSize: cfg.Rooms.MinSize,
		RoomMaxSize: cfg.Rooms.MaxSize,
		MaxRooms:    cfg.Rooms.Max,
		FOVRadius:   cfg.FOV.Radius,
		SavePath:    savePath,
		RunLogDir:   filepath.Dir(savePath),
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Log.WithFields(logrus.Fields{"seed": seed}).Debug("random source")
	return rand.New(rand.NewSource(seed))
}
