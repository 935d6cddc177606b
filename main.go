// mengya is a short exploration game played in the terminal. Walk the
// school at night, collect one keepsake per room and leave through the
// dormitory gate.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mengya/internal/audio"
	"mengya/internal/config"
	"mengya/internal/game"
	"mengya/internal/level"
	"mengya/internal/settings"

	"github.com/gdamore/tcell/v2"
)

// LogFile receives the game log; the terminal belongs to the screen.
const LogFile = "mengya.log"

func main() {
	dataFlag := flag.String("data", "", "Directory for preferences and logs (default: XDG data dir)")
	cfgFlag := flag.String("config", "", "Path to the JSON settings file (default: <data>/"+config.FileName+")")
	start := flag.Int("level", 0, "Level to start on")
	flag.Parse()

	if err := run(*dataFlag, *cfgFlag, level.ID(*start)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataDir, cfgPath string, start level.ID) error {
	if !start.Valid() {
		return fmt.Errorf("no level %d", int(start))
	}
	if dataDir == "" {
		var err error
		if dataDir, err = settings.DataDir(); err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(filepath.Join(dataDir, LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	lg := log.New(f, "", log.LstdFlags)

	if cfgPath == "" {
		cfgPath = filepath.Join(dataDir, config.FileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		lg.Printf("config: %v (using defaults)", err)
	}

	prefs, err := settings.OpenPrefs(filepath.Join(dataDir, settings.PrefsFile))
	if err != nil {
		lg.Printf("prefs: %v (volume will not be saved)", err)
		prefs = nil
	} else {
		defer prefs.Close()
	}

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		mixer := audio.NewMixer()
		if err := mixer.Start(); err != nil {
			lg.Printf("audio: %v (playing silent)", err)
		} else {
			defer mixer.Close()
			sounds = mixer
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	g := game.New(screen, game.Options{
		Config:  cfg,
		Prefs:   prefs,
		Sounds:  sounds,
		DataDir: dataDir,
		Logger:  lg,
		Player:  os.Getenv("USER"),
		Start:   start,
	})
	return g.Run(context.Background())
}
