// Screen Saver Launcher starts the screen saver from the tray, its window or a
// global hotkey (⌘⌥+S by default).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"screensaver-launcher/internal/app"
	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/hotkey"
	"screensaver-launcher/internal/launcher"
	"screensaver-launcher/internal/log"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	envConfig   = "SSL_CONFIG"
	envLogLevel = "SSL_LOG_LEVEL"
)

func main() {
	var (
		configPath  string
		launchOnce  bool
		logDir      string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "path to config file (env "+envConfig+")")
	flag.BoolVar(&launchOnce, "launch", false, "start the screen saver once and exit")
	flag.StringVar(&logDir, "log-dir", "", "directory for the log file (env SSL_LOG_DIR)")
	flag.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env "+envLogLevel+")")
	flag.BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("screensaver-launcher", Version)
		return
	}

	// .env is optional
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv(envConfig)
	}
	if logLevel == "" {
		logLevel = os.Getenv(envLogLevel)
	}

	if err := setupLogging(logDir, logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "screensaver-launcher: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Infof("Screen Saver Launcher %s starting", Version)
	cfg := config.New(configPath)
	log.Infof("config: %s", cfg.Path())

	if launchOnce {
		if err := launch(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "screensaver-launcher: %v\n", err)
			log.Close()
			os.Exit(1)
		}
		return
	}

	// macOS needs the event loop on the main thread
	hotkey.RunOnMainThread(func() { run(cfg) })
}

func setupLogging(flagDir, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	dir, err := log.ResolveDir(flagDir)
	if err != nil {
		return err
	}
	return log.Init(dir, lvl)
}

// launch is the one-shot CLI path.
func launch(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := launcher.New(launcher.Resolve(cfg.Command())).Launch(ctx)
	log.Launch(app.TriggerCLI, err)
	return err
}

func run(cfg *config.Config) {
	application := app.New(cfg, app.Options{Version: Version})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Infof("received %s, shutting down", sig)
		application.Quit()
	}()

	application.Run()
	log.Info("Screen Saver Launcher stopped")
}
