package main

import (
	"io"
	"os"

	"github.com/alimostafaali30/audiolearn/internal/app"
	"github.com/alimostafaali30/audiolearn/internal/config"
	"github.com/alimostafaali30/audiolearn/internal/logger"
	"github.com/alimostafaali30/audiolearn/internal/speech"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/alimostafaali30/audiolearn/internal/ui"
	"github.com/alimostafaali30/audiolearn/internal/validator"
	"github.com/spf13/pflag"
)

func main() {
	dataFile := pflag.String("data", "", "path to the data file (overrides DATA_FILE)")
	lang := pflag.String("lang", "", "startup language, en or ar (overrides LANG_CODE)")
	theme := pflag.String("theme", "", "terminal theme, light or dark (overrides THEME)")
	reset := pflag.Bool("reset", false, "clear all stored data and reseed the default teacher")
	noSpeech := pflag.Bool("no-speech", false, "run without voice input")
	pflag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *lang != "" {
		cfg.Lang = *lang
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("data_file", cfg.DataFile).
		Str("lang", cfg.Lang).
		Str("log_level", cfg.LogLevel).
		Msg("Starting AudioLearn")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Open Store ────────────────────────────────────────────────────
	// A missing data file means a first run, which gets the tutorial.
	_, statErr := os.Stat(cfg.DataFile)
	firstRun := os.IsNotExist(statErr)

	st, err := store.OpenFileStore(cfg.DataFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data file")
	}
	if *reset {
		if err := st.Reset(); err != nil {
			log.Fatal().Err(err).Msg("Failed to reset data file")
		}
		log.Info().Msg("Data file reset")
	}

	// ─── Speech Devices ────────────────────────────────────────────────
	var (
		rec     speech.Recognizer
		micFeed io.Writer = io.Discard
	)
	if !*noSpeech {
		pr, pw := io.Pipe()
		rec = speech.NewConsoleRecognizer(pr)
		micFeed = pw
	}
	synth := speech.NewConsoleSynthesizer(os.Stdout, cfg.SpeechRate)

	// ─── Terminal ──────────────────────────────────────────────────────
	term := ui.NewTerminal(os.Stdin, os.Stdout)
	if err := term.Raw(); err != nil {
		log.Fatal().Err(err).Msg("Failed to configure terminal")
	}
	defer term.Restore()

	// ─── Run ───────────────────────────────────────────────────────────
	a := app.New(cfg, st, app.Options{
		Terminal:   term,
		Recognizer: rec,
		Synth:      synth,
		MicFeed:    micFeed,
		FirstRun:   firstRun,
	}, log)

	if err := a.Run(); err != nil {
		term.Restore()
		log.Fatal().Err(err).Msg("Application error")
	}
}
