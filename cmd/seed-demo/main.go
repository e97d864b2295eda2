package main

import (
	"errors"

	"github.com/alimostafaali30/audiolearn/internal/config"
	"github.com/alimostafaali30/audiolearn/internal/logger"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/spf13/pflag"
)

// demoQuestions is a small general-knowledge set for trying the platform
// without authoring content first.
var demoQuestions = []model.Question{
	{
		Text:          "What is the capital of France?",
		Options:       [4]string{"London", "Paris", "Berlin", "Madrid"},
		CorrectOption: 1,
	},
	{
		Text:          "How many continents are there?",
		Options:       [4]string{"Five", "Six", "Seven", "Eight"},
		CorrectOption: 2,
	},
	{
		Text:          "Which planet is known as the Red Planet?",
		Options:       [4]string{"Venus", "Jupiter", "Saturn", "Mars"},
		CorrectOption: 3,
	},
	{
		Text:          "What is two plus two?",
		Options:       [4]string{"Four", "Three", "Five", "Six"},
		CorrectOption: 0,
	},
	{
		Text:          "Which ocean is the largest?",
		Options:       [4]string{"Atlantic", "Pacific", "Indian", "Arctic"},
		CorrectOption: 1,
	},
}

func main() {
	dataFile := pflag.String("data", "", "path to the data file (overrides DATA_FILE)")
	subject := pflag.String("subject", "General Knowledge", "name of the demo subject")
	perTest := pflag.Int("per-test", 3, "questions drawn per test")
	student := pflag.String("student", "demo", "demo student username to create")
	pflag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("data_file", cfg.DataFile).Msg("Seeding demo data")

	// ─── Seed ──────────────────────────────────────────────────────────
	st, err := store.OpenFileStore(cfg.DataFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open data file")
	}

	sub, err := st.AddSubject(*subject, store.DefaultAdminUsername, *perTest)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create demo subject")
	}
	for _, q := range demoQuestions {
		if _, err := st.AddQuestion(sub.ID, q); err != nil {
			log.Fatal().Err(err).Str("question", q.Text).Msg("Failed to add demo question")
		}
	}

	if err := st.PutUser(model.User{
		Username: *student,
		Password: "demo1234",
		Role:     model.RoleStudent,
	}); err != nil && !errors.Is(err, store.ErrExists) {
		log.Fatal().Err(err).Msg("Failed to create demo student")
	}

	log.Info().
		Str("subject_id", sub.ID).
		Int("questions", len(demoQuestions)).
		Str("student", *student).
		Msg("Demo data seeded")
}
