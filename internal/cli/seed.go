package cli

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"math/big"

	"quiz-catalog-service/internal/config"
	"quiz-catalog-service/internal/domain"
	pgstore "quiz-catalog-service/internal/infra/postgres"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
)

// NewSeedCmd fills the catalog with sample data for local development.
func NewSeedCmd(configPath *string) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the catalog with sample quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, count)
		},
	}
	cmd.Flags().IntVar(&count, "count", 50, "number of random quizzes to create")
	return cmd
}

func runSeed(ctx context.Context, configPath string, count int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()
	store := pgstore.NewQuizStore(pool)

	quizzes, questions := sampleCatalog()
	for i := 0; i < count; i++ {
		quizzes = append(quizzes, randomQuiz())
	}

	for _, quiz := range quizzes {
		if err := store.InsertQuiz(ctx, quiz); err != nil {
			return err
		}
	}
	for _, q := range questions {
		if err := store.InsertQuestion(ctx, q); err != nil {
			return err
		}
	}
	log.Printf("seeded %d quizzes", len(quizzes))
	return nil
}

var seedTopics = []string{
	"JavaScript", "Go", "Python", "SQL", "HTML", "CSS", "Networking",
	"Algorithms", "Data Structures", "Linux", "Git", "Docker",
}

var seedFormats = []string{"Basics", "Fundamentals", "Deep Dive", "Trivia", "Interview Prep"}

// randomQuiz builds a catalog entry with a fresh 24-hex id, a topic-based
// name, and a random difficulty. Seeded quizzes carry no questions; they
// exist to exercise search and pagination.
func randomQuiz() domain.Quiz {
	topic := seedTopics[randomInt(len(seedTopics))]
	format := seedFormats[randomInt(len(seedFormats))]
	difficulty := domain.Difficulties[randomInt(len(domain.Difficulties))]
	return domain.Quiz{
		ID:         newQuizID(),
		Name:       topic + " " + format,
		Difficulty: difficulty,
		Length:     5 + randomInt(16),
		Tags:       []string{topic, format},
	}
}

func newQuizID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func randomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}
