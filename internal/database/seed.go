package database

import (
	"fmt"
	"log"

	"github.com/mrlokans/learnvocab/internal/entities"
)

func example(s string) *string {
	return &s
}

func mustDate(s string) entities.Date {
	d, err := entities.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

var sampleWords = []entities.Word{
	{
		Word:        "Ephemeral",
		Definition:  "Lasting for a very short time; short-lived; transitory.",
		Example:     example("The ephemeral nature of cherry blossoms makes them all the more appreciated."),
		Tags:        entities.StringList{"language", "philosophy"},
		DateLearned: mustDate("2023-06-15"),
	},
	{
		Word:        "Eloquent",
		Definition:  "Fluent or persuasive in speaking or writing; having the power of expression.",
		Example:     example("Her eloquent speech moved the audience to tears."),
		Tags:        entities.StringList{"language", "communication"},
		DateLearned: mustDate("2023-06-17"),
	},
	{
		Word:        "Ubiquitous",
		Definition:  "Present, appearing, or found everywhere; omnipresent.",
		Example:     example("Smartphones have become ubiquitous in modern society."),
		Tags:        entities.StringList{"tech", "language"},
		DateLearned: mustDate("2023-06-20"),
	},
	{
		Word:        "Serendipity",
		Definition:  "The occurrence and development of events by chance in a happy or beneficial way.",
		Example:     example("Finding this book was pure serendipity: I wasn't looking for it, but it's exactly what I needed."),
		Tags:        entities.StringList{"philosophy", "life"},
		DateLearned: mustDate("2023-06-22"),
	},
	{
		Word:        "Algorithm",
		Definition:  "A process or set of rules to be followed in calculations or other problem-solving operations, especially by a computer.",
		Example:     example("The search engine uses a complex algorithm to rank web pages."),
		Tags:        entities.StringList{"tech", "computer science"},
		DateLearned: mustDate("2023-06-25"),
	},
	{
		Word:        "Pragmatic",
		Definition:  "Dealing with things sensibly and realistically in a way that is based on practical considerations.",
		Example:     example("We need a pragmatic approach to solving this problem."),
		Tags:        entities.StringList{"philosophy", "business"},
		DateLearned: mustDate("2023-06-27"),
	},
}

// SeedSampleWords inserts a starter vocabulary when the words table is
// empty, so a fresh install has something to browse. The count check
// and insert are separate statements; two processes cold-starting at
// once could both seed, which is accepted for a single-instance app.
func (d *Database) SeedSampleWords() error {
	count, err := d.CountWords()
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}
	if count > 0 {
		log.Printf("Database already has %d words, skipping seed", count)
		return nil
	}

	words := make([]entities.Word, len(sampleWords))
	copy(words, sampleWords)

	if err := d.DB.Create(&words).Error; err != nil {
		return fmt.Errorf("failed to seed sample words: %w", err)
	}

	log.Printf("Seeded %d sample words", len(words))
	return nil
}
