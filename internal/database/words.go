package database

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/learnvocab/internal/entities"
)

// Words are listed most recently learned first; id breaks ties so the
// ordering is stable across identical dates.
const wordOrder = "date_learned DESC, id DESC"

// CreateWord inserts a validated word and populates the generated
// id and createdAt fields on the given entity.
func (d *Database) CreateWord(word *entities.Word) error {
	return d.DB.Create(word).Error
}

// GetAllWords returns every word, most recently learned first.
func (d *Database) GetAllWords() ([]entities.Word, error) {
	var words []entities.Word
	err := d.DB.Order(wordOrder).Find(&words).Error
	return words, err
}

// GetWordByID returns the word with the given id, or nil when no such
// row exists.
func (d *Database) GetWordByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := d.DB.First(&word, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// UpdateWord applies only the supplied column values to the word with
// the given id and returns the refreshed record, or nil when no row
// matched.
func (d *Database) UpdateWord(id uint, updates map[string]any) (*entities.Word, error) {
	if len(updates) > 0 {
		result := d.DB.Model(&entities.Word{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}
	return d.GetWordByID(id)
}

// DeleteWord removes the word with the given id and reports whether a
// row was actually deleted.
func (d *Database) DeleteWord(id uint) (bool, error) {
	result := d.DB.Delete(&entities.Word{}, id)
	return result.RowsAffected > 0, result.Error
}

// SearchWords returns words where term appears case-insensitively in
// the word, definition, or example. A missing example matches as an
// empty string. An empty term returns all words.
func (d *Database) SearchWords(term string) ([]entities.Word, error) {
	if term == "" {
		return d.GetAllWords()
	}

	pattern := "%" + term + "%"
	var words []entities.Word
	err := d.DB.
		Where("LOWER(word) LIKE LOWER(?) OR LOWER(definition) LIKE LOWER(?) OR LOWER(COALESCE(example, '')) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order(wordOrder).
		Find(&words).Error
	return words, err
}

// FilterWordsByTag returns words whose tag list contains tag as an
// exact, case-sensitive element. An empty tag returns all words.
//
// Tags persist as a JSON array, so element containment is a
// case-sensitive substring check for the JSON-quoted tag: "tech"
// encodes as `"tech"`, which cannot occur inside `"technology"`.
func (d *Database) FilterWordsByTag(tag string) ([]entities.Word, error) {
	if tag == "" {
		return d.GetAllWords()
	}

	quoted, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}

	var words []entities.Word
	err = d.DB.
		Where("instr(tags, ?) > 0", string(quoted)).
		Order(wordOrder).
		Find(&words).Error
	return words, err
}

// CountWords returns the number of stored words.
func (d *Database) CountWords() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Word{}).Count(&count).Error
	return count, err
}
