// Package repository contains the postgres implementations of the
// repository interfaces the services are composed with.
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/lingoproject/lingoquiz/internal/domain/entities"
	"github.com/lingoproject/lingoquiz/internal/infra/postgres"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// EntryRepository provides read-only access to dictionary entries.
// This core never mutates entries; they are owned by the content store.
type EntryRepository struct {
	db postgres.DBTX
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db postgres.DBTX) *EntryRepository {
	return &EntryRepository{db: db}
}

// Query returns entries matching the optional filters, with translations
// and examples attached in list order. An empty languageCode or unset
// category leaves that dimension unfiltered.
func (r *EntryRepository) Query(
	ctx context.Context,
	languageCode string,
	category entities.Category,
) ([]*entities.Entry, error) {
	builder := psql.
		Select("id", "term", "language_code", "region_code", "category",
			"meaning_en", "meaning_es", "notes").
		From("entries").
		OrderBy("id")

	if languageCode != "" {
		builder = builder.Where(squirrel.Eq{"language_code": languageCode})
	}
	if category != entities.CategoryUnset {
		builder = builder.Where(squirrel.Eq{"category": string(category)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build entries query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var result []*entities.Entry
	byID := make(map[int64]*entities.Entry)

	for rows.Next() {
		var (
			entry      entities.Entry
			regionCode *string
			category   *string
			meaningEN  *string
			meaningES  *string
			notes      *string
		)

		if err := rows.Scan(
			&entry.ID,
			&entry.Term,
			&entry.LanguageCode,
			&regionCode,
			&category,
			&meaningEN,
			&meaningES,
			&notes,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}

		if regionCode != nil {
			entry.RegionCode = *regionCode
		}
		if category != nil {
			entry.Category = entities.ParseCategory(*category)
		}
		if notes != nil {
			entry.Notes = *notes
		}

		entry.Meanings = make(map[string]string, 2)
		if meaningEN != nil && *meaningEN != "" {
			entry.Meanings["en"] = *meaningEN
		}
		if meaningES != nil && *meaningES != "" {
			entry.Meanings["es"] = *meaningES
		}

		result = append(result, &entry)
		byID[entry.ID] = &entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	if len(result) == 0 {
		return result, nil
	}

	ids := make([]int64, 0, len(result))
	for _, entry := range result {
		ids = append(ids, entry.ID)
	}

	if err := r.attachTranslations(ctx, byID, ids); err != nil {
		return nil, err
	}
	if err := r.attachExamples(ctx, byID, ids); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *EntryRepository) attachTranslations(
	ctx context.Context,
	byID map[int64]*entities.Entry,
	ids []int64,
) error {
	query := `
		SELECT entry_id, target_language_code, translation, COALESCE(literal_translation, '')
		FROM translations
		WHERE entry_id = ANY($1::int8[])
		ORDER BY entry_id, position
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID     int64
			translation entities.Translation
		)
		if err := rows.Scan(
			&entryID,
			&translation.TargetLanguageCode,
			&translation.Text,
			&translation.LiteralText,
		); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}

		if entry, ok := byID[entryID]; ok {
			entry.Translations = append(entry.Translations, translation)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate translations: %w", err)
	}
	return nil
}

func (r *EntryRepository) attachExamples(
	ctx context.Context,
	byID map[int64]*entities.Entry,
	ids []int64,
) error {
	query := `
		SELECT entry_id, sentence, language_code, COALESCE(translation, '')
		FROM examples
		WHERE entry_id = ANY($1::int8[])
		ORDER BY entry_id, id
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("query examples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID int64
			example entities.Example
		)
		if err := rows.Scan(
			&entryID,
			&example.Sentence,
			&example.LanguageCode,
			&example.Translation,
		); err != nil {
			return fmt.Errorf("scan example: %w", err)
		}

		if entry, ok := byID[entryID]; ok {
			entry.Examples = append(entry.Examples, example)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate examples: %w", err)
	}
	return nil
}
