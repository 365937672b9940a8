package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/gen/ent/lexiconentry"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/entity"
	"github.com/veridoc/ocr-review/internal/utils"
)

type LexiconRepository interface {
	// Get returns the entry for (misspelled, scope) or common.ErrNotFound.
	Get(ctx context.Context, misspelled, scope string) (*entity.LexiconEntry, error)
	// Upsert inserts with the given initial frequency; an existing entry
	// gets the new corrected text and its frequency incremented by one.
	Upsert(ctx context.Context, misspelled, corrected, scope string, initialFrequency int) (*entity.LexiconEntry, error)
	// Snapshot loads every entry in the given scopes, ordered stably.
	Snapshot(ctx context.Context, scopes []string) ([]entity.LexiconEntry, error)
}

type lexiconRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLexiconRepository(client *ent.Client, logger *slog.Logger) LexiconRepository {
	return &lexiconRepository{
		client: client,
		logger: logger,
	}
}

func (r *lexiconRepository) Get(ctx context.Context, misspelled, scope string) (*entity.LexiconEntry, error) {
	row, err := r.client.LexiconEntry.Query().
		Where(
			lexiconentry.Misspelled(misspelled),
			lexiconentry.Scope(scope),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get lexicon entry", "misspelled", misspelled, "scope", scope, "error", err)
		return nil, err
	}

	entry := utils.ToLexiconEntry(row)
	return &entry, nil
}

func (r *lexiconRepository) Upsert(ctx context.Context, misspelled, corrected, scope string, initialFrequency int) (*entity.LexiconEntry, error) {
	if initialFrequency < 1 {
		initialFrequency = 1
	}

	err := r.client.LexiconEntry.Create().
		SetMisspelled(misspelled).
		SetCorrected(corrected).
		SetScope(scope).
		SetFrequency(initialFrequency).
		OnConflictColumns(lexiconentry.FieldMisspelled, lexiconentry.FieldScope).
		Update(func(u *ent.LexiconEntryUpsert) {
			u.SetCorrected(corrected)
			u.AddFrequency(1)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert lexicon entry", "misspelled", misspelled, "scope", scope, "error", err)
		return nil, err
	}

	return r.Get(ctx, misspelled, scope)
}

func (r *lexiconRepository) Snapshot(ctx context.Context, scopes []string) ([]entity.LexiconEntry, error) {
	if len(scopes) == 0 {
		return nil, nil
	}

	rows, err := r.client.LexiconEntry.Query().
		Where(lexiconentry.ScopeIn(scopes...)).
		Order(lexiconentry.ByScope(), lexiconentry.ByMisspelled()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load lexicon snapshot", "scopes", scopes, "error", err)
		return nil, err
	}

	result := make([]entity.LexiconEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLexiconEntry(row)
	}
	return result, nil
}
