package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/recipe"
)

// CreateRecipe persists a recipe with its preparations and assigns their
// identities. Used by seeding and recipe-book maintenance.
func (s *Store) CreateRecipe(ctx context.Context, r *recipe.Recipe) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO recipes (name, description) VALUES (?, ?)", r.Name(), r.Description())
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("recipe id: %w", err)
	}
	r.SetID(id)
	for pos, prep := range r.Preparations() {
		res, err := s.db.ExecContext(ctx,
			"INSERT INTO preparations (recipe_id, name, description, position) VALUES (?, ?, ?, ?)",
			id, prep.Name(), prep.Description(), pos)
		if err != nil {
			return fmt.Errorf("insert preparation: %w", err)
		}
		prepID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("preparation id: %w", err)
		}
		prep.SetID(prepID)
	}
	return nil
}

// LoadRecipe reconstructs a recipe with its preparations, nil when absent.
func (s *Store) LoadRecipe(ctx context.Context, id int64) (*recipe.Recipe, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM recipes WHERE id = ?", id)
	var recID int64
	var name, description string
	if err := row.Scan(&recID, &name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan recipe: %w", err)
	}

	r := recipe.NewRecipe(name)
	r.SetID(recID)
	r.SetDescription(description)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description FROM preparations WHERE recipe_id = ? ORDER BY position", recID)
	if err != nil {
		return nil, fmt.Errorf("query preparations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var prepID int64
		var prepName, prepDesc string
		if err := rows.Scan(&prepID, &prepName, &prepDesc); err != nil {
			return nil, fmt.Errorf("scan preparation: %w", err)
		}
		prep := recipe.NewPreparation(prepName)
		prep.SetID(prepID)
		prep.SetDescription(prepDesc)
		r.AddPreparation(prep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preparations: %w", err)
	}
	return r, nil
}

// LoadAllRecipes reconstructs the full recipe book ordered by name.
func (s *Store) LoadAllRecipes(ctx context.Context) ([]*recipe.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM recipes ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("query recipes: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan recipe id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(ids))
	for _, id := range ids {
		r, err := s.LoadRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		if r != nil {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// loadPreparation reconstructs a single preparation step, nil when absent.
// Summary-sheet tasks reference preparations directly, outside any recipe.
func (s *Store) loadPreparation(ctx context.Context, id int64) (*recipe.Preparation, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM preparations WHERE id = ?", id)
	var prepID int64
	var name, description string
	if err := row.Scan(&prepID, &name, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan preparation: %w", err)
	}
	prep := recipe.NewPreparation(name)
	prep.SetID(prepID)
	prep.SetDescription(description)
	return prep, nil
}
