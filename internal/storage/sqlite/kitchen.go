package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mportesi/catering/internal/kitchen"
	"github.com/mportesi/catering/internal/recipe"
)

// SheetGenerated inserts the sheet with its derived task list and assigns
// identities to the sheet and its tasks.
func (s *Store) SheetGenerated(ctx context.Context, sh *kitchen.SummarySheet) error {
	var serviceID, ownerID int64
	if sh.Service() != nil {
		serviceID = sh.Service().ID()
	}
	if sh.Owner() != nil {
		ownerID = sh.Owner().ID()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO summary_sheets (service_id, owner_id) VALUES (?, ?)", serviceID, ownerID)
	if err != nil {
		return fmt.Errorf("insert sheet: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sheet id: %w", err)
	}
	sh.SetID(id)

	for pos, t := range sh.Tasks() {
		if err := s.insertTask(ctx, sh, t, pos); err != nil {
			return err
		}
	}
	for _, a := range sh.Assignments() {
		if err := s.insertAssignment(ctx, sh, a); err != nil {
			return err
		}
	}
	return nil
}

// TaskAdded inserts the new task and assigns its identity.
func (s *Store) TaskAdded(ctx context.Context, sh *kitchen.SummarySheet, t *kitchen.KitchenTask) error {
	return s.insertTask(ctx, sh, t, sh.TaskPosition(t))
}

// TasksReordered rewrites stored task positions from the sheet.
func (s *Store) TasksReordered(ctx context.Context, sh *kitchen.SummarySheet) error {
	for pos, t := range sh.Tasks() {
		if _, err := s.db.ExecContext(ctx,
			"UPDATE tasks SET position = ? WHERE id = ?", pos, t.ID()); err != nil {
			return fmt.Errorf("update task position: %w", err)
		}
	}
	return nil
}

// TaskChanged updates the stored task info.
func (s *Store) TaskChanged(ctx context.Context, t *kitchen.KitchenTask) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET description = ?, quantity = ?, portions = ?, ready = ? WHERE id = ?",
		t.Description(), t.Quantity(), t.Portions(), boolInt(t.Ready()), t.ID()); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// AssignmentAdded inserts the new assignment and assigns its identity.
func (s *Store) AssignmentAdded(ctx context.Context, sh *kitchen.SummarySheet, a *kitchen.Assignment) error {
	return s.insertAssignment(ctx, sh, a)
}

// AssignmentChanged updates the stored shift and cook.
func (s *Store) AssignmentChanged(ctx context.Context, a *kitchen.Assignment) error {
	var shiftID, cookID int64
	if a.Shift() != nil {
		shiftID = a.Shift().ID()
	}
	if a.Cook() != nil {
		cookID = a.Cook().ID()
	}
	if _, err := s.db.ExecContext(ctx,
		"UPDATE assignments SET shift_id = ?, cook_id = ? WHERE id = ?",
		shiftID, cookID, a.ID()); err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// AssignmentDeleted removes the stored assignment.
func (s *Store) AssignmentDeleted(ctx context.Context, a *kitchen.Assignment) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM assignments WHERE id = ?", a.ID()); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return nil
}

// LoadSheet reconstructs a sheet with its tasks and assignments, nil when
// absent.
func (s *Store) LoadSheet(ctx context.Context, id int64) (*kitchen.SummarySheet, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, service_id, owner_id FROM summary_sheets WHERE id = ?", id)
	var sheetID, serviceID, ownerID int64
	if err := row.Scan(&sheetID, &serviceID, &ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan sheet: %w", err)
	}

	svc, err := s.loadService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	owner, err := s.LoadUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	tasks, taskByID, err := s.loadTasks(ctx, sheetID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.loadAssignments(ctx, sheetID, taskByID)
	if err != nil {
		return nil, err
	}
	return kitchen.Restore(sheetID, svc, owner, tasks, assignments), nil
}

// LoadSheetsByService reconstructs every sheet generated for one service.
func (s *Store) LoadSheetsByService(ctx context.Context, serviceID int64) ([]*kitchen.SummarySheet, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM summary_sheets WHERE service_id = ? ORDER BY id", serviceID)
	if err != nil {
		return nil, fmt.Errorf("query sheets: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan sheet id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sheets: %w", err)
	}

	sheets := make([]*kitchen.SummarySheet, 0, len(ids))
	for _, id := range ids {
		sh, err := s.LoadSheet(ctx, id)
		if err != nil {
			return nil, err
		}
		if sh != nil {
			sheets = append(sheets, sh)
		}
	}
	return sheets, nil
}

func (s *Store) insertTask(ctx context.Context, sh *kitchen.SummarySheet, t *kitchen.KitchenTask, position int) error {
	var processID int64
	isRecipe := true
	if p := t.Process(); p != nil {
		processID = p.ID()
		isRecipe = p.IsRecipe()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (sheet_id, process_id, process_is_recipe, description, quantity, portions, ready, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		sh.ID(), processID, boolInt(isRecipe), t.Description(), t.Quantity(), t.Portions(), boolInt(t.Ready()), position)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	t.SetID(id)
	return nil
}

func (s *Store) insertAssignment(ctx context.Context, sh *kitchen.SummarySheet, a *kitchen.Assignment) error {
	var taskID, shiftID, cookID int64
	if a.Task() != nil {
		taskID = a.Task().ID()
	}
	if a.Shift() != nil {
		shiftID = a.Shift().ID()
	}
	if a.Cook() != nil {
		cookID = a.Cook().ID()
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO assignments (sheet_id, task_id, shift_id, cook_id) VALUES (?, ?, ?, ?)",
		sh.ID(), taskID, shiftID, cookID)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("assignment id: %w", err)
	}
	a.SetID(id)
	return nil
}

func (s *Store) loadTasks(ctx context.Context, sheetID int64) ([]*kitchen.KitchenTask, map[int64]*kitchen.KitchenTask, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, process_id, process_is_recipe, description, quantity, portions, ready FROM tasks WHERE sheet_id = ? ORDER BY position, id",
		sheetID)
	if err != nil {
		return nil, nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	type taskRow struct {
		id        int64
		processID int64
		isRecipe  int
		desc      string
		quantity  int
		portions  int
		ready     int
	}
	var taskRows []taskRow
	for rows.Next() {
		var tr taskRow
		if err := rows.Scan(&tr.id, &tr.processID, &tr.isRecipe, &tr.desc, &tr.quantity, &tr.portions, &tr.ready); err != nil {
			return nil, nil, fmt.Errorf("scan task: %w", err)
		}
		taskRows = append(taskRows, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate tasks: %w", err)
	}

	tasks := make([]*kitchen.KitchenTask, 0, len(taskRows))
	taskByID := make(map[int64]*kitchen.KitchenTask, len(taskRows))
	for _, tr := range taskRows {
		var process recipe.Process
		if tr.processID > 0 {
			if tr.isRecipe != 0 {
				rec, err := s.LoadRecipe(ctx, tr.processID)
				if err != nil {
					return nil, nil, err
				}
				if rec != nil {
					process = rec
				}
			} else {
				prep, err := s.loadPreparation(ctx, tr.processID)
				if err != nil {
					return nil, nil, err
				}
				if prep != nil {
					process = prep
				}
			}
		}
		t := kitchen.NewTask(process, tr.desc)
		t.SetID(tr.id)
		t.SetQuantity(tr.quantity)
		t.SetPortions(tr.portions)
		if tr.ready != 0 {
			t.SetReady()
		}
		tasks = append(tasks, t)
		taskByID[tr.id] = t
	}
	return tasks, taskByID, nil
}

func (s *Store) loadAssignments(ctx context.Context, sheetID int64, taskByID map[int64]*kitchen.KitchenTask) ([]*kitchen.Assignment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, task_id, shift_id, cook_id FROM assignments WHERE sheet_id = ? ORDER BY id", sheetID)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	type assignmentRow struct {
		id      int64
		taskID  int64
		shiftID int64
		cookID  int64
	}
	var assignmentRows []assignmentRow
	for rows.Next() {
		var ar assignmentRow
		if err := rows.Scan(&ar.id, &ar.taskID, &ar.shiftID, &ar.cookID); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignmentRows = append(assignmentRows, ar)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}

	assignments := make([]*kitchen.Assignment, 0, len(assignmentRows))
	for _, ar := range assignmentRows {
		sh, err := s.LoadShift(ctx, ar.shiftID)
		if err != nil {
			return nil, err
		}
		cook, err := s.loadOptionalUser(ctx, ar.cookID)
		if err != nil {
			return nil, err
		}
		a := kitchen.NewAssignment(taskByID[ar.taskID], sh, cook)
		a.SetID(ar.id)
		assignments = append(assignments, a)
	}
	return assignments, nil
}
