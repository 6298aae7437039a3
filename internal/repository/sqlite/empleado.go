package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmarquezl/aurora-rrhh/internal/domain"
	"github.com/google/uuid"
)

// EmpleadoRepository implements domain.EmpleadoRepository using SQLite.
type EmpleadoRepository struct {
	db *sql.DB
}

// Create inserts a new employee record. The repository assigns the opaque
// identifier and both timestamps; the caller's struct is updated in place.
func (r *EmpleadoRepository) Create(ctx context.Context, e *domain.Empleado) error {
	now := time.Now().UTC()
	id := uuid.NewString()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO empleados (id, nombre, apellido, email, puesto, departamento,
		 fecha_contratacion, salario, tipo_salario, moneda, telefono, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Nombre, e.Apellido, e.Email, e.Puesto, e.Departamento,
		e.FechaContratacion, nullFloat(e.Salario), string(e.TipoSalario), string(e.Moneda),
		e.Telefono, e.UserID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert empleado: %w", err)
	}

	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (r *EmpleadoRepository) GetByID(ctx context.Context, id string) (*domain.Empleado, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, apellido, email, puesto, departamento, fecha_contratacion,
		 salario, tipo_salario, moneda, telefono, user_id, created_at, updated_at
		 FROM empleados WHERE id = ?`, id,
	)

	e, err := scanEmpleado(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query empleado by id: %w", err)
	}
	return e, nil
}

// List returns every employee record, ordered by apellido then nombre.
func (r *EmpleadoRepository) List(ctx context.Context) ([]domain.Empleado, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nombre, apellido, email, puesto, departamento, fecha_contratacion,
		 salario, tipo_salario, moneda, telefono, user_id, created_at, updated_at
		 FROM empleados ORDER BY apellido, nombre`,
	)
	if err != nil {
		return nil, fmt.Errorf("query empleados: %w", err)
	}
	defer rows.Close()

	var empleados []domain.Empleado
	for rows.Next() {
		e, err := scanEmpleado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		empleados = append(empleados, *e)
	}
	return empleados, rows.Err()
}

// Update rewrites every mutable column of the record and stamps updated_at.
// The owning user_id is deliberately not part of the SET list.
func (r *EmpleadoRepository) Update(ctx context.Context, e *domain.Empleado) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE empleados SET nombre = ?, apellido = ?, email = ?, puesto = ?,
		 departamento = ?, fecha_contratacion = ?, salario = ?, tipo_salario = ?,
		 moneda = ?, telefono = ?, updated_at = ?
		 WHERE id = ?`,
		e.Nombre, e.Apellido, e.Email, e.Puesto, e.Departamento, e.FechaContratacion,
		nullFloat(e.Salario), string(e.TipoSalario), string(e.Moneda), e.Telefono, now, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	e.UpdatedAt = now
	return nil
}

func (r *EmpleadoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM empleados WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete empleado: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmpleado(row rowScanner) (*domain.Empleado, error) {
	e := &domain.Empleado{}
	var salario sql.NullFloat64
	var tipoSalario, moneda string

	err := row.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Email, &e.Puesto, &e.Departamento,
		&e.FechaContratacion, &salario, &tipoSalario, &moneda, &e.Telefono, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if salario.Valid {
		e.Salario = &salario.Float64
	}
	e.TipoSalario = domain.TipoSalario(tipoSalario)
	e.Moneda = domain.Moneda(moneda)
	return e, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
