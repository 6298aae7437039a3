package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmarquezl/aurora-rrhh/internal/domain"
)

// EmpleadoInput carries form-level employee fields. Salario arrives as the
// raw text the user typed; parsing to a number happens here, once, at the
// store boundary. Optional qualifiers left empty take their documented
// defaults.
type EmpleadoInput struct {
	Nombre            string
	Apellido          string
	Email             string
	Puesto            string
	Departamento      string
	FechaContratacion string
	Salario           string
	TipoSalario       string
	Moneda            string
	Telefono          string
}

// EmpleadoService handles employee record CRUD with validation and a
// uniform ownership check before every mutating call.
type EmpleadoService struct {
	empleados domain.EmpleadoRepository
}

// NewEmpleadoService creates a new EmpleadoService.
func NewEmpleadoService(empleados domain.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{empleados: empleados}
}

// List returns every employee record, ordered by apellido.
func (s *EmpleadoService) List(ctx context.Context) ([]domain.Empleado, error) {
	return s.empleados.List(ctx)
}

// Get returns one employee record by its identifier.
func (s *EmpleadoService) Get(ctx context.Context, id string) (*domain.Empleado, error) {
	return s.empleados.GetByID(ctx, id)
}

// Create validates the input and inserts a new record owned by userID.
func (s *EmpleadoService) Create(ctx context.Context, userID int64, input EmpleadoInput) (*domain.Empleado, error) {
	empleado, err := s.build(input)
	if err != nil {
		return nil, err
	}
	empleado.UserID = userID

	if err := s.empleados.Create(ctx, empleado); err != nil {
		return nil, fmt.Errorf("create empleado: %w", err)
	}
	return empleado, nil
}

// Update validates the input and rewrites the record. Only the owning user
// may update; the owner itself never changes.
func (s *EmpleadoService) Update(ctx context.Context, userID int64, id string, input EmpleadoInput) (*domain.Empleado, error) {
	existing, err := s.empleados.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrUnauthorized
	}

	empleado, err := s.build(input)
	if err != nil {
		return nil, err
	}
	empleado.ID = existing.ID
	empleado.UserID = existing.UserID
	empleado.CreatedAt = existing.CreatedAt

	if err := s.empleados.Update(ctx, empleado); err != nil {
		return nil, fmt.Errorf("update empleado: %w", err)
	}
	return empleado, nil
}

// Delete removes a record. Only the owning user may delete.
func (s *EmpleadoService) Delete(ctx context.Context, userID int64, id string) error {
	existing, err := s.empleados.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}

	return s.empleados.Delete(ctx, id)
}

// build validates and normalizes input into a domain record.
func (s *EmpleadoService) build(input EmpleadoInput) (*domain.Empleado, error) {
	if input.Nombre == "" || input.Apellido == "" || input.Email == "" || input.Puesto == "" {
		return nil, fmt.Errorf("%w: nombre, apellido, email y puesto son obligatorios", domain.ErrInvalidInput)
	}
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: email inválido", domain.ErrInvalidInput)
	}
	if len(input.Puesto) > 100 {
		return nil, fmt.Errorf("%w: el puesto debe tener 100 caracteres o menos", domain.ErrInvalidInput)
	}
	if !validDepartamento(input.Departamento) {
		return nil, fmt.Errorf("%w: departamento desconocido %q", domain.ErrInvalidInput, input.Departamento)
	}

	fecha := input.FechaContratacion
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, fmt.Errorf("%w: fecha de contratación inválida %q", domain.ErrInvalidInput, input.FechaContratacion)
	}

	salario, err := parseSalario(input.Salario)
	if err != nil {
		return nil, err
	}

	tipoSalario := domain.TipoSalario(input.TipoSalario)
	switch tipoSalario {
	case "":
		tipoSalario = domain.SalarioMensual
	case domain.SalarioMensual, domain.SalarioAnual:
	default:
		return nil, fmt.Errorf("%w: tipo de salario desconocido %q", domain.ErrInvalidInput, input.TipoSalario)
	}

	moneda := domain.Moneda(input.Moneda)
	switch moneda {
	case "":
		moneda = domain.MonedaARS
	case domain.MonedaARS, domain.MonedaUSD:
	default:
		return nil, fmt.Errorf("%w: moneda desconocida %q", domain.ErrInvalidInput, input.Moneda)
	}

	return &domain.Empleado{
		Nombre:            input.Nombre,
		Apellido:          input.Apellido,
		Email:             input.Email,
		Puesto:            input.Puesto,
		Departamento:      input.Departamento,
		FechaContratacion: fecha,
		Salario:           salario,
		TipoSalario:       tipoSalario,
		Moneda:            moneda,
		Telefono:          input.Telefono,
	}, nil
}

// parseSalario converts the form text to a number. Empty text means no
// salary recorded, never zero.
func parseSalario(text string) (*float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: salario inválido %q", domain.ErrInvalidInput, text)
	}
	if value < 0 {
		return nil, fmt.Errorf("%w: el salario no puede ser negativo", domain.ErrInvalidInput)
	}
	return &value, nil
}

func validDepartamento(d string) bool {
	for _, dep := range domain.Departamentos {
		if d == dep {
			return true
		}
	}
	return false
}
