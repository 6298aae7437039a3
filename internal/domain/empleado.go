package domain

import (
	"context"
	"time"
)

// TipoSalario qualifies whether a salary figure is monthly or annual.
type TipoSalario string

const (
	SalarioMensual TipoSalario = "mensual"
	SalarioAnual   TipoSalario = "anual"
)

// Moneda is the currency a salary is expressed in.
type Moneda string

const (
	MonedaARS Moneda = "ARS"
	MonedaUSD Moneda = "USD"
)

// Departamentos is the fixed set of valid departments.
var Departamentos = []string{
	"Tecnología",
	"Diseño",
	"Ventas",
	"Marketing",
	"Recursos Humanos",
	"Administración",
	"Finanzas",
	"Atención al Cliente",
}

// Empleado is one employee record. The ID is an opaque string assigned at
// creation and never changes; UserID is the owning user, stamped once at
// creation. Salario is nil when no salary has been recorded.
type Empleado struct {
	ID                string
	Nombre            string
	Apellido          string
	Email             string
	Puesto            string
	Departamento      string
	FechaContratacion string // ISO date, YYYY-MM-DD
	Salario           *float64
	TipoSalario       TipoSalario
	Moneda            Moneda
	Telefono          string
	UserID            int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EmpleadoRepository defines persistence operations for employee records.
type EmpleadoRepository interface {
	Create(ctx context.Context, empleado *Empleado) error
	GetByID(ctx context.Context, id string) (*Empleado, error)
	List(ctx context.Context) ([]Empleado, error)
	Update(ctx context.Context, empleado *Empleado) error
	Delete(ctx context.Context, id string) error
}
