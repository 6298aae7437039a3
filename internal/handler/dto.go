package handler

import (
	"time"

	"github.com/dmarquezl/aurora-rrhh/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Apellido:  u.Apellido,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// EmpleadoDTO is the JSON representation of an employee record. Wire names
// are the canonical snake_case schema.
type EmpleadoDTO struct {
	ID                string   `json:"id"`
	Nombre            string   `json:"nombre"`
	Apellido          string   `json:"apellido"`
	Email             string   `json:"email"`
	Puesto            string   `json:"puesto"`
	Departamento      string   `json:"departamento"`
	FechaContratacion string   `json:"fecha_contratacion"`
	Salario           *float64 `json:"salario"`
	TipoSalario       string   `json:"tipo_salario"`
	Moneda            string   `json:"moneda"`
	Telefono          string   `json:"telefono"`
	UserID            int64    `json:"user_id"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func toEmpleadoDTO(e *domain.Empleado) EmpleadoDTO {
	return EmpleadoDTO{
		ID:                e.ID,
		Nombre:            e.Nombre,
		Apellido:          e.Apellido,
		Email:             e.Email,
		Puesto:            e.Puesto,
		Departamento:      e.Departamento,
		FechaContratacion: e.FechaContratacion,
		Salario:           e.Salario,
		TipoSalario:       string(e.TipoSalario),
		Moneda:            string(e.Moneda),
		Telefono:          e.Telefono,
		UserID:            e.UserID,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         e.UpdatedAt.Format(time.RFC3339),
	}
}

func toEmpleadoDTOs(empleados []domain.Empleado) []EmpleadoDTO {
	dtos := make([]EmpleadoDTO, len(empleados))
	for i := range empleados {
		dtos[i] = toEmpleadoDTO(&empleados[i])
	}
	return dtos
}
