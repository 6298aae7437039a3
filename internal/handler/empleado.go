package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmarquezl/aurora-rrhh/internal/domain"
	"github.com/dmarquezl/aurora-rrhh/internal/metrics"
	"github.com/dmarquezl/aurora-rrhh/internal/service"
)

// empleadoRequest is the JSON payload for create and update. Salario is the
// raw text from the form control; the service parses it.
type empleadoRequest struct {
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	Email             string `json:"email"`
	Puesto            string `json:"puesto"`
	Departamento      string `json:"departamento"`
	FechaContratacion string `json:"fecha_contratacion"`
	Salario           string `json:"salario"`
	TipoSalario       string `json:"tipo_salario"`
	Moneda            string `json:"moneda"`
	Telefono          string `json:"telefono"`
}

func (req empleadoRequest) toInput() service.EmpleadoInput {
	return service.EmpleadoInput{
		Nombre:            req.Nombre,
		Apellido:          req.Apellido,
		Email:             req.Email,
		Puesto:            req.Puesto,
		Departamento:      req.Departamento,
		FechaContratacion: req.FechaContratacion,
		Salario:           req.Salario,
		TipoSalario:       req.TipoSalario,
		Moneda:            req.Moneda,
		Telefono:          req.Telefono,
	}
}

// EmpleadoHandler handles employee record HTTP requests.
type EmpleadoHandler struct {
	empleados *service.EmpleadoService
	metrics   *metrics.Metrics
}

// NewEmpleadoHandler creates a new EmpleadoHandler.
func NewEmpleadoHandler(empleados *service.EmpleadoService, m *metrics.Metrics) *EmpleadoHandler {
	return &EmpleadoHandler{empleados: empleados, metrics: m}
}

// HandleList returns all employee records, optionally filtered.
// GET /api/empleados?buscar=texto
// Response: {"empleados": [...]}
func (h *EmpleadoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	empleados, err := h.empleados.List(r.Context())
	if err != nil {
		slog.Error("list empleados", "error", err)
		writeError(w, http.StatusInternalServerError, "Error al cargar los empleados.")
		return
	}

	// The search filter works over the fetched set; it never issues
	// another query.
	if buscar := r.URL.Query().Get("buscar"); buscar != "" {
		empleados = filterEmpleados(empleados, buscar)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"empleados": toEmpleadoDTOs(empleados),
	})
}

// HandleGet returns one employee record by id.
// GET /api/empleados/{id}
func (h *EmpleadoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	empleado, err := h.empleados.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeEmpleadoError(w, err, "cargar")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"empleado": toEmpleadoDTO(empleado),
	})
}

// HandleCreate inserts a new employee record owned by the session user.
// POST /api/empleados
func (h *EmpleadoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Debe iniciar sesión para realizar esta acción.")
		return
	}

	var req empleadoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	empleado, err := h.empleados.Create(r.Context(), user.ID, req.toInput())
	h.metrics.RecordEmpleadoOp("create", err)
	if err != nil {
		h.writeEmpleadoError(w, err, "crear")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"empleado": toEmpleadoDTO(empleado),
		"mensaje":  fmt.Sprintf("%s %s ha sido añadido correctamente.", empleado.Nombre, empleado.Apellido),
	})
}

// HandleUpdate rewrites an existing employee record.
// PUT /api/empleados/{id}
func (h *EmpleadoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Debe iniciar sesión para realizar esta acción.")
		return
	}

	var req empleadoRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	empleado, err := h.empleados.Update(r.Context(), user.ID, r.PathValue("id"), req.toInput())
	h.metrics.RecordEmpleadoOp("update", err)
	if err != nil {
		h.writeEmpleadoError(w, err, "actualizar")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"empleado": toEmpleadoDTO(empleado),
		"mensaje":  fmt.Sprintf("%s %s ha sido actualizado correctamente.", empleado.Nombre, empleado.Apellido),
	})
}

// HandleDelete removes an employee record.
// DELETE /api/empleados/{id}
// Response: 204 No Content
func (h *EmpleadoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Debe iniciar sesión para realizar esta acción.")
		return
	}

	err := h.empleados.Delete(r.Context(), user.ID, r.PathValue("id"))
	h.metrics.RecordEmpleadoOp("delete", err)
	if err != nil {
		h.writeEmpleadoError(w, err, "eliminar")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EmpleadoHandler) writeEmpleadoError(w http.ResponseWriter, err error, accion string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Empleado no encontrado.")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "Solo el propietario del registro puede modificarlo.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("empleado operation", "accion", accion, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error al %s el empleado.", accion))
	}
}

// filterEmpleados returns the records whose nombre, apellido, email, puesto
// or departamento contain the search string, case-insensitively. The input
// slice is left untouched.
func filterEmpleados(empleados []domain.Empleado, buscar string) []domain.Empleado {
	var filtered []domain.Empleado
	for _, e := range empleados {
		if matchesBusqueda(e, buscar) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func matchesBusqueda(e domain.Empleado, buscar string) bool {
	buscar = strings.ToLower(buscar)
	return strings.Contains(strings.ToLower(e.Nombre), buscar) ||
		strings.Contains(strings.ToLower(e.Apellido), buscar) ||
		strings.Contains(strings.ToLower(e.Email), buscar) ||
		strings.Contains(strings.ToLower(e.Puesto), buscar) ||
		strings.Contains(strings.ToLower(e.Departamento), buscar)
}
