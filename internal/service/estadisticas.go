package service

// Estadisticas is the dashboard payload: four summary cards plus the two
// chart series. The figures are the fixed sample set from the product's
// dashboard; the panel has never been wired to live employee data.
type Estadisticas struct {
	Resumen        []Resumen          `json:"resumen"`
	Departamentos  []DepartamentoStat `json:"departamentos"`
	Contrataciones []ContratacionMes  `json:"contrataciones"`
}

// Resumen is one summary card.
type Resumen struct {
	Titulo string `json:"titulo"`
	Valor  string `json:"valor"`
	Cambio string `json:"cambio"`
}

// DepartamentoStat is one slice of the department distribution chart.
type DepartamentoStat struct {
	Nombre    string `json:"nombre"`
	Empleados int    `json:"empleados"`
}

// ContratacionMes is one bar of the monthly hiring chart.
type ContratacionMes struct {
	Mes            string `json:"mes"`
	Contrataciones int    `json:"contrataciones"`
}

// EstadisticasService serves the dashboard figures.
type EstadisticasService struct{}

// NewEstadisticasService creates a new EstadisticasService.
func NewEstadisticasService() *EstadisticasService {
	return &EstadisticasService{}
}

// Get returns the dashboard statistics.
func (s *EstadisticasService) Get() Estadisticas {
	return Estadisticas{
		Resumen: []Resumen{
			{Titulo: "Total Empleados", Valor: "142", Cambio: "+12% vs mes anterior"},
			{Titulo: "Nuevas Contrataciones", Valor: "8", Cambio: "+3 vs mes anterior"},
			{Titulo: "Departamentos", Valor: "6", Cambio: "Sin cambios"},
			{Titulo: "Salario Promedio", Valor: "€45,800", Cambio: "+2.5% vs mes anterior"},
		},
		Departamentos: []DepartamentoStat{
			{Nombre: "Tecnología", Empleados: 35},
			{Nombre: "Ventas", Empleados: 25},
			{Nombre: "Diseño", Empleados: 18},
			{Nombre: "Marketing", Empleados: 15},
			{Nombre: "RRHH", Empleados: 12},
			{Nombre: "Administración", Empleados: 10},
		},
		Contrataciones: []ContratacionMes{
			{Mes: "Ene", Contrataciones: 5},
			{Mes: "Feb", Contrataciones: 3},
			{Mes: "Mar", Contrataciones: 4},
			{Mes: "Abr", Contrataciones: 2},
			{Mes: "May", Contrataciones: 6},
			{Mes: "Jun", Contrataciones: 4},
			{Mes: "Jul", Contrataciones: 8},
			{Mes: "Ago", Contrataciones: 3},
			{Mes: "Sep", Contrataciones: 5},
			{Mes: "Oct", Contrataciones: 7},
			{Mes: "Nov", Contrataciones: 4},
			{Mes: "Dic", Contrataciones: 6},
		},
	}
}
