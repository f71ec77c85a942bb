package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User           UserRepository
	Entrega        EntregaRepository
	Movimiento     MovimientoRepository
	Empresa        EmpresaRepository
	MovimientoCaja MovimientoCajaRepository
	TipoMovimiento TipoMovimientoRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:           NewUserRepository(db),
		Entrega:        NewEntregaRepository(db),
		Movimiento:     NewMovimientoRepository(db),
		Empresa:        NewEmpresaRepository(db),
		MovimientoCaja: NewMovimientoCajaRepository(db),
		TipoMovimiento: NewTipoMovimientoRepository(db),
	}
}

// ListQuery holds common pagination, sorting and filtering options
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

func (q *ListQuery) offset() int {
	if q.Page < 1 {
		q.Page = 1
	}
	return (q.Page - 1) * q.PerPage
}
