package models

import "time"

// Empresa is the company identity printed on report headers
type Empresa struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RazonSocial string    `gorm:"not null" json:"razon_social"`
	RUC         string    `gorm:"column:ruc" json:"ruc"`
	Direccion   string    `json:"direccion"`
	Telefono    string    `json:"telefono"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Empresa
func (Empresa) TableName() string {
	return "empresas"
}

// CentroCosto is the accounting bucket a settlement is charged against
type CentroCosto struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `gorm:"uniqueIndex" json:"codigo"`
	Nombre string `gorm:"not null" json:"nombre"`
}

// TableName specifies the table name for CentroCosto
func (CentroCosto) TableName() string {
	return "centros_costo"
}

// EntidadComercial is the counterparty of a movement (supplier, client)
type EntidadComercial struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RazonSocial string `gorm:"not null" json:"razon_social"`
	RUC         string `gorm:"column:ruc" json:"ruc"`
}

// TableName specifies the table name for EntidadComercial
func (EntidadComercial) TableName() string {
	return "entidades_comerciales"
}

// Moneda is a currency lookup entry
type Moneda struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Codigo  string `gorm:"not null;uniqueIndex" json:"codigo"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
}

// TableName specifies the table name for Moneda
func (Moneda) TableName() string {
	return "monedas"
}
