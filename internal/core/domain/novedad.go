package domain

import (
	"errors"
	"time"
)

var ErrNovedadNotFound = errors.New("novedad not found")

// Novedad is an incident report filed by a precinct. Dependencia is the
// precinct identifier used as the visibility predicate; the remaining fields
// are owned by whoever files the report.
type Novedad struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Dependencia string    `json:"dependencia" bson:"dependencia"`
	Fecha       time.Time `json:"fecha" bson:"fecha"`
	Titulo      string    `json:"titulo" bson:"titulo"`
	Descripcion string    `json:"descripcion" bson:"descripcion"`
	CreatedBy   string    `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
