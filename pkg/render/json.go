package render

import (
	"encoding/json"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// Document is the JSON export format.
type Document struct {
	Width     float64        `json:"width"`
	Length    float64        `json:"length"`
	Biscuits  int            `json:"biscuits"`
	Placement geom.Placement `json:"placement"`
}

// RenderJSON exports pan dimensions and biscuit centres as indented JSON.
func RenderJSON(width, length float64, pl geom.Placement, _ ...Option) ([]byte, error) {
	return json.MarshalIndent(Document{
		Width:     width,
		Length:    length,
		Biscuits:  len(pl),
		Placement: pl,
	}, "", "  ")
}
