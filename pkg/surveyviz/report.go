package surveyviz

import (
	"encoding/json"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
)

// ToJSON serializes a report for the machine-readable sidecar output.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
