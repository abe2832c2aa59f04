package alert

import (
	"encoding/json"
	"os"

	"cryptodash/internal/model"
)

// LoadAlerts reads the persisted alert list from a JSON file.
// Returns an empty list if the file doesn't exist.
func LoadAlerts(filePath string) ([]model.Alert, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var alerts []model.Alert
	if err := json.Unmarshal(data, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// SaveAlerts overwrites the full alert list. Persistence is whole-list on
// every mutation, never incremental.
func SaveAlerts(filePath string, alerts []model.Alert) error {
	data, err := json.MarshalIndent(alerts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
