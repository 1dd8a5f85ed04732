/*
Package factory provides JSON to Go room-type configuration conversion.

PURPOSE:
  Converts JSON room-type definitions into occupancy.RoomTypeConfigMap.
  Supply and floor area are deployment facts, not derivable from stay
  records, so they are configured once per deployment and handed to the
  engine at startup.

JSON SCHEMA:
  [
    {"code": "1B", "total_supply": 40, "area_sqm": 55.5},
    {"code": "2B", "total_supply": 25, "area_sqm": 82.0}
  ]

VALIDATION:
  - code is required and unique
  - total_supply must be >= 0
  - area_sqm must be >= 0

USAGE:
  config, err := factory.LoadRoomTypes("./config/roomtypes.json")
  engine := occupancy.NewEngine(records, config)

SEE ALSO:
  - occupancy/record.go: RoomTypeConfig and the zero-value defaults applied
    to types missing from configuration
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/spark/occupancy-engine/occupancy"
)

// RoomTypeJSON is the JSON representation of one room type.
type RoomTypeJSON struct {
	Code        string  `json:"code"`
	TotalSupply int     `json:"total_supply"`
	AreaSqm     float64 `json:"area_sqm"`
}

// ParseRoomTypes converts a JSON array of room types into a config map.
func ParseRoomTypes(data []byte) (occupancy.RoomTypeConfigMap, error) {
	var entries []RoomTypeJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse room type config: %w", err)
	}

	config := make(occupancy.RoomTypeConfigMap, len(entries))
	for i, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("room type entry %d: code is required", i)
		}
		if _, dup := config[e.Code]; dup {
			return nil, fmt.Errorf("room type %q: duplicate code", e.Code)
		}
		if e.TotalSupply < 0 {
			return nil, fmt.Errorf("room type %q: total_supply must be >= 0", e.Code)
		}
		if e.AreaSqm < 0 {
			return nil, fmt.Errorf("room type %q: area_sqm must be >= 0", e.Code)
		}
		config[e.Code] = occupancy.RoomTypeConfig{
			Code:        e.Code,
			TotalSupply: e.TotalSupply,
			AreaSqm:     decimal.NewFromFloat(e.AreaSqm),
		}
	}
	return config, nil
}

// LoadRoomTypes reads and parses a room type configuration file.
func LoadRoomTypes(path string) (occupancy.RoomTypeConfigMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room type config: %w", err)
	}
	return ParseRoomTypes(data)
}
