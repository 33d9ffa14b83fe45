// Package dataset loads the experiment measurement table from CSV.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Observation is one measured sample: the producer proportion seen in one
// replicate at one timestamp under one environmental change frequency.
// EnvChangeFreq 0 marks the static baseline environment.
type Observation struct {
	EnvChangeFreq      float64
	Replicate          string
	Time               float64
	ProducerProportion float64
}

// Required header columns. Extra columns in the input are ignored.
const (
	colFreq       = "EnvChangeFreq"
	colReplicate  = "Replicate"
	colTime       = "Time"
	colProportion = "ProducerProportion"
)

// ReadCSV reads the measurement table at path. The header row is matched by
// column name, so column order does not matter. Any missing file, missing
// required column or non-numeric field is an error.
func ReadCSV(path string) ([]Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open measurements: %w", err)
	}
	defer file.Close()

	obs, err := parse(csv.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obs, nil
}

func parse(r *csv.Reader) ([]Observation, error) {
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read CSV: missing header row")
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, name := range []string{colFreq, colReplicate, colTime, colProportion} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("header: missing column %q", name)
		}
	}

	var obs []Observation
	for i, record := range records {
		if i == 0 {
			continue
		}

		freq, err := strconv.ParseFloat(record[cols[colFreq]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i+1, colFreq, err)
		}
		t, err := strconv.ParseFloat(record[cols[colTime]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i+1, colTime, err)
		}
		prop, err := strconv.ParseFloat(record[cols[colProportion]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", i+1, colProportion, err)
		}

		obs = append(obs, Observation{
			EnvChangeFreq:      freq,
			Replicate:          record[cols[colReplicate]],
			Time:               t,
			ProducerProportion: prop,
		})
	}

	return obs, nil
}
