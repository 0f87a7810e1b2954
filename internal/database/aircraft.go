package database

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"indgo_crew/internal/models"
)

type AircraftRepository interface {
	InsertBatch(aircraft []models.AircraftType) error
	ReplaceAll(aircraft []models.AircraftType) error
	All() ([]models.AircraftType, error)
	IsTablePopulated() (bool, error)
	LoadFromMultipleCSV(csvPaths []string, batchSize int) error
}

type aircraftRepository struct {
	db *sql.DB
}

func NewAircraftRepository(db *sql.DB) AircraftRepository {
	return &aircraftRepository{db: db}
}

// Codes already present keep their catalog position; new codes are appended
const upsertAircraft = `INSERT INTO aircraft_types (code, position, name, min_rank, operator)
	VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM aircraft_types), ?, ?, ?)
	ON CONFLICT(code) DO UPDATE SET
		name = excluded.name,
		min_rank = excluded.min_rank,
		operator = excluded.operator,
		updated_at = CURRENT_TIMESTAMP`

// InsertBatch upserts aircraft types in a single transaction, preserving slice order for new codes
func (r *aircraftRepository) InsertBatch(aircraft []models.AircraftType) error {
	if len(aircraft) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertAircraft(tx, aircraft); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReplaceAll swaps the whole catalog mirror for aircraft in one transaction
func (r *aircraftRepository) ReplaceAll(aircraft []models.AircraftType) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM aircraft_types`); err != nil {
		return fmt.Errorf("failed to clear aircraft types: %w", err)
	}

	if err := insertAircraft(tx, aircraft); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertAircraft(tx *sql.Tx, aircraft []models.AircraftType) error {
	if len(aircraft) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(upsertAircraft)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, ac := range aircraft {
		if _, err := stmt.Exec(ac.Code, ac.Name, ac.MinRank, ac.Operator); err != nil {
			return fmt.Errorf("failed to insert aircraft %s: %w", ac.Code, err)
		}
	}
	return nil
}

// All returns the mirrored catalog in catalog order
func (r *aircraftRepository) All() ([]models.AircraftType, error) {
	rows, err := r.db.Query(`SELECT code, name, min_rank, operator FROM aircraft_types ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query aircraft types: %w", err)
	}
	defer rows.Close()

	var out []models.AircraftType
	for rows.Next() {
		var ac models.AircraftType
		if err := rows.Scan(&ac.Code, &ac.Name, &ac.MinRank, &ac.Operator); err != nil {
			return nil, fmt.Errorf("failed to scan aircraft type: %w", err)
		}
		out = append(out, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read aircraft types: %w", err)
	}
	return out, nil
}

func (r *aircraftRepository) IsTablePopulated() (bool, error) {
	var ignored int
	err := r.db.QueryRow("SELECT 1 FROM aircraft_types LIMIT 1").Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check aircraft_types table: %w", err)
	}
	return true, nil
}

// LoadFromMultipleCSV imports fleet CSV files with the header code,name,min_rank,operator.
// Columns may come in any order; rows without a code are skipped. Rank validity is
// checked when the catalog is built from the mirror, not here.
func (r *aircraftRepository) LoadFromMultipleCSV(csvPaths []string, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	batch := make([]models.AircraftType, 0, batchSize)

	for _, csvPath := range csvPaths {
		if err := r.loadCSV(csvPath, &batch, batchSize); err != nil {
			return err
		}
	}

	if len(batch) > 0 {
		if err := r.InsertBatch(batch); err != nil {
			return fmt.Errorf("failed to insert final batch: %w", err)
		}
	}

	return nil
}

func (r *aircraftRepository) loadCSV(csvPath string, batch *[]models.AircraftType, batchSize int) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open CSV file %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header from %s: %w", csvPath, err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[strings.ToLower(strings.Trim(strings.TrimSpace(h), "'\""))] = i
	}
	for _, required := range []string{"code", "min_rank"} {
		if _, ok := headerMap[required]; !ok {
			return fmt.Errorf("CSV file %s is missing the %s column", csvPath, required)
		}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record from %s: %w", csvPath, err)
		}

		ac := models.AircraftType{
			Code:     getField(record, headerMap, "code"),
			Name:     getField(record, headerMap, "name"),
			MinRank:  getField(record, headerMap, "min_rank"),
			Operator: getField(record, headerMap, "operator"),
		}
		if ac.Code == "" {
			continue
		}

		*batch = append(*batch, ac)

		if len(*batch) >= batchSize {
			if err := r.InsertBatch(*batch); err != nil {
				return fmt.Errorf("failed to insert batch: %w", err)
			}
			*batch = (*batch)[:0]
		}
	}

	return nil
}

// getField safely retrieves a field from a CSV record by header name
func getField(record []string, headerMap map[string]int, fieldName string) string {
	if idx, ok := headerMap[fieldName]; ok && idx < len(record) {
		return strings.Trim(strings.TrimSpace(record[idx]), "'\"")
	}
	return ""
}
