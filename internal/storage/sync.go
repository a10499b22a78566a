package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fuel/internal/logger"
	"go.uber.org/zap"
)

// Columns of every table that takes part in a dump. Restoring only accepts
// these, so a dump file cannot name arbitrary tables or columns.
var dumpTables = map[string][]string{
	"foods":        {"id", "name", "amount", "carbohydrates", "proteins", "fats", "calories", "custom", "created_at"},
	"food_log":     {"id", "food_id", "name", "amount", "carbohydrates", "proteins", "fats", "quantity", "calories", "custom", "logged_at"},
	"exercise_log": {"id", "name", "reps", "sets", "weight_kg", "calories_burned", "logged_at"},
}

// Restore order: foods first so food_log references resolve.
var tableOrder = []string{"foods", "food_log", "exercise_log"}

// ExportTOML writes every row of the diary tables into a single TOML file,
// as a map from table name to a list of rows.
func (s *Storage) ExportTOML(ctx context.Context, outputPath string) error {
	dbDump := make(map[string][]map[string]interface{})

	for _, table := range tableOrder {
		cols := dumpTables[table]
		query := fmt.Sprintf("SELECT %s FROM %s;", strings.Join(cols, ", "), table)
		rows, err := s.DB.QueryContext(ctx, query)
		if err != nil {
			return fmt.Errorf("querying table %s: %w", table, err)
		}

		var tableData []map[string]interface{}
		for rows.Next() {
			values := make([]interface{}, len(cols))
			valuePtrs := make([]interface{}, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("scanning row in table %s: %w", table, err)
			}

			rowMap := make(map[string]interface{})
			for i, col := range cols {
				switch v := values[i].(type) {
				case nil:
					// TOML has no null, absent keys restore as NULL.
				case []byte:
					rowMap[col] = string(v)
				default:
					rowMap[col] = v
				}
			}
			tableData = append(tableData, rowMap)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating table %s: %w", table, err)
		}
		rows.Close()

		if len(tableData) > 0 {
			dbDump[table] = tableData
		}
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	logger.Info("database exported", zap.String("path", outputPath))
	return nil
}

// ImportTOML rebuilds the diary tables from a dump written by ExportTOML.
// Existing rows are deleted first; the whole restore is one transaction.
func (s *Storage) ImportTOML(ctx context.Context, filePath string) error {
	var dbDump map[string][]map[string]interface{}
	if _, err := toml.DecodeFile(filePath, &dbDump); err != nil {
		return fmt.Errorf("decoding TOML %s: %w", filePath, err)
	}

	for table := range dbDump {
		if _, ok := dumpTables[table]; !ok {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first when clearing.
	for i := len(tableOrder) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", tableOrder[i])); err != nil {
			return fmt.Errorf("clearing table %s: %w", tableOrder[i], err)
		}
	}

	for _, table := range tableOrder {
		allowed := make(map[string]bool)
		for _, c := range dumpTables[table] {
			allowed[c] = true
		}

		for _, row := range dbDump[table] {
			columns := make([]string, 0, len(row))
			for col := range row {
				if !allowed[col] {
					return fmt.Errorf("unknown column %q in table %s", col, table)
				}
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]interface{}, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
				table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	logger.Info("database restored", zap.String("path", filePath))
	return nil
}

// GetDBExportPath returns the default dump location, ~/.config/fuel/db_dump.toml.
func GetDBExportPath(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "db_dump.toml"), nil
}
