// Package export generates downloadable report files from waste log data.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"wastetrack/internal/repository"
	"wastetrack/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// pageSize bounds how many logs are pulled from the store per round trip.
const pageSize = 500

//go:generate mockgen -destination=mocks/mock_exporter.go -package=mocks wastetrack/internal/export Exporter

// Exporter defines the interface for report file generation.
type Exporter interface {
	// Export writes a team's waste logs to object storage and returns the
	// file key and the number of exported entries.
	Export(ctx context.Context, teamID, reportID primitive.ObjectID) (string, int, error)
}

// CSVExporter renders a team's waste logs as a CSV file in object storage.
type CSVExporter struct {
	logRepo repository.WasteLogRepository
	storage storage.Storage
}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter(logRepo repository.WasteLogRepository, store storage.Storage) *CSVExporter {
	return &CSVExporter{
		logRepo: logRepo,
		storage: store,
	}
}

// Ensure CSVExporter implements Exporter interface
var _ Exporter = (*CSVExporter)(nil)

// Export fetches the team's logs page by page, renders them as CSV, and
// uploads the result under a per-report key.
func (e *CSVExporter) Export(ctx context.Context, teamID, reportID primitive.ObjectID) (string, int, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "wasteType", "weightKg", "description", "createdById", "createdAt"}); err != nil {
		return "", 0, err
	}

	count := 0
	for page := 1; ; page++ {
		logs, total, err := e.logRepo.FindByTeamID(ctx, teamID, page, pageSize)
		if err != nil {
			return "", 0, err
		}

		for _, log := range logs {
			record := []string{
				log.ID.Hex(),
				string(log.WasteType),
				strconv.FormatFloat(log.WeightKg, 'f', -1, 64),
				log.Description,
				log.CreatedByID.Hex(),
				log.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := w.Write(record); err != nil {
				return "", 0, err
			}
			count++
		}

		if count >= total || len(logs) == 0 {
			break
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, err
	}

	key := fmt.Sprintf("reports/%s/%s.csv", teamID.Hex(), reportID.Hex())
	if err := e.storage.PutObject(ctx, key, &buf, "text/csv"); err != nil {
		return "", 0, err
	}

	return key, count, nil
}
