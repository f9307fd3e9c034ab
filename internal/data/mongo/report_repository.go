// Package mongo provides the MongoDB implementation of the report archive.
// Generated statements and forecasts are stored as documents so past
// reports can be audited even though the aggregates themselves are
// ephemeral.
package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/shared"
)

const (
	// ReportCollectionName is the name of the report archive collection
	ReportCollectionName = "archived_reports"
)

// reportDocument is the archive's persisted shape. The payload is the
// report's JSON form re-encoded as a sub-document; amounts stay decimal
// strings.
type reportDocument struct {
	ReportID    uuid.UUID `bson:"report_id"`
	Kind        string    `bson:"kind"`
	GeneratedAt time.Time `bson:"generated_at"`
	PeriodStart string    `bson:"period_start"`
	PeriodEnd   string    `bson:"period_end"`
	Payload     bson.M    `bson:"payload"`
}

// ReportArchiveRepository implements cashflow.ArchiveRepository for MongoDB
type ReportArchiveRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewReportArchiveRepository creates a new MongoDB report archive repository
func NewReportArchiveRepository(logger *slog.Logger, db *mongo.Database) cashflow.ArchiveRepository {
	return &ReportArchiveRepository{
		db:     db,
		logger: logger,
	}
}

// Save stores a report snapshot
func (r *ReportArchiveRepository) Save(ctx context.Context, report *cashflow.ArchivedReport) error {
	doc, err := toDocument(report)
	if err != nil {
		return err
	}

	collection := r.db.Collection(ReportCollectionName)
	if _, err := collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Failed to archive report",
			"report_id", report.ID.String(),
			"kind", string(report.Kind),
			"error", err)
		return fmt.Errorf("failed to archive report: %w", err)
	}

	return nil
}

// ListRecent returns metadata for the most recently generated reports,
// newest first. The payload is not loaded.
func (r *ReportArchiveRepository) ListRecent(ctx context.Context, limit int) ([]cashflow.ArchivedReportSummary, error) {
	collection := r.db.Collection(ReportCollectionName)

	opts := options.Find().
		SetSort(bson.M{"generated_at": -1}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"payload": 0})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		r.logger.Error("Failed to list archived reports", "error", err)
		return nil, fmt.Errorf("failed to list archived reports: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []reportDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("Failed to decode archived reports", "error", err)
		return nil, fmt.Errorf("failed to decode archived reports: %w", err)
	}

	summaries := make([]cashflow.ArchivedReportSummary, 0, len(docs))
	for _, doc := range docs {
		summary, err := toSummary(doc)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// toDocument converts an archived report to its persisted shape
func toDocument(report *cashflow.ArchivedReport) (*reportDocument, error) {
	var source any
	switch report.Kind {
	case cashflow.ReportKindStatement:
		source = report.Statement
	case cashflow.ReportKindForecast:
		source = report.Forecast
	default:
		return nil, fmt.Errorf("unknown report kind %q", report.Kind)
	}
	if source == nil {
		return nil, fmt.Errorf("archived report %s has no %s payload", report.ID, report.Kind)
	}

	raw, err := json.Marshal(source)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report payload: %w", err)
	}
	var payload bson.M
	if err := bson.UnmarshalExtJSON(raw, false, &payload); err != nil {
		return nil, fmt.Errorf("failed to convert report payload: %w", err)
	}

	return &reportDocument{
		ReportID:    report.ID,
		Kind:        string(report.Kind),
		GeneratedAt: report.GeneratedAt,
		PeriodStart: report.PeriodStart.String(),
		PeriodEnd:   report.PeriodEnd.String(),
		Payload:     payload,
	}, nil
}

// toSummary converts a persisted document back to the metadata view
func toSummary(doc reportDocument) (cashflow.ArchivedReportSummary, error) {
	start, err := shared.ParseDate(doc.PeriodStart)
	if err != nil {
		return cashflow.ArchivedReportSummary{}, fmt.Errorf("archived report %s: %w", doc.ReportID, err)
	}
	end, err := shared.ParseDate(doc.PeriodEnd)
	if err != nil {
		return cashflow.ArchivedReportSummary{}, fmt.Errorf("archived report %s: %w", doc.ReportID, err)
	}

	return cashflow.ArchivedReportSummary{
		ID:          doc.ReportID,
		Kind:        cashflow.ReportKind(doc.Kind),
		GeneratedAt: doc.GeneratedAt,
		PeriodStart: start,
		PeriodEnd:   end,
	}, nil
}
