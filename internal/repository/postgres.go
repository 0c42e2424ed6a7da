package repository

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/geokit/internal/models"
	"github.com/UnknownOlympus/geokit/pkg/measure"
)

// FetchSegmentsForMeasuring retrieves a list of segments that still need a
// great-circle length. It returns segments that have a NULL length, fewer
// than 5 measuring attempts, and both endpoints geocoded. The results are
// ordered by creation date and limited to the specified count.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of segments to retrieve.
//
// Returns:
// - A slice of models.Segment containing the segments that match the criteria.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchSegmentsForMeasuring(ctx context.Context, limit int) ([]models.Segment, error) {
	var segments []models.Segment
	query := `
		SELECT segment_id, origin_lat, origin_lng, dest_lat, dest_lng
		FROM public.segments
		WHERE
			length_km IS NULL
			AND measuring_attempts < 5
			AND origin_lat IS NOT NULL
			AND dest_lat IS NOT NULL
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unmeasured segments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var segment models.Segment
		if errScan := rows.Scan(
			&segment.ID,
			&segment.Origin.Latitude,
			&segment.Origin.Longitude,
			&segment.Destination.Latitude,
			&segment.Destination.Longitude,
		); errScan != nil {
			return nil, fmt.Errorf("failed to scan unmeasured segment: %w", errScan)
		}
		r.log.DebugContext(ctx, "A new segment without length has been received.",
			"ID", segment.ID, "Origin", segment.Origin, "Destination", segment.Destination)
		segments = append(segments, segment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return segments, nil
}

// UpdateSegmentLength stores the computed length of the segment identified
// by segmentID, normalized to kilometers, and clears the measuring_error
// field. It returns an error if the update fails.
func (r *Repository) UpdateSegmentLength(ctx context.Context, segmentID int, length measure.Distance) error {
	query := `
		UPDATE segments
		SET
			length_km = $1,
			measuring_error = NULL
		WHERE
			segment_id = $2;
	`

	_, err := r.db.Exec(ctx, query, length.Kilometers(), segmentID)
	if err != nil {
		return fmt.Errorf("failed to update segment length: %w", err)
	}

	return nil
}

// IncrementFailureCount increments the measuring attempt count for a
// specific segment identified by segmentID and updates the associated
// error message. If the update operation fails, it returns an error with
// additional context.
func (r *Repository) IncrementFailureCount(ctx context.Context, segmentID int, errMsg string) error {
	query := `
		UPDATE segments
		SET
			measuring_attempts = measuring_attempts + 1,
			measuring_error = $1
		WHERE segment_id = $2;
	`

	_, err := r.db.Exec(ctx, query, errMsg, segmentID)
	if err != nil {
		return fmt.Errorf("failed to update measuring error and number of attempts: %w", err)
	}

	return nil
}
