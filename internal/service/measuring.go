package service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/UnknownOlympus/geokit/internal/metrics"
	"github.com/UnknownOlympus/geokit/internal/models"
	"github.com/UnknownOlympus/geokit/internal/repository"
)

// errNonFinite is stored as the measuring error for segments whose
// coordinates produce a NaN or infinite length.
const errNonFinite = "computed length is not a finite number"

// MeasuringService periodically backfills great-circle lengths for
// segments whose endpoints are geocoded but whose length is still unknown.
type MeasuringService struct {
	log          *slog.Logger         // Logger for logging service activities
	repo         repository.Interface // Interface for data repository access
	metrics      *metrics.Metrics     // Metrics for tracking service performance
	numWorkers   int                  // Number of concurrent workers for processing
	pollInterval time.Duration        // Interval for polling unmeasured segments
	batchLimit   int                  // Maximum number of segments fetched per poll
}

// NewMeasuringService creates a new instance of MeasuringService.
// It takes a logger, a repository interface, metrics for monitoring, the
// number of workers to use, a polling interval, and the per-poll batch
// limit. It returns a pointer to the newly created MeasuringService.
func NewMeasuringService(
	log *slog.Logger,
	repo repository.Interface,
	metrics *metrics.Metrics,
	numWorkers int,
	pollInterval time.Duration,
	batchLimit int,
) *MeasuringService {
	return &MeasuringService{
		log:          log,
		repo:         repo,
		metrics:      metrics,
		numWorkers:   numWorkers,
		pollInterval: pollInterval,
		batchLimit:   batchLimit,
	}
}

// Run starts the measuring service, which periodically polls for segments
// to measure. It listens for a cancellation signal from the context to
// gracefully stop the service.
func (ms *MeasuringService) Run(ctx context.Context) {
	ticker := time.NewTicker(ms.pollInterval)
	defer ticker.Stop()

	ms.log.InfoContext(ctx, "Measuring service started...")

	for {
		select {
		case <-ctx.Done():
			ms.log.InfoContext(ctx, "Measuring service stopped.")
			return
		case <-ticker.C:
			ms.log.InfoContext(ctx, "Polling for new segments to measure...")
			ms.processSegments(ctx)
		}
	}
}

// processSegments fetches unmeasured segments from the repository, starts
// a worker pool to process them, and waits for all workers to finish. It
// logs errors if segment fetching fails and logs the status of processing.
func (ms *MeasuringService) processSegments(ctx context.Context) {
	segments, err := ms.repo.FetchSegmentsForMeasuring(ctx, ms.batchLimit)
	if err != nil {
		ms.log.ErrorContext(ctx, "Failed to fetch segments", "error", err)
		return
	}
	if len(segments) == 0 {
		ms.log.InfoContext(ctx, "No segments to process.")
		return
	}

	ms.log.InfoContext(
		ctx,
		"Found segments to process. Starting worker pool.",
		"jobs",
		len(segments),
		"num_workers",
		ms.numWorkers,
	)

	jobs := make(chan models.Segment, len(segments))
	var wgr sync.WaitGroup

	for i := 1; i <= ms.numWorkers; i++ {
		wgr.Add(1)
		go ms.worker(ctx, i, &wgr, jobs)
	}

	for _, segment := range segments {
		jobs <- segment
	}
	close(jobs)

	wgr.Wait()
	ms.log.InfoContext(ctx, "Processing batch finished")
}

// worker processes segments from the jobs channel. It increments the
// active worker count, computes the great-circle length of each segment,
// and measures the time taken. A non-finite result (degenerate
// coordinates, pole arithmetic) is recorded as a failure instead of being
// written. On success it stores the computed length on the segment.
func (ms *MeasuringService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Segment) {
	defer wg.Done()
	for segment := range jobs {
		var err error

		ms.metrics.ActiveWorkers.Inc()
		ms.log.DebugContext(ctx, "Processing segment", "worker", idx, "segment", segment.ID)

		startTime := time.Now()
		length := segment.Origin.DistanceTo(segment.Destination)
		duration := time.Since(startTime).Seconds()
		ms.metrics.ComputeSeconds.Observe(duration)

		if math.IsNaN(length.Kilometers()) || math.IsInf(length.Kilometers(), 0) {
			ms.log.ErrorContext(ctx, "Length is not finite", "worker", idx, "segment", segment.ID,
				"origin", segment.Origin, "destination", segment.Destination)
			ms.metrics.SegmentsProcessed.WithLabelValues("failure").Inc()
			ms.metrics.NonFiniteResults.Inc()

			if err = ms.repo.IncrementFailureCount(ctx, segment.ID, errNonFinite); err != nil {
				ms.log.ErrorContext(
					ctx,
					"Could not update failure count for segment",
					"worker", idx,
					"segment", segment.ID,
					"error", err,
				)
			}
			ms.metrics.ActiveWorkers.Dec()
			continue
		}

		ms.metrics.SegmentsProcessed.WithLabelValues("success").Inc()

		if err = ms.repo.UpdateSegmentLength(ctx, segment.ID, length); err != nil {
			ms.log.ErrorContext(
				ctx,
				"Failed to update length for segment",
				"worker", idx,
				"segment", segment.ID,
				"error", err,
			)
		} else {
			ms.log.DebugContext(ctx, "Worker successfully measured the segment",
				"worker", idx, "segment", segment.ID, "length", length)
		}

		ms.metrics.ActiveWorkers.Dec()
	}
}
