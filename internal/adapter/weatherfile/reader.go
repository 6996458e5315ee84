package weatherfile

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/couchcryptid/weatherman/internal/domain"
	"github.com/couchcryptid/weatherman/internal/observability"
)

// FileReader parses one weather file into records.
type FileReader interface {
	ReadFile(ctx context.Context, src domain.Source) ([]domain.Record, error)
}

// ReadAll concatenates the records of every source, in source order.
func ReadAll(ctx context.Context, fr FileReader, sources []domain.Source) ([]domain.Record, error) {
	var records []domain.Record
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := fr.ReadFile(ctx, src)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// Reader parses weather files from disk. It implements pipeline.Parser.
type Reader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewReader creates a Reader.
func NewReader(logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{logger: logger, metrics: metrics}
}

// ReadFiles reads every source in order.
func (r *Reader) ReadFiles(ctx context.Context, sources []domain.Source) ([]domain.Record, error) {
	return ReadAll(ctx, r, sources)
}

// ReadFile skips the header line and coerces every comma-separated token of
// the remaining lines. Blank lines are skipped.
func (r *Reader) ReadFile(_ context.Context, src domain.Source) ([]domain.Record, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", src.Path, domain.ErrUnreadableFile, err)
	}
	defer f.Close()

	var records []domain.Record
	malformed := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec := domain.Record{Source: src, Line: line, Fields: parseLine(text)}
		if cols := rec.Malformed(); len(cols) > 0 {
			malformed += len(cols)
			r.logger.Debug("non-numeric value in numeric column",
				"path", src.Path,
				"line", line,
				"columns", cols,
			)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", src.Path, domain.ErrUnreadableFile, err)
	}

	r.metrics.FilesRead.Inc()
	r.metrics.RowsParsed.Add(float64(len(records)))
	r.metrics.MalformedFields.Add(float64(malformed))
	r.logger.Debug("read weather file", "path", src.Path, "rows", len(records), "malformed_fields", malformed)

	return records, nil
}

func parseLine(line string) []domain.Field {
	tokens := strings.Split(line, ",")
	fields := make([]domain.Field, len(tokens))
	for i, tok := range tokens {
		fields[i] = domain.ParseField(tok)
	}
	return fields
}
