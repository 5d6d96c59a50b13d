// Package loader implements the edge-list ingestion contract of spec §6:
// an external collaborator, not part of the optimization core, that
// populates a *network.Network from a CSV-framed edge list.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/community-core/pkg/network"
)

// Result summarizes a load: how many rows were accepted and how many were
// skipped as malformed.
type Result struct {
	EdgesLoaded int
	RowsSkipped int
}

// LoadEdgeList reads a UTF-8 CSV edge list from path and calls
// net.AddEdge for every well-formed row. The first row is a header and is
// discarded. Each subsequent row is originId,destinyId,weight; malformed
// rows are skipped with a warning logged through logger and counted in the
// returned Result rather than aborting the load, per spec §6/§7.
func LoadEdgeList(path string, net *network.Network, logger zerolog.Logger) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening edge list %q: %w", path, err)
	}
	defer f.Close()

	return LoadEdgeListFrom(f, net, logger)
}

// LoadEdgeListFrom is LoadEdgeList over an already-open reader, split out
// so tests and in-memory callers don't need a file on disk.
func LoadEdgeListFrom(r io.Reader, net *network.Network, logger zerolog.Logger) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result Result

	// Discard the header row; an empty file is not an error at this layer.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return result, nil
		}
		return result, fmt.Errorf("reading header row: %w", err)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowsSkipped++
			logger.Warn().Err(err).Msg("skipping malformed row")
			continue
		}

		if len(row) < 3 {
			result.RowsSkipped++
			logger.Warn().Strs("row", row).Msg("skipping row with too few fields")
			continue
		}

		origin, errOrigin := strconv.ParseUint(row[0], 10, 64)
		destiny, errDestiny := strconv.ParseUint(row[1], 10, 64)
		weight, errWeight := strconv.ParseFloat(row[2], 64)
		if errOrigin != nil || errDestiny != nil || errWeight != nil {
			result.RowsSkipped++
			logger.Warn().Strs("row", row).Msg("skipping row with invalid fields")
			continue
		}

		net.AddEdge(origin, destiny, weight)
		result.EdgesLoaded++
	}

	return result, nil
}
