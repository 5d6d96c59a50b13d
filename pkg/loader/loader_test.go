package loader

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/community-core/pkg/network"
)

func TestLoadEdgeListSkipsHeaderAndLoadsRows(t *testing.T) {
	csv := "origin,destiny,weight\n1,2,1.0\n2,3,0.5\n"
	net := network.New()

	result, err := LoadEdgeListFrom(strings.NewReader(csv), net, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EdgesLoaded != 2 {
		t.Fatalf("expected 2 edges loaded, got %d", result.EdgesLoaded)
	}
	if net.NumNodes() != 3 {
		t.Fatalf("expected 3 nodes, got %d", net.NumNodes())
	}
}

func TestLoadEdgeListSkipsMalformedRows(t *testing.T) {
	csv := "origin,destiny,weight\n1,2,1.0\nnotanumber,3,1.0\n1,3\n"
	net := network.New()

	result, err := LoadEdgeListFrom(strings.NewReader(csv), net, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EdgesLoaded != 1 {
		t.Fatalf("expected 1 valid edge, got %d", result.EdgesLoaded)
	}
	if result.RowsSkipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", result.RowsSkipped)
	}
}

func TestLoadEdgeListEmptyFileIsNoOp(t *testing.T) {
	net := network.New()
	result, err := LoadEdgeListFrom(strings.NewReader(""), net, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error on empty input: %v", err)
	}
	if result.EdgesLoaded != 0 || net.NumNodes() != 0 {
		t.Fatalf("expected no-op on empty input, got %+v", result)
	}
}
