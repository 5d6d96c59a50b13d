// Command communitydetect is the interactive CLI collaborator described in
// spec §6: it loads the edge list named on the command line, then offers a
// menu for printing the graph's current state, running the optimizer,
// running contraction, and exiting. None of this is part of
// the optimization core; it exists only to drive the library from a
// terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gilchrisn/community-core/pkg/community"
	"github.com/gilchrisn/community-core/pkg/config"
	"github.com/gilchrisn/community-core/pkg/loader"
	"github.com/gilchrisn/community-core/pkg/network"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: communitydetect <edgelist.csv>")
		os.Exit(1)
	}

	cfg := config.New()
	logger := cfg.CreateLogger()

	net := network.New()
	result, err := loader.LoadEdgeList(os.Args[1], net, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d edges (%d rows skipped) from %s\n", result.EdgesLoaded, result.RowsSkipped, os.Args[1])

	in := bufio.NewReader(os.Stdin)
	for {
		printMenu()
		choice := readLine(in)

		switch strings.TrimSpace(choice) {
		case "1":
			printNetwork(net)
		case "2":
			runOptimizer(net, cfg, in)
		case "3":
			community.MergeCommunities(net)
			fmt.Printf("Contraction complete: %d nodes, %d edges remain.\n", net.NumNodes(), net.NumEdges())
		case "4", "exit", "quit":
			fmt.Println("Goodbye.")
			return
		default:
			fmt.Println("Unrecognized option.")
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("1) Print network")
	fmt.Println("2) Run optimizer")
	fmt.Println("3) Run contraction")
	fmt.Println("4) Exit")
	fmt.Print("Choose an option: ")
}

func readLine(in *bufio.Reader) string {
	line, _ := in.ReadString('\n')
	return line
}

func printNetwork(net *network.Network) {
	fmt.Printf("\n--- Network state ---\n")
	fmt.Printf("Nodes: %d | Edges: %d\n", net.NumNodes(), net.NumEdges())
	for _, n := range net.Nodes() {
		fmt.Printf("Node %d (community %d, degree %d):\n", n.ID(), n.Community(), n.Degree())
		if len(n.AdjEdges()) == 0 {
			fmt.Println("  (no connections)")
			continue
		}
		for _, e := range n.AdjEdges() {
			opp := e.Opposite(n)
			fmt.Printf("  -> node %d (edge %d, weight %.4f)\n", opp.ID(), e.ID(), e.Weight())
		}
	}
}

func runOptimizer(net *network.Network, cfg *config.Config, in *bufio.Reader) {
	fmt.Print("Objective [modularity/cpm]: ")
	objective := strings.TrimSpace(readLine(in))

	switch objective {
	case "cpm":
		fmt.Print("Resolution gamma (blank for default): ")
		gamma := community.DefaultResolution
		if raw := strings.TrimSpace(readLine(in)); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
				gamma = parsed
			}
		}
		stats := community.RunCPM(net, cfg.MinGain(), gamma)
		fmt.Printf("CPM run complete: %d passes, %d moves, %d ms\n", stats.Passes, stats.TotalMoves, stats.RuntimeMS)
	default:
		stats := community.RunModularity(net, cfg.MinGain())
		fmt.Printf("Modularity run complete: %d passes, %d moves, %d ms (Q=%.6f)\n",
			stats.Passes, stats.TotalMoves, stats.RuntimeMS, community.ComputeModularity(net))
	}
}
