package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sugawarayuuta/sonnet"

	"github.com/theflywheel/seqdb"
	"github.com/theflywheel/seqdb/promobserver"
	"github.com/theflywheel/seqdb/testutil"
)

func main() {
	reg := prometheus.NewRegistry()
	obs, err := promobserver.New(reg)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	s, err := seqdb.New(101, seqdb.DefaultHash,
		seqdb.WithLogLevel(slog.LevelDebug),
		seqdb.WithMetricsObserver(obs),
	)
	if err != nil {
		log.Fatalf("Failed to create store: %v", err)
	}

	fmt.Println("Store created with capacity", s.Capacity())

	// Fixed seed so every run produces the same records.
	rng := testutil.NewRNG(10)
	records := rng.Records(60, 5, s.Locations())

	for _, r := range records {
		if !s.Insert(r) {
			log.Fatalf("Failed to insert %s", r)
		}
		if s.Rehashing() {
			fmt.Printf("Inserted %s, rehash phase %s\n", r, s.Phase())
		}
	}
	fmt.Printf("Inserted %d records, capacity now %d, load factor %.3f\n",
		len(records), s.Capacity(), s.LoadFactor())

	// Look up a few present and absent records
	for _, r := range records[:3] {
		fmt.Printf("Find %s => %q\n", r.Sequence, s.Find(r.Sequence, r.Location))
	}
	fmt.Printf("Find TTTTT (Location ID 1000) => %q\n", s.Find("TTTTT", 1000))

	// Remove until the tombstone ratio forces a rebuild
	removed := 0
	for _, r := range records {
		if s.Phase() != seqdb.PhaseIdle {
			break
		}
		s.Remove(r)
		removed++
	}
	fmt.Printf("Removed %d records, tombstone ratio %.3f, phase %s\n",
		removed, s.TombstoneRatio(), s.Phase())

	stats, err := sonnet.Marshal(s.Stats())
	if err != nil {
		log.Fatalf("Failed to encode stats: %v", err)
	}
	fmt.Println("Stats:", string(stats))

	families, err := reg.Gather()
	if err != nil {
		log.Fatalf("Failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			fmt.Printf("%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}

	if len(os.Args) > 1 && os.Args[1] == "-dump" {
		if err := s.Dump(os.Stdout); err != nil {
			log.Fatalf("Failed to dump store: %v", err)
		}
	}

	fmt.Println("Example completed successfully")
}
