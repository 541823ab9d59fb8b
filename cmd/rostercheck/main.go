// Command rostercheck prints the roster reconciled against fsHub, so staff can
// spot pilots whose hours are not being synced.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/config"
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/providers"
	"atn-virtual/crewcenter/internal/services"

	"github.com/dustin/go-humanize"
)

func main() {
	top := flag.Int("top", constants.LeaderboardSize, "leaderboard size")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	cfg := config.Load()
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logging.Close()

	crew, err := cfg.LoadRoster()
	if err != nil {
		log.Fatalf("load roster: %v", err)
	}

	m := metrics.Nop()
	cache := common.NewFreshnessCache(common.NewCacheService(cfg.CacheLongTTL, cfg.CacheLongTTL), cfg.CacheShortTTL, cfg.CacheLongTTL, m)
	fshub := providers.NewFsHubProvider(cfg.FsHubBaseURL, cfg.FsHubAirline, cfg.FsHubTimeout, m)
	rosterSvc := services.NewRosterService(crew, fshub, cache, m)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	started := time.Now()
	entries := rosterSvc.Reconcile(ctx)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGRADE\tHOURS\tSOURCE")
	synced := 0
	for _, e := range entries {
		source := "default"
		switch {
		case e.Inactive:
			source = "inactive"
		case e.Synced:
			source = "fshub"
			synced++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Pilot.ID, e.Pilot.Name, e.Pilot.Grade, e.Hours, source)
	}
	w.Flush()

	fmt.Printf("\n%d of %d pilots synced in %s\n\n", synced, len(entries), time.Since(started).Round(time.Millisecond))

	for _, l := range rosterSvc.Leaderboard(ctx, *top) {
		fmt.Printf("%s  %s (%s) %s\n", humanize.Ordinal(l.Rank), l.Name, l.Grade, l.Hours)
	}
}
