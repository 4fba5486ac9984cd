package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/transit-vis/journeymap/config"
	"github.com/transit-vis/journeymap/hafas"
	"github.com/transit-vis/journeymap/internal"
	"github.com/transit-vis/journeymap/journey"
	"github.com/transit-vis/journeymap/maprender"
	"github.com/transit-vis/journeymap/realtime"
)

func main() {
	from := flag.String("from", "", "name of the start station")
	to := flag.String("to", "", "name of the destination station")
	departure := flag.String("departure", "", "journey start time in the format 2006-01-02T15:04")
	out := flag.String("out", "", "output path for the map document (overrides config)")
	transfersOnly := flag.Bool("transfers-only", false, "draw only leg endpoints, no intermediate stops")
	feed := flag.String("feed", "", "GTFS-RT TripUpdates URL for delay annotation (overrides config)")
	flag.Parse()

	internal.InitLogging()
	_ = godotenv.Load()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if v := os.Getenv("JOURNEYMAP_BASE_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if *out == "" {
		*out = cfg.Map.OutputPath
	}
	if *feed == "" {
		*feed = cfg.Realtime.TripUpdatesURL
	}

	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	departAfter := resolveDeparture(in, *departure)
	if *from == "" {
		*from = promptLine(in, "Please enter the name of the start station: ")
	}
	if *to == "" {
		*to = promptLine(in, "Please enter the name of the destination station: ")
	}

	client := hafas.NewClient(cfg.Provider)
	resolver := journey.NewResolver(client)

	origin := resolveStation(ctx, in, resolver, *from)
	destination := resolveStation(ctx, in, resolver, *to)

	itineraries, err := client.Journeys(ctx, origin, destination, departAfter)
	if err != nil {
		fmt.Println("Journey query failed:", err)
		os.Exit(1)
	}
	if len(itineraries) == 0 {
		fmt.Printf("No routes found from %s to %s at %s\n",
			origin.Name, destination.Name, internal.FormatJourneyTime(departAfter))
		os.Exit(1)
	}

	fmt.Printf("Found %d possible routes for your trip from %s to %s at %s\n",
		len(itineraries), origin.Name, destination.Name, internal.FormatJourneyTime(departAfter))
	for _, line := range journey.Describe(itineraries) {
		fmt.Println(line)
	}
	selected, err := journey.Select(itineraries, promptInt(in, "Please select the journey you want to use: "))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	renderer := maprender.NewRenderer(cfg.Map)
	if *feed != "" {
		if delays := fetchDelays(cfg.Realtime, *feed); delays != nil {
			renderer.Delays = delays
		}
	}

	m := renderer.Render(selected, *transfersOnly)
	if err := maprender.WriteHTML(m, *out); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("Saved map to", *out)
}

// fetchDelays loads the optional delay overlay. The overlay is cosmetic, so
// an unreachable or undecodable feed only logs and the map renders without it.
func fetchDelays(cfg config.RealtimeConfig, url string) realtime.Delays {
	buf, err := realtime.NewClient(cfg).Fetch(url)
	if err != nil {
		log.Printf("realtime feed unavailable: %v", err)
		return nil
	}
	delays, err := realtime.DelaysFromTripUpdates(buf)
	if err != nil {
		log.Printf("realtime feed unusable: %v", err)
		return nil
	}
	return delays
}
