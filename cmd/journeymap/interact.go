package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/transit-vis/journeymap/journey"
)

// departureLayout is the CLI input format for the journey start time
const departureLayout = "2006-01-02T15:04"

// promptLine prints a prompt and reads one trimmed line from the user
func promptLine(in *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptInt reads one line and parses it as an integer. Non-integer input
// is an invalid selection and terminates the run.
func promptInt(in *bufio.Reader, prompt string) int {
	line := promptLine(in, prompt)
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println(&journey.InvalidSelectionError{Input: line})
		os.Exit(1)
	}
	return n
}

// resolveDeparture determines the journey start time from the -departure
// flag, offering the current time interactively when the flag is absent.
func resolveDeparture(in *bufio.Reader, flagValue string) time.Time {
	value := flagValue
	if value == "" {
		fmt.Println("No start time specified. Do you want to use the current time?")
		if strings.EqualFold(promptLine(in, "y/n: "), "y") {
			return time.Now()
		}
		value = promptLine(in, "Please enter the start time in the format 2006-01-02T15:04: ")
	}
	t, err := time.ParseInLocation(departureLayout, value, time.Local)
	if err != nil {
		fmt.Println("Invalid time format")
		os.Exit(1)
	}
	return t
}

// resolveStation runs the interactive half of station resolution: a single
// candidate short-circuits, multiple candidates are listed (at most five)
// for a 1-based pick. Every failure is terminal.
func resolveStation(ctx context.Context, in *bufio.Reader, resolver *journey.Resolver, name string) journey.Station {
	stations, err := resolver.Propose(ctx, name)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(stations) == 1 {
		fmt.Printf("Found the following station: %s\n", stations[0].Name)
		return stations[0]
	}

	candidates := journey.Candidates(stations)
	fmt.Println("Found the following stations:")
	for i, s := range candidates {
		fmt.Printf("%d: %s\n", i+1, s.Name)
	}
	station, err := journey.ResolveSelection(candidates,
		promptInt(in, "Please select the station you want to use: "))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return station
}
