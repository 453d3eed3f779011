package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff"

	"github.com/a-bouts/route-planner/api/model"
	"github.com/a-bouts/route-planner/route"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "plan: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: plan [flags] [coordinates]")
		fmt.Fprintln(fs.Output(), "coordinates are read from stdin when none are given")
		fs.PrintDefaults()
	}
	var (
		direction = fs.String("direction", "North", "starting direction: North, South, East or West")
		asJSON    = fs.Bool("json", false, "print the plan as JSON")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("PLAN")); err != nil {
		return err
	}

	d, err := route.ParseDirection(*direction)
	if err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	if len(fs.Args()) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		text = string(b)
	}

	p, err := route.Build(text, d)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(model.NewPlanResponse(p))
	}

	printPlan(stdout, p)
	return nil
}

func printPlan(w io.Writer, p route.Plan) {
	fmt.Fprintf(w, "Route Summary (%s)\n", p.Direction)
	fmt.Fprintf(w, "  Total Distance: %s\n", route.FormatDistance(p.TotalDistance))
	fmt.Fprintf(w, "  Total Time:     %s\n", route.FormatTime(p.TotalTime))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Route Breakdown")

	legs := p.Legs()
	for i, pt := range p.Points {
		fmt.Fprintf(w, "  Point %d  %s\n", i+1, route.FormatLatLon(pt))
		if i < len(legs) {
			fmt.Fprintf(w, "    Distance: %s\n", route.FormatDistance(legs[i].Distance))
			fmt.Fprintf(w, "    Time:     %s\n", route.FormatTime(legs[i].Time))
		}
	}
}
