package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jasonlvhit/gocron"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/route-planner/api"
	"github.com/a-bouts/route-planner/xmpp"
)

func main() {

	fs := flag.NewFlagSet("route-planner", flag.ExitOnError)
	var (
		addr          = fs.String("addr", ":8888", "HTTP listen address")
		logLevel      = fs.String("log-level", "info", "log level")
		logFormat     = fs.String("log-format", "text", "log format: text or json")
		cpuprofile    = fs.Bool("cpuprofile", false, "write a cpu profile for each plan request")
		profilePath   = fs.String("profile-path", ".", "directory of the cpu profiles")
		corsOrigins   = fs.String("cors-origins", "*", "comma separated list of allowed origins")
		statsInterval = fs.Uint64("stats-interval", 300, "seconds between two stats logs, 0 to disable")
		xmppHost      = fs.String("xmpp-host", "", "")
		xmppJid       = fs.String("xmpp-jid", "", "")
		xmppPassword  = fs.String("xmpp-password", "", "")
		xmppTo        = fs.String("xmpp-to", "", "")
		_             = fs.String("config", "", "config file (optional)")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		fmt.Fprintf(os.Stderr, "route-planner: %v\n", err)
		os.Exit(1)
	}

	if err := initLogger(*logLevel, *logFormat); err != nil {
		fmt.Fprintf(os.Stderr, "route-planner: %v\n", err)
		os.Exit(1)
	}

	opts := api.Options{
		CPUProfile:  *cpuprofile,
		ProfilePath: *profilePath,
		Stats:       &api.Stats{},
	}

	x := xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}
	if x.Enabled() {
		log.Infof("Send plan summaries to %s", *xmppTo)
		opts.Notifier = x
	}

	if *statsInterval > 0 {
		s := gocron.NewScheduler()
		job := s.Every(*statsInterval).Seconds()
		if err := job.Do(opts.Stats.Log); err != nil {
			log.Fatalf("Schedule stats: %v", err)
		}
		go s.Start()
	}

	router := api.InitServer(opts)
	handler := api.WithMiddleware(router, accessLog(log.StandardLogger()), strings.Split(*corsOrigins, ","))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	log.Infof("Start server on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}
