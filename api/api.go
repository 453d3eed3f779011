package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/a-bouts/route-planner/api/model"
	"github.com/a-bouts/route-planner/route"
)

// Notifier receives a one line summary of every planned route.
type Notifier interface {
	Send(message string) error
}

type Options struct {
	CPUProfile  bool
	ProfilePath string
	Notifier    Notifier
	Stats       *Stats
	Registry    *prometheus.Registry
}

type server struct {
	cpuprofile  bool
	profilePath string
	profiling   sync.Mutex
	notifier    Notifier
	stats       *Stats
	metrics     *metrics
	validate    *validator.Validate
}

func InitServer(opts Options) *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	if opts.Stats == nil {
		opts.Stats = &Stats{}
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}

	s := &server{
		cpuprofile:  opts.CPUProfile,
		profilePath: opts.ProfilePath,
		notifier:    opts.Notifier,
		stats:       opts.Stats,
		metrics:     newMetrics(opts.Registry),
		validate:    validator.New(),
	}

	router.HandleFunc("/route/-/healthz", s.healthz).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	apiV1 := router.PathPrefix("/route/api/v1").Subrouter()
	apiV1.HandleFunc("/directions", s.getDirections).Methods(http.MethodGet)
	apiV1.HandleFunc("/plan", s.plan).Methods(http.MethodPost)
	apiV1.HandleFunc("/plans", s.plans).Methods(http.MethodPost)

	return router
}

func (s *server) healthz(w http.ResponseWriter, r *http.Request) {
	type health struct {
		Status string `json:"status"`
	}

	writeJSON(w, http.StatusOK, health{Status: "Ok"})
}

func (s *server) getDirections(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, http.StatusOK, route.Directions)
}

func (s *server) plan(w http.ResponseWriter, req *http.Request) {
	if s.cpuprofile && s.profiling.TryLock() {
		defer s.profiling.Unlock()
		defer profile.Start(profile.ProfilePath(s.profilePath), profile.Quiet).Stop()
	}

	requestLogger := s.requestLogger(w, req, "plan")

	var r model.PlanRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		requestLogger.Warnf("Bad request body: %v", err)
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body", Kind: "InvalidRequest"})
		return
	}

	start := time.Now()

	p, err := s.build(r)
	if err != nil {
		res, ok := model.NewErrorResponse(err)
		status := http.StatusBadRequest
		if !ok {
			status = http.StatusInternalServerError
		}
		requestLogger.WithField("kind", res.Kind).Infof("Plan rejected: %v", err)
		writeJSON(w, status, res)
		return
	}

	requestLogger.Infof("Plan %s with %d points took %s", p.Direction, len(p.Points), time.Since(start))

	writeJSON(w, http.StatusOK, model.NewPlanResponse(p))
}

func (s *server) plans(w http.ResponseWriter, req *http.Request) {
	requestLogger := s.requestLogger(w, req, "plans")

	var r model.PlansRequest
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		requestLogger.Warnf("Bad request body: %v", err)
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body", Kind: "InvalidRequest"})
		return
	}
	if err := s.validate.Struct(r); err != nil {
		res, _ := model.NewErrorResponse(err)
		requestLogger.Infof("Plans rejected: %v", err)
		writeJSON(w, http.StatusBadRequest, res)
		return
	}

	start := time.Now()

	results := make([]model.PlanResult, len(r.Plans))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range r.Plans {
		i := i
		g.Go(func() error {
			p, err := s.build(r.Plans[i])
			if err != nil {
				res, _ := model.NewErrorResponse(err)
				results[i].Error = &res
				return nil
			}
			res := model.NewPlanResponse(p)
			results[i].Plan = &res
			return nil
		})
	}
	_ = g.Wait()

	requestLogger.Infof("Plans (%d) took %s", len(r.Plans), time.Since(start))

	writeJSON(w, http.StatusOK, model.PlansResponse{Results: results})
}

// build validates one request and computes its plan, recording stats,
// metrics and the notification.
func (s *server) build(r model.PlanRequest) (route.Plan, error) {
	timer := prometheus.NewTimer(s.metrics.duration)
	defer timer.ObserveDuration()

	p, err := s.buildPlan(r)
	if err != nil {
		s.stats.failed()
		kind := "Internal"
		if res, ok := model.NewErrorResponse(err); ok {
			kind = res.Kind
		}
		s.metrics.failures.WithLabelValues(kind).Inc()
		return p, err
	}

	s.stats.planned(len(p.Points))
	s.metrics.plans.WithLabelValues(p.Direction.String()).Inc()
	s.metrics.points.Observe(float64(len(p.Points)))

	s.notify(p)

	return p, nil
}

func (s *server) buildPlan(r model.PlanRequest) (route.Plan, error) {
	if err := s.validate.Struct(r); err != nil {
		return route.Plan{}, err
	}

	d := route.North
	if r.Direction != "" {
		var err error
		if d, err = route.ParseDirection(r.Direction); err != nil {
			return route.Plan{}, err
		}
	}

	return route.Build(r.Coordinates, d)
}

func (s *server) notify(p route.Plan) {
	if s.notifier == nil {
		return
	}

	msg := fmt.Sprintf("%s: %d points, %s - %s", p.Direction, len(p.Points), route.FormatDistance(p.TotalDistance), route.FormatTime(p.TotalTime))
	go func() {
		if err := s.notifier.Send(msg); err != nil {
			log.Warnf("Notification failed: %v", err)
		}
	}()
}

func (s *server) requestLogger(w http.ResponseWriter, req *http.Request, action string) *log.Entry {
	id := req.Header.Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", id)

	fields := log.Fields{
		"action":  action,
		"request": id,
	}
	if ip, err := getIp(req); err == nil {
		fields["IP"] = ip
	}
	return log.WithFields(fields)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Encode response: %v", err)
	}
}

func getIp(r *http.Request) (string, error) {
	//Get IP from the X-REAL-IP header
	ip := r.Header.Get("X-REAL-IP")
	netIP := net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}

	//Get IP from X-FORWARDED-FOR header
	ips := r.Header.Get("X-FORWARDED-FOR")
	splitIps := strings.Split(ips, ",")
	for _, ip := range splitIps {
		ip = strings.TrimSpace(ip)
		netIP := net.ParseIP(ip)
		if netIP != nil {
			return ip, nil
		}
	}

	//Get IP from RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	netIP = net.ParseIP(ip)
	if netIP != nil {
		return ip, nil
	}
	return "", errors.New("no valid ip found")
}
