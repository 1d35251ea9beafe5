package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lintang-b-s/roadnet/docs"
	"github.com/lintang-b-s/roadnet/pkg/roadmap"
	"github.com/lintang-b-s/roadnet/pkg/server/rest"
	"github.com/lintang-b-s/roadnet/pkg/server/rest/service"
	"github.com/lintang-b-s/roadnet/pkg/snapshot"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	mymiddleware "github.com/lintang-b-s/roadnet/pkg/server/middleware"
)

var (
	listenAddr   = flag.String("listenaddr", "", "server listen address (default $ROADNET_LISTEN_ADDR or :5000)")
	maxRouteID   = flag.Uint("maxrouteid", 0, "largest valid route id (default $ROADNET_MAX_ROUTE_ID or 999)")
	envFile      = flag.String("env", ".env", "optional env file with default configuration")
	useRateLimit = flag.Bool("ratelimit", false, "use rate limit")
	workers      = flag.Int("rerouteworkers", 1, "goroutines searching detours when a road used by several routes is removed")
)

//	@title			roadnet API
//	@version		1.0
//	@description	road network of cities with routes that stay valid while roads are added, repaired and removed

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("no env file %s, using flags & environment variables", *envFile)
	}

	addr := *listenAddr
	if addr == "" {
		addr = getEnv("ROADNET_LISTEN_ADDR", ":5000")
	}
	routeIDLimit := uint32(*maxRouteID)
	if routeIDLimit == 0 {
		v, err := strconv.ParseUint(getEnv("ROADNET_MAX_ROUTE_ID", strconv.Itoa(roadmap.DefaultMaxRouteID)), 10, 32)
		if err != nil {
			log.Fatalf("invalid ROADNET_MAX_ROUTE_ID: %v", err)
		}
		routeIDLimit = uint32(v)
	}

	roadMap := roadmap.NewMap(roadmap.WithMaxRouteID(routeIDLimit), roadmap.WithRerouteWorkers(*workers))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if *useRateLimit {
		r.Use(mymiddleware.Limit)
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost%s/swagger/doc.json", addr)), //The url pointing to API definition
	))

	roadNetworkSvc := service.NewRoadNetworkService(roadMap, snapshot.NewCodec(roadmap.WithRerouteWorkers(*workers)))
	if err := rest.RoadNetworkRouter(r, roadNetworkSvc, m); err != nil {
		log.Fatalf("setup road network api: %v", err)
	}

	log.Printf("server started at %s, route ids 1..%d", addr, roadMap.MaxRouteID())

	log.Fatal(http.ListenAndServe(addr, r))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
