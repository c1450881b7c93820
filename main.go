package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"

	auth "AeroLab/internal/auth"
	aero "AeroLab/internal/calc/aero"
	batch "AeroLab/internal/calc/batch"
	export "AeroLab/internal/calc/export"
	importer "AeroLab/internal/calc/importer"
	multirotor "AeroLab/internal/calc/multirotor"
	propulsion "AeroLab/internal/calc/propulsion"
	recommend "AeroLab/internal/calc/recommend"
	report "AeroLab/internal/calc/report"
	metrics "AeroLab/internal/metrics"
	preset "AeroLab/internal/preset"
	repo "AeroLab/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func usageStatsEnabled() bool {
	return os.Getenv("AEROLAB_USAGE_STATS") != "false"
}

func HandleList(mux *mux.Router, db *sql.DB) {
	limiter := auth.NewIPRateLimiter(10, 30)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	aeroH := &aero.Handler{}
	propulsionH := &propulsion.Handler{}
	multirotorH := &multirotor.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}

	api.HandleFunc("/tools/aero/calc", aeroH.Calc).Methods("POST")
	api.HandleFunc("/tools/propulsion/calc", propulsionH.Calc).Methods("POST")
	api.HandleFunc("/tools/multirotor/calc", multirotorH.Calc).Methods("POST")
	api.HandleFunc("/tools/multirotor/batch", batchH.Multirotor).Methods("POST")
	api.HandleFunc("/tools/multirotor/import", importerH.Multirotor).Methods("POST")
	api.HandleFunc("/tools/recommend/battery", recommendH.Battery).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/export/xlsx", exportH.Xlsx).Methods("POST")

	// Accounts and saved presets only exist when a database is configured;
	// the desktop shell runs without one.
	if db != nil {
		tokenKey := os.Getenv("TOKEN_KEY")
		if tokenKey == "" {
			log.Fatal("TOKEN_KEY environment variable is not set")
		}
		userRepo := repo.NewPostgresDB(db)
		authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
		presetH := &preset.Handler{Repo: userRepo}

		api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
		api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

		secureApi := api.PathPrefix("/user").Subrouter()
		secureApi.Use(authEnv.AuthMiddleware)
		secureApi.HandleFunc("/presets", presetH.Save).Methods("POST")
		secureApi.HandleFunc("/presets", presetH.List).Methods("GET")
		secureApi.HandleFunc("/presets/{id:[0-9]+}", presetH.Get).Methods("GET")
		secureApi.HandleFunc("/presets/{id:[0-9]+}", presetH.Delete).Methods("DELETE")
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}).Methods("GET")

	if usageStatsEnabled() {
		mux.Handle("/metrics", metrics.Handler()).Methods("GET")
	}

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using process environment")
	}

	addr := flag.String("addr", "", "listen address (host:port)")
	flag.Parse()
	listen := *addr
	if listen == "" {
		listen = os.Getenv("AEROLAB_ADDR")
	}
	if listen == "" {
		listen = "127.0.0.1:8501"
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := auth.InitDB()
	if err != nil {
		log.Fatal("database error:", err)
	}
	if db != nil {
		defer db.Close()
	}

	mux := mux.NewRouter()
	log.Println("Starting server on", listen)
	HandleList(mux, db)
	var handler http.Handler = CORS(mux)
	if usageStatsEnabled() {
		handler = metrics.Middleware(handler)
	}

	server := &http.Server{
		Addr:    listen,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
