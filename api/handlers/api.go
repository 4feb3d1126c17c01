package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/api"
	"github.com/cybercell/cybercrime-portal-api/api/scheduler"
	"github.com/cybercell/cybercrime-portal-api/config"
	"github.com/cybercell/cybercrime-portal-api/databases"
	"github.com/cybercell/cybercrime-portal-api/dispatch"
	"github.com/cybercell/cybercrime-portal-api/models"
)

// App stores the router, stores and config, so it can be reused
type App struct {
	Router     *mux.Router
	Config     config.Config
	CaseDB     databases.CaseDatabase
	StatusDB   databases.ComplaintStatusDatabase
	Directory  databases.OfficerDirectory
	Sessions   databases.SessionDatabase
	Dispatcher dispatch.Dispatcher
	Mailer     *dispatch.AckMailer
	Scheduler  *scheduler.Scheduler

	auth api.Auth
	hub  *NotificationHub
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	a.auth = api.Auth{Sessions: a.Sessions, Secret: []byte(a.Config.JWTSecret)}
	a.auth.SetupGoGuardian()

	a.hub = NewNotificationHub()

	auth := Auth{Directory: a.Directory, Sessions: a.Sessions, Auth: a.auth}
	c := Case{DB: a.CaseDB, Auth: a.auth}
	complaint := Complaint{DB: a.StatusDB, Dispatcher: a.Dispatcher, Mailer: a.Mailer, Hub: a.hub}
	inv := Investigation{DB: a.CaseDB, Dispatcher: a.Dispatcher, Auth: a.auth, Hub: a.hub}
	stats := Stats{CaseDB: a.CaseDB}
	metrics := Metrics{Auth: a.auth}

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")
	apiCreate.Handle("/auth/logout", http.HandlerFunc(auth.LogoutHandler)).Methods("DELETE")
	apiCreate.Handle("/auth/session", http.HandlerFunc(auth.SessionHandler)).Methods("GET")

	// case views take an optional viewer: anonymous callers see the same
	// results as authenticated non-admins
	apiCreate.Handle("/cases", http.HandlerFunc(c.CaseHandler)).Methods("GET")
	apiCreate.Handle("/cases/search", http.HandlerFunc(c.CaseSearchHandler)).Methods("GET")
	apiCreate.Handle("/cases/types", http.HandlerFunc(c.CaseTypesHandler)).Methods("GET")
	apiCreate.Handle("/case/{case_id}", http.HandlerFunc(c.CaseByIDHandler)).Methods("GET")

	apiCreate.Handle("/case/{case_id}/bank-request", api.Middleware(http.HandlerFunc(inv.BankRequestHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/analysis", api.Middleware(http.HandlerFunc(inv.AnalysisHandler))).Methods("POST")
	apiCreate.Handle("/case/{case_id}/notes", api.Middleware(http.HandlerFunc(inv.NoteHandler))).Methods("POST")

	apiCreate.Handle("/complaints", http.HandlerFunc(complaint.ComplaintCreateHandler)).Methods("POST")
	apiCreate.Handle("/complaint/{complaint_id}/status", http.HandlerFunc(complaint.ComplaintStatusHandler)).Methods("GET")

	apiCreate.Handle("/banks", http.HandlerFunc(stats.BanksHandler)).Methods("GET")
	apiCreate.Handle("/stats", http.HandlerFunc(stats.StatsHandler)).Methods("GET")
	apiCreate.Handle("/contacts", http.HandlerFunc(stats.ContactsHandler)).Methods("GET")

	apiCreate.Handle("/metrics", api.Middleware(http.HandlerFunc(metrics.MetricsHandler))).Methods("GET")

	r.HandleFunc("/ws/notifications", a.hub.HandleWebSocket)

	return r
}

// Initialize is invoked by main to seed the stores and create a router
func (a *App) Initialize() error {
	a.CaseDB = databases.NewCaseDatabase()
	a.StatusDB = databases.NewComplaintStatusDatabase()

	directory, err := databases.NewOfficerDirectory(a.Config.SharedPassword)
	if err != nil {
		zap.S().With(err).Error("failed to seed officer directory")
		return err
	}
	a.Directory = directory

	sessions, err := a.newSessionStore()
	if err != nil {
		zap.S().With(err).Error("failed to initialize session store")
		return err
	}
	a.Sessions = sessions

	if a.Dispatcher == nil {
		a.Dispatcher = dispatch.NewSimulated()
	}
	a.Mailer = dispatch.NewAckMailer(a.Config.SendgridAPIKey, a.Config.AckEmailFrom)

	a.Scheduler = scheduler.NewScheduler(a.CaseDB)
	a.Scheduler.Start()

	api.InitMetrics()

	a.initializeRoutes()
	return nil
}

// newSessionStore picks the durable session backend per config. Sessions are
// the portal's only persistence concern.
func (a *App) newSessionStore() (databases.SessionDatabase, error) {
	switch a.Config.SessionStore {
	case "mongo":
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			return nil, err
		}
		if err := client.Connect(); err != nil {
			return nil, err
		}
		zap.S().Info("cybercrime-portal-api has connected to the session database")
		return databases.NewSessionDatabase(databases.NewDatabase(&a.Config, client)), nil
	case "redis":
		return databases.NewRedisSessionDatabase(&a.Config)
	default:
		return databases.NewMemorySessionDatabase(), nil
	}
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
