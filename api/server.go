/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the entry form

ROUTE PATHS:
  The endpoint paths are the legacy contract of the original operator
  form and are kept verbatim rather than restyled as /api/... routes.

SECURITY NOTE:
  No authentication middleware. The service fronts a single operator on
  a trusted network.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Entry + submission
	r.Get("/form", FormPage)
	r.Post("/submit", h.SubmitAggregate)
	r.Post("/submit-dwarf", h.SubmitWorker)

	// Queries
	r.Get("/query_last_production_data", h.LatestAggregate)
	r.Get("/query_latest_dwarf_data", h.LatestWorker)

	// Exports
	r.Get("/export-csv-termeles", h.ExportAggregateCSV)
	r.Get("/export-csv-dwarf", h.ExportWorkerCSV)
	r.Get("/plot-data", h.PlotData)

	r.Get("/healthz", h.Healthz)

	return r
}

// FormPage serves the operator entry form. The page is inline HTML, in
// Hungarian like the labels its users expect; no template engine is
// warranted for a single static page.
func FormPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Adatbevitel</title>
</head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
    <h2>Összesített napi termelési adatok bevitele</h2>
    <form action="/submit" method="post">
        <label for="datum">Dátum (YYYY-MM-DD):</label><br>
        <input type="date" id="datum" name="datum" required><br><br>

        <label for="arany">Aranytermelés:</label><br>
        <input type="number" id="arany" name="arany" min="0" required><br><br>

        <label for="ezust">Ezüsttermelés:</label><br>
        <input type="number" id="ezust" name="ezust" min="0" required><br><br>

        <label for="gyemant">Gyémánttermelés:</label><br>
        <input type="number" id="gyemant" name="gyemant" min="0" step="0.01" required><br><br>

        <input type="submit" value="Beküldés">
    </form>
    <hr>
    <h2>Törpék egyéni napi teljesítményének rögzítése</h2>
    <form action="/submit-dwarf" method="post">
        <label for="name">Név:</label><br>
        <input type="text" id="name" name="name" required><br><br>

        <label for="dwarf-datum">Dátum (YYYY-MM-DD):</label><br>
        <input type="date" id="dwarf-datum" name="datum" required><br><br>

        <label for="gold">Arany:</label><br>
        <input type="number" id="gold" name="gold" min="0" required><br><br>

        <label for="silver">Ezüst:</label><br>
        <input type="number" id="silver" name="silver" min="0" required><br><br>

        <label for="diamond">Gyémánt:</label><br>
        <input type="number" id="diamond" name="diamond" min="0" step="0.01" required><br><br>

        <input type="submit" value="Beküldés">
    </form>
    <hr>
    <h2>Adatok exportálása CSV-be</h2>
    <form action="/export-csv-termeles" method="get">
        <input type="submit" value="Export Össztermelés CSV">
    </form>
    <form action="/export-csv-dwarf" method="get">
        <input type="submit" value="Export Egyéni Termelés CSV">
    </form>
    <hr>
    <h2>Termelési grafikon</h2>
    <p><a href="/plot-data">Napi termelés diagram (PNG)</a></p>
</body>
</html>`))
}
