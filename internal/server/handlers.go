package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"cryptodash/internal/alert"
	"cryptodash/internal/calculator"
	"cryptodash/internal/history"
	"cryptodash/internal/model"
	"cryptodash/internal/panels"
	"cryptodash/internal/snapshot"
	"cryptodash/internal/view"
)

// API bundles the stores and panels the HTTP handlers read from.
type API struct {
	Renderer  *view.Renderer
	History   *history.Store
	Snapshot  snapshot.Store
	Alerts    *alert.Store
	Sentiment *panels.SentimentGauge
	Ticker    *panels.Ticker
	Hub       *Hub
}

// Routes builds the request mux for the dashboard API.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/prices", a.handlePrices)
	mux.HandleFunc("/api/chart", a.handleChart)
	mux.HandleFunc("/api/news", a.handleNews)
	mux.HandleFunc("/api/sentiment", a.handleSentiment)
	mux.HandleFunc("/api/signals", a.handleSignals)
	mux.HandleFunc("/api/commentary", a.handleCommentary)
	mux.HandleFunc("/api/flows", a.handleFlows)
	mux.HandleFunc("/api/ticker", a.handleTicker)
	mux.HandleFunc("/api/alerts", a.handleAlerts)
	mux.HandleFunc("/api/alerts/", a.handleAlertByID)
	mux.HandleFunc("/api/profit", a.handleProfit)
	mux.HandleFunc("/healthz", a.handleHealth)
	if a.Hub != nil {
		mux.HandleFunc("/ws", a.Hub.HandleWS)
	}
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func (a *API) handlePrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.Renderer.Dashboard())
}

func (a *API) handleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.Renderer.Dashboard().Chart)
}

func (a *API) handleNews(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tab := r.URL.Query().Get("tab")
	writeJSON(w, http.StatusOK, panels.News(tab))
}

func (a *API) handleSentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.Sentiment.Reading())
}

func (a *API) handleSignals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	quotes, err := a.Snapshot.Current(r.Context())
	if err != nil {
		log.Printf("[ERROR] read snapshot: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, panels.Signals(quotes))
}

func (a *API) handleCommentary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	quotes, err := a.Snapshot.Current(r.Context())
	if err != nil {
		log.Printf("[ERROR] read snapshot: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, panels.Commentary(quotes, a.History))
}

func (a *API) handleFlows(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, panels.BitcoinFlows())
}

func (a *API) handleTicker(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, a.Ticker.Items())
}

type alertRequest struct {
	Slug      string  `json:"slug"`
	Threshold float64 `json:"threshold"`
}

func (a *API) handleAlerts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, a.Alerts.List())
	case http.MethodPost:
		var req alertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		created, err := a.Alerts.Add(req.Slug, req.Threshold)
		if err != nil {
			if errors.Is(err, alert.ErrInvalidThreshold) || errors.Is(err, alert.ErrUnknownAsset) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("[ERROR] add alert: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (a *API) handleAlertByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/alerts/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid alert id", http.StatusBadRequest)
		return
	}
	if err := a.Alerts.Remove(id); err != nil {
		if errors.Is(err, alert.ErrNotFound) {
			http.Error(w, "alert not found", http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] remove alert: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type profitRequest struct {
	Slug      string  `json:"slug,omitempty"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
	Amount    float64 `json:"amount"`
}

func (a *API) handleProfit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req profitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// An omitted sell price defaults to the asset's current quote.
	if req.SellPrice == 0 && req.Slug != "" {
		q, ok, err := a.Snapshot.Get(r.Context(), req.Slug)
		if err != nil {
			log.Printf("[ERROR] read snapshot: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		if !ok {
			http.Error(w, "no quote available for "+req.Slug, http.StatusBadRequest)
			return
		}
		req.SellPrice = q.USDPrice
	}
	result, err := calculator.Profit(req.BuyPrice, req.SellPrice, req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"assets": len(model.Assets),
	})
}
