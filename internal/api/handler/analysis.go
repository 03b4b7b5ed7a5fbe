package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/revenue-insights-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-insights-api/pkg/log"
	"github.com/vfg2006/revenue-insights-api/pkg/middleware"
)

// RunAnalysis dispara a análise completa da base e devolve o resumo.
func RunAnalysis(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		summary, err := service.RunForAll(r.Context(), userClaims.UserID)
		if err != nil {
			logger.WithError(err).Error("analysis: full run failed")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisFailed, "Erro ao executar análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	})
}

// RunAnalysisStream dispara a análise emitindo o progresso por cliente como NDJSON.
func RunAnalysisStream(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Cache-Control", "no-cache")

		progressCh, errCh := service.RunStreaming(r.Context(), userClaims.UserID)

		encoder := json.NewEncoder(w)
		for progress := range progressCh {
			if err := encoder.Encode(progress); err != nil {
				logger.WithError(err).Warn("analysis: client went away during stream")
				return
			}
			flusher.Flush()
		}

		if err := <-errCh; err != nil {
			logger.WithError(err).Error("analysis: streaming run failed")
			encoder.Encode(map[string]string{"error": err.Error()})
			flusher.Flush()
		}
	})
}

// ListActionableAnalyses lista os vereditos que pedem ação, por prioridade.
func ListActionableAnalyses(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseAnalysisFilters(w, r)
		if !ok {
			return
		}

		results, err := service.ListActionable(filters)
		if err != nil {
			logger.WithError(err).Error("analysis: failed to list actionable results")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar análises", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	})
}

// SellerAlerts lista os vereditos acionáveis de um vendedor.
func SellerAlerts(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sellerName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if sellerName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do vendedor não fornecido", nil)
			return
		}

		results, err := service.SellerAlerts(sellerName)
		if err != nil {
			logger.WithFields(log.Fields{
				"seller_name": sellerName,
				"error":       err.Error(),
			}).Error("analysis: failed to list seller alerts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar alertas do vendedor", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	})
}

// GetAnalysisConfig retorna os limiares do usuário logado (ou os defaults).
func GetAnalysisConfig(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		cfg, err := service.ConfigForUser(userClaims.UserID)
		if err != nil {
			logger.WithError(err).Error("analysis: failed to load config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	})
}

// SaveAnalysisConfig persiste os limiares do usuário logado.
func SaveAnalysisConfig(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var cfg domain.AnalysisConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveConfig(userClaims.UserID, &cfg); err != nil {
			logger.WithError(err).Error("analysis: failed to save config")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cfg)
	})
}

func parseAnalysisFilters(w http.ResponseWriter, r *http.Request) (domain.AnalysisFilters, bool) {
	filters := domain.AnalysisFilters{}
	query := r.URL.Query()

	if raw := query.Get("min_priority"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro min_priority inválido", nil)
			return filters, false
		}
		filters.MinPriority = parsed
	}

	if raw := query.Get("categories"); raw != "" {
		for _, category := range strings.Split(raw, ",") {
			filters.Categories = append(filters.Categories, domain.Category(strings.TrimSpace(category)))
		}
	}

	filters.SellerName = optionalQueryParam(r, "seller_name")

	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return filters, false
		}
		filters.Limit = parsed
	}

	return filters, true
}
