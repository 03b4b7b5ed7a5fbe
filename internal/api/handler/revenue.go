package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-insights-api/internal/domain"
	"github.com/vfg2006/revenue-insights-api/internal/usecases/importing"
	"github.com/vfg2006/revenue-insights-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-insights-api/pkg/log"
	"github.com/vfg2006/revenue-insights-api/pkg/middleware"
)

// Limite de upload de extratos: os arquivos do CRM ficam na casa de poucos MB.
const maxExtractSize = 32 << 20

// ImportRevenue recebe um extrato de receita (CSV ou XLSX) e o processa por inteiro.
func ImportRevenue(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		content, filename, ok := readExtractUpload(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"filename": filename,
			"size":     len(content),
			"user_id":  userClaims.UserID,
		}).Info("import: processing revenue extract")

		batch, err := service.Import(r.Context(), content, filename, userClaims.UserID)
		if err != nil {
			writeImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(batch)
	})
}

// ImportRevenueStream processa o extrato emitindo o progresso linha a linha
// como NDJSON, para o cliente renderizar uma barra de progresso.
func ImportRevenueStream(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		content, filename, ok := readExtractUpload(w, r)
		if !ok {
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/x-ndjson")
		w.Header().Set("Cache-Control", "no-cache")

		progressCh, errCh := service.ImportStream(r.Context(), content, filename, userClaims.UserID)

		encoder := json.NewEncoder(w)
		for progress := range progressCh {
			if err := encoder.Encode(progress); err != nil {
				logger.WithError(err).Warn("import: client went away during stream")
				return
			}
			flusher.Flush()
		}

		if err := <-errCh; err != nil {
			logger.WithError(err).Error("import: streaming import failed")
			encoder.Encode(map[string]string{"error": err.Error()})
			flusher.Flush()
		}
	})
}

// ListRevenueMonths lista os meses distintos presentes na base.
func ListRevenueMonths(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		months, err := service.ListMonths()
		if err != nil {
			logger.WithError(err).Error("import: failed to list months")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar meses", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(months)
	})
}

// ListImports lista os lotes de importação mais recentes.
func ListImports(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		batches, err := service.ListRecentImports(limit)
		if err != nil {
			logger.WithError(err).Error("import: failed to list import batches")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar importações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(batches)
	})
}

// CustomerRevenueHistory retorna o histórico mensal de um cliente,
// opcionalmente filtrado por bucket.
func CustomerRevenueHistory(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if customerName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido", nil)
			return
		}

		bucket := optionalQueryParam(r, "bucket")

		facts, err := service.CustomerHistory(customerName, bucket)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_name": customerName,
				"error":         err.Error(),
			}).Error("import: failed to get customer history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(facts)
	})
}

// CustomerProductHistory retorna o detalhamento por produto de um cliente.
func CustomerProductHistory(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerName := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if customerName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente não fornecido", nil)
			return
		}

		bucket := optionalQueryParam(r, "bucket")
		product := optionalQueryParam(r, "product")

		facts, err := service.ProductHistory(customerName, bucket, product)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_name": customerName,
				"error":         err.Error(),
			}).Error("import: failed to get product history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(facts)
	})
}

// CustomerBucketProducts retorna os produtos consolidados de um cliente/bucket,
// ordenados por receita total.
func CustomerBucketProducts(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		customerName := params.ByName("name")
		bucket := params.ByName("bucket")
		if customerName == "" || bucket == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cliente e bucket são obrigatórios", nil)
			return
		}

		products, err := service.ProductsForBucket(customerName, bucket)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_name": customerName,
				"bucket":        bucket,
				"error":         err.Error(),
			}).Error("import: failed to list bucket products")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(products)
	})
}

// readExtractUpload extrai o arquivo enviado no campo "file" do multipart.
func readExtractUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	if err := r.ParseMultipartForm(maxExtractSize); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Upload inválido: esperado multipart com o campo file", nil)
		return nil, "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo não fornecido", nil)
		return nil, "", false
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxExtractSize))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao ler o arquivo enviado", nil)
		return nil, "", false
	}

	return content, header.Filename, true
}

func optionalQueryParam(r *http.Request, name string) *string {
	if value := r.URL.Query().Get(name); value != "" {
		return &value
	}
	return nil
}

// writeImportError traduz os erros de ingestão em códigos da API.
func writeImportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importing.ErrNoMonthColumns), errors.Is(err, importing.ErrNoParseableMonths):
		apiErrors.WriteError(w, apiErrors.ErrUnparseableExtract, err.Error(), nil)

	case errors.Is(err, importing.ErrUnreadableFile):
		apiErrors.WriteError(w, apiErrors.ErrUnreadableExtract, err.Error(), nil)

	case errors.Is(err, importing.ErrNoDataRows):
		apiErrors.WriteError(w, apiErrors.ErrEmptyExtract, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar extrato", nil)
	}
}
