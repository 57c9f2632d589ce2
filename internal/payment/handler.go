package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"paygate-be/internal/logger"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Handler exposes the payment API over HTTP.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Routes returns the mux for the payment endpoints. Method patterns make the
// mux answer 405 for wrong-method requests on matching paths.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/payments/{$}", h.InitPayment)
	mux.HandleFunc("GET /v1/payments/{reference}/{$}", h.GetPaymentStatus)
	return mux
}

type apiResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (h *Handler) InitPayment(w http.ResponseWriter, r *http.Request) {
	var in InitPaymentInput

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, FieldErrors{
			"non_field_errors": {"Invalid JSON body."},
		})
		return
	}

	req, ferrs := in.Validate()
	if ferrs != nil {
		writeJSON(w, http.StatusBadRequest, ferrs)
		return
	}

	result, err := h.svc.InitiatePayment(r.Context(), *req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Status:  true,
		Message: "Authorization URL created",
		Data:    result,
	})
}

func (h *Handler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	reference := r.PathValue("reference")

	result, err := h.svc.GetPaymentStatus(r.Context(), reference)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Status:  true,
		Message: "Verification successful",
		Data:    result,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		writeJSON(w, gwErr.StatusCode, gwErr.Payload)
		return
	}

	logger.FromCtx(r.Context()).Error("unhandled error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"status":  false,
		"message": "Server error",
		"data":    map[string]any{},
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.L().Error("failed to encode response", zap.Error(err))
	}
}
