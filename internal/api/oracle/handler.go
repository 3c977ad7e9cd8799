package oracle

import (
	"errors"
	"log/slog"
	"net/http"
	dto "oracle_predict/internal/api/dto/oracle"
	"oracle_predict/internal/config"
	"oracle_predict/internal/converter"
	"oracle_predict/internal/middleware"
	"oracle_predict/internal/model"
	"oracle_predict/internal/service"
	"oracle_predict/pkg/req"
	"oracle_predict/pkg/resp"
	"oracle_predict/pkg/token"
	"strconv"
	"time"
)

type HandlerDeps struct {
	Serv       service.OracleService
	SessionCfg config.SessionConfig
}

type Handler struct {
	serv       service.OracleService
	sessionCfg config.SessionConfig
	now        func() time.Time
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		sessionCfg: deps.SessionCfg,
		now:        time.Now,
	}
}

// CreateSession создает новую сессию и отдает токен в cookie и в теле ответа
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.serv.NewSession(r.Context())
	if err != nil {
		writeServiceError(w, "create session", err)
		return
	}

	sessionToken, err := token.GenerateSessionToken(sess.ID, h.sessionCfg.TokenSecretKey(), h.sessionCfg.TTL())
	if err != nil {
		slog.Error("Generate session token failed", "err", err)
		resp.WriteError(w, http.StatusInternalServerError, "create session failed")
		return
	}

	setSessionTokenCookie(w, sessionToken, h.sessionCfg.TTL())

	body := converter.ToSessionResponse(*sess)
	body.SessionToken = sessionToken
	resp.WriteJSONResponse(w, http.StatusCreated, body)
}

// GetSession баланс, джекпот, серия и статистика сессии
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	sess, err := h.serv.Session(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, "get session", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*sess))
}

// ResetSession сбрасывает состояние сессии
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	sess, err := h.serv.Reset(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, "reset session", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(*sess))
}

// Predict разыгрывает раунд
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	payload, err := req.Decode[dto.PredictRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	prediction, err := converter.ToPrediction(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, _, err := h.serv.Predict(r.Context(), sessionID, prediction)
	if err != nil {
		writeServiceError(w, "predict", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPredictResponse(*result))
}

// History история раундов, ?limit=N последних
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := middleware.SessionIDFromContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			resp.WriteError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	entries, err := h.serv.History(r.Context(), sessionID, limit)
	if err != nil {
		writeServiceError(w, "history", err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(entries))
}

// Market статус рынка и таймеры (только отображение)
func (h *Handler) Market(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMarketResponse(h.serv.Market(h.now())))
}

// Rules фиксированные правила игры
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRulesResponse(h.serv.Rules()))
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidGuessFormat),
		errors.Is(err, model.ErrInvalidBetAmount),
		errors.Is(err, model.ErrUnknownPredictionKind):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrSessionNotFound):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("Request failed", "op", op, "err", err)
		resp.WriteError(w, http.StatusInternalServerError, op+" failed")
	}
}

// setSessionTokenCookie устанавливает cookie с токеном сессии
func setSessionTokenCookie(w http.ResponseWriter, sessionToken string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
}
