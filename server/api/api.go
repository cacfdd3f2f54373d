// Package api exposes the poll backend as a small REST surface.
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pollbase/pollbase/server/app"
	"github.com/pollbase/pollbase/server/poll"
	"github.com/pollbase/pollbase/server/store"
)

// API routes HTTP requests to the user and poll services.
type API struct {
	users   *app.UserService
	polls   *app.PollService
	version string
	logger  *slog.Logger
	router  *mux.Router
}

// New initializes the REST API
func New(users *app.UserService, polls *app.PollService, version string, logger *slog.Logger) *API {
	a := &API{
		users:   users,
		polls:   polls,
		version: version,
		logger:  logger,
	}
	a.initRouter()
	return a
}

func (a *API) initRouter() {
	r := mux.NewRouter()
	r.HandleFunc("/", a.handleInfo).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/users", a.handleCreateUser).Methods(http.MethodPost)
	apiV1.HandleFunc("/users/{username}", a.handleGetUser).Methods(http.MethodGet)
	apiV1.HandleFunc("/polls", a.handleCreatePoll).Methods(http.MethodPost)
	apiV1.HandleFunc("/polls", a.handleListPolls).Methods(http.MethodGet)
	apiV1.HandleFunc("/polls/{id}", a.handleGetPoll).Methods(http.MethodGet)
	apiV1.HandleFunc("/polls/{id}", a.handleDeletePoll).Methods(http.MethodDelete)
	apiV1.HandleFunc("/polls/{id}/vote/{optionNumber:[0-9]+}", a.handleVote).Methods(http.MethodPost)
	apiV1.HandleFunc("/polls/{id}/results", a.handleResults).Methods(http.MethodGet)

	a.router = r
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("new request", "method", r.Method, "path", r.URL.Path)
	a.router.ServeHTTP(w, r)
}

func (a *API) handleInfo(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, "pollbase v"+a.version+"\n")
}

type createUserRequest struct {
	Username string `json:"username"`
}

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, err := a.users.Create(req.Username)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, u)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.users.Get(mux.Vars(r)["username"])
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, u)
}

type createPollRequest struct {
	Question  string   `json:"question"`
	Options   []string `json:"options"`
	CreatedBy string   `json:"created_by"`
}

func (a *API) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := a.polls.Create(req.Question, req.Options, req.CreatedBy)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, p)
}

func (a *API) handleListPolls(w http.ResponseWriter, r *http.Request) {
	var polls []*poll.Poll
	var err error
	switch {
	case r.URL.Query().Get("creator") != "":
		polls, err = a.polls.GetByCreator(r.URL.Query().Get("creator"))
	case r.URL.Query().Get("voted_by") != "":
		polls, err = a.polls.GetVotedBy(r.URL.Query().Get("voted_by"))
	default:
		polls, err = a.polls.GetAll()
	}
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, polls)
}

func (a *API) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	p, err := a.polls.Get(mux.Vars(r)["id"])
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

type voteRequest struct {
	Username string `json:"username"`
}

func (a *API) handleVote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	optionIndex, err := strconv.Atoi(vars["optionNumber"])
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid option number")
		return
	}
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := a.polls.Vote(r.Context(), vars["id"], req.Username, optionIndex)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, p)
}

func (a *API) handleResults(w http.ResponseWriter, r *http.Request) {
	results, err := a.polls.Results(mux.Vars(r)["id"])
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, results)
}

type deletePollRequest struct {
	Username string `json:"username"`
}

func (a *API) handleDeletePoll(w http.ResponseWriter, r *http.Request) {
	var req deletePollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.polls.Delete(mux.Vars(r)["id"], req.Username); err != nil {
		a.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps the error taxonomy of the lower layers onto HTTP
// status codes.
func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	var persistenceErr *store.PersistenceError
	switch {
	case errors.Is(err, store.ErrNotFound):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrDuplicateKey), errors.Is(err, poll.ErrAlreadyVoted):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, poll.ErrInvalidOptionIndex), errors.Is(err, poll.ErrValidation), errors.Is(err, app.ErrInvalidUsername):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrNotAuthorized):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &persistenceErr):
		a.logger.Error("persistence failure", "error", err)
		a.writeError(w, http.StatusInternalServerError, "storage unavailable")
	default:
		a.logger.Error("unhandled service error", "error", err)
		a.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, errorResponse{Error: msg})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("failed to write response", "error", err)
	}
}
