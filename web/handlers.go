package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/miraclmoore/dynasty-os-sub001/controller"
	"github.com/miraclmoore/dynasty-os-sub001/db"
	"github.com/miraclmoore/dynasty-os-sub001/model"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(render *render.Render, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrDynastyNotFound),
		errors.Is(err, db.ErrSeasonNotFound),
		errors.Is(err, db.ErrGameNotFound),
		errors.Is(err, db.ErrPlayerNotFound),
		errors.Is(err, db.ErrRivalNotFound),
		errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	}
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func listDynastiesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dynasties, err := ctrl.ListDynasties(r.Context())
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, dynasties)
	}
}

func createDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d model.Dynasty
		if err := decode(r, &d); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		created, err := ctrl.CreateDynasty(r.Context(), &d)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusCreated, created)
	}
}

func getDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := ctrl.GetDynasty(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, d)
	}
}

func updateDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var d model.Dynasty
		if err := decode(r, &d); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		d.ID = chi.URLParam(r, "dynastyID")
		updated, err := ctrl.UpdateDynasty(r.Context(), &d)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, updated)
	}
}

func deleteDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteDynasty(r.Context(), chi.URLParam(r, "dynastyID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listSeasonsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasons, err := ctrl.ListSeasons(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, seasons)
	}
}

func createSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s model.Season
		if err := decode(r, &s); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s.DynastyID = chi.URLParam(r, "dynastyID")
		created, err := ctrl.CreateSeason(r.Context(), &s)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, created)
	}
}

func getSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ctrl.GetSeason(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func updateSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s model.Season
		if err := decode(r, &s); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s.ID = chi.URLParam(r, "seasonID")
		updated, err := ctrl.UpdateSeason(r.Context(), &s)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, updated)
	}
}

func deleteSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteSeason(r.Context(), chi.URLParam(r, "seasonID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGames(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

func createGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g model.Game
		if err := decode(r, &g); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		g.SeasonID = chi.URLParam(r, "seasonID")
		created, err := ctrl.CreateGame(r.Context(), &g)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, created)
	}
}

func getGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := ctrl.GetGame(r.Context(), chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, g)
	}
}

func updateGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var g model.Game
		if err := decode(r, &g); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		g.ID = chi.URLParam(r, "gameID")
		updated, err := ctrl.UpdateGame(r.Context(), &g)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, updated)
	}
}

func deleteGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listPlayersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := ctrl.ListPlayers(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, players)
	}
}

func createPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Player
		if err := decode(r, &p); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		p.DynastyID = chi.URLParam(r, "dynastyID")
		created, err := ctrl.CreatePlayer(r.Context(), &p)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, created)
	}
}

func getPlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ctrl.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, p)
	}
}

func updatePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.Player
		if err := decode(r, &p); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		p.ID = chi.URLParam(r, "playerID")
		updated, err := ctrl.UpdatePlayer(r.Context(), &p)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, updated)
	}
}

func deletePlayerHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeletePlayer(r.Context(), chi.URLParam(r, "playerID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func savePlayerSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ps model.PlayerSeason
		if err := decode(r, &ps); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		ps.PlayerID = chi.URLParam(r, "playerID")
		saved, err := ctrl.SavePlayerSeason(r.Context(), &ps)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, saved)
	}
}

func listSeasonStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ctrl.ListSeasonStats(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, stats)
	}
}

func deletePlayerSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeletePlayerSeason(r.Context(), chi.URLParam(r, "statID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listTransfersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transfers, err := ctrl.ListSeasonTransfers(r.Context(), chi.URLParam(r, "seasonID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, transfers)
	}
}

func addTransferHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var t model.TransferPortalEntry
		if err := decode(r, &t); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		t.SeasonID = chi.URLParam(r, "seasonID")
		created, err := ctrl.AddTransfer(r.Context(), &t)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, created)
	}
}

func deleteTransferHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteTransfer(r.Context(), chi.URLParam(r, "transferID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}
