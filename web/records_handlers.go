package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/miraclmoore/dynasty-os-sub001/controller"
	"github.com/miraclmoore/dynasty-os-sub001/model"
	"github.com/unrolled/render"
)

// Handlers for the derived data: head-to-head records, leaderboards,
// rivalry summaries, trade value and export/import.

func headToHeadHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startYear, err := optionalIntParam(r, "startYear")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		endYear, err := optionalIntParam(r, "endYear")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		records, err := ctrl.GetHeadToHead(r.Context(), chi.URLParam(r, "dynastyID"), startYear, endYear)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, records)
	}
}

func seasonLeadersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statKey := r.URL.Query().Get("stat")
		seasonID := r.URL.Query().Get("seasonId")
		limit := intParamOrZero(r, "limit")

		leaders, err := ctrl.GetSeasonLeaders(r.Context(), chi.URLParam(r, "dynastyID"), statKey, seasonID, limit)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leaders)
	}
}

func careerLeadersHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statKey := r.URL.Query().Get("stat")
		limit := intParamOrZero(r, "limit")

		leaders, err := ctrl.GetCareerLeaders(r.Context(), chi.URLParam(r, "dynastyID"), statKey, limit)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, leaders)
	}
}

func listRivalsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rivals, err := ctrl.ListRivals(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, rivals)
	}
}

func addRivalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Opponent string `json:"opponent"`
			Label    string `json:"label"`
		}
		if err := decode(r, &body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		rival, err := ctrl.AddRival(r.Context(), chi.URLParam(r, "dynastyID"), body.Opponent, body.Label)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, rival)
	}
}

func deleteRivalHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteRival(r.Context(), chi.URLParam(r, "rivalID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func rivalrySummaryHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := ctrl.GetRivalrySummary(r.Context(), chi.URLParam(r, "rivalID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func addKeyMomentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Year        int    `json:"year"`
			Description string `json:"description"`
		}
		if err := decode(r, &body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := ctrl.AddKeyMoment(r.Context(), chi.URLParam(r, "rivalID"), body.Year, body.Description); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, nil)
	}
}

func deleteKeyMomentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Year        int    `json:"year"`
			Description string `json:"description"`
		}
		if err := decode(r, &body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		if err := ctrl.DeleteKeyMoment(r.Context(), chi.URLParam(r, "rivalID"), body.Year, body.Description); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listScoutingNotesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := ctrl.ListScoutingNotes(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, notes)
	}
}

func saveScoutingNoteHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Opponent string `json:"opponent"`
			Note     string `json:"note"`
		}
		if err := decode(r, &body); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		note, err := ctrl.SaveScoutingNote(r.Context(), chi.URLParam(r, "dynastyID"), body.Opponent, body.Note)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, note)
	}
}

func deleteScoutingNoteHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteScoutingNote(r.Context(), chi.URLParam(r, "noteID")); err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusNoContent, nil)
	}
}

func listPrestigeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ratings, err := ctrl.ListPrestigeRatings(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, ratings)
	}
}

func savePrestigeHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p model.PrestigeRating
		if err := decode(r, &p); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		p.DynastyID = chi.URLParam(r, "dynastyID")
		saved, err := ctrl.SavePrestigeRating(r.Context(), &p)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, saved)
	}
}

func tradeValueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in model.TradeValueInput
		if err := decode(r, &in); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, ctrl.CalculateTradeValue(in))
	}
}

func exportDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bundle, err := ctrl.ExportDynasty(r.Context(), chi.URLParam(r, "dynastyID"))
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, bundle)
	}
}

func importDynastyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bundle model.DynastyExport
		if err := decode(r, &bundle); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		id, err := ctrl.ImportDynasty(r.Context(), &bundle)
		if err != nil {
			writeError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func intParamOrZero(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
