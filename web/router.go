package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/miraclmoore/dynasty-os-sub001/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Route("/dynasties", func(r chi.Router) {
		r.Get("/", listDynastiesHandler(ctrl, render))
		r.Post("/", createDynastyHandler(ctrl, render))

		r.Route("/{dynastyID}", func(r chi.Router) {
			r.Get("/", getDynastyHandler(ctrl, render))
			r.Put("/", updateDynastyHandler(ctrl, render))
			r.Delete("/", deleteDynastyHandler(ctrl, render))

			r.Get("/seasons", listSeasonsHandler(ctrl, render))
			r.Post("/seasons", createSeasonHandler(ctrl, render))

			r.Get("/players", listPlayersHandler(ctrl, render))
			r.Post("/players", createPlayerHandler(ctrl, render))

			r.Get("/records/head-to-head", headToHeadHandler(ctrl, render))
			r.Get("/records/season-leaders", seasonLeadersHandler(ctrl, render))
			r.Get("/records/career-leaders", careerLeadersHandler(ctrl, render))

			r.Get("/rivals", listRivalsHandler(ctrl, render))
			r.Post("/rivals", addRivalHandler(ctrl, render))

			r.Get("/notes", listScoutingNotesHandler(ctrl, render))
			r.Post("/notes", saveScoutingNoteHandler(ctrl, render))

			r.Get("/prestige", listPrestigeHandler(ctrl, render))
			r.Post("/prestige", savePrestigeHandler(ctrl, render))

			r.Get("/export", exportDynastyHandler(ctrl, render))
		})
	})

	r.Post("/import", importDynastyHandler(ctrl, render))

	r.Route("/seasons/{seasonID}", func(r chi.Router) {
		r.Get("/", getSeasonHandler(ctrl, render))
		r.Put("/", updateSeasonHandler(ctrl, render))
		r.Delete("/", deleteSeasonHandler(ctrl, render))

		r.Get("/games", listGamesHandler(ctrl, render))
		r.Post("/games", createGameHandler(ctrl, render))

		r.Get("/stats", listSeasonStatsHandler(ctrl, render))

		r.Get("/transfers", listTransfersHandler(ctrl, render))
		r.Post("/transfers", addTransferHandler(ctrl, render))
	})

	r.Route("/games/{gameID}", func(r chi.Router) {
		r.Get("/", getGameHandler(ctrl, render))
		r.Put("/", updateGameHandler(ctrl, render))
		r.Delete("/", deleteGameHandler(ctrl, render))
	})

	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/", getPlayerHandler(ctrl, render))
		r.Put("/", updatePlayerHandler(ctrl, render))
		r.Delete("/", deletePlayerHandler(ctrl, render))

		r.Post("/stats", savePlayerSeasonHandler(ctrl, render))
	})

	r.Route("/rivals/{rivalID}", func(r chi.Router) {
		r.Delete("/", deleteRivalHandler(ctrl, render))
		r.Get("/summary", rivalrySummaryHandler(ctrl, render))
		r.Post("/moments", addKeyMomentHandler(ctrl, render))
		r.Delete("/moments", deleteKeyMomentHandler(ctrl, render))
	})

	r.Delete("/notes/{noteID}", deleteScoutingNoteHandler(ctrl, render))
	r.Delete("/transfers/{transferID}", deleteTransferHandler(ctrl, render))
	r.Delete("/stats/{statID}", deletePlayerSeasonHandler(ctrl, render))

	r.Post("/trade-value", tradeValueHandler(ctrl, render))

	return r
}
