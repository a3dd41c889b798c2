package journey

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"miyako/catalog"
	"miyako/checklist"
	"miyako/models"
	"miyako/planner"
	"miyako/report"
	"miyako/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers wires the planning engine to HTTP. The catalog supplies
// attraction snapshots; the registry owns the sessions.
type Handlers struct {
	Reg     *Registry
	Catalog *catalog.Catalog
}

func NewHandlers(reg *Registry, cat *catalog.Catalog) *Handlers {
	return &Handlers{Reg: reg, Catalog: cat}
}

// POST /api/journey/sessions
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	today := time.Now().Format(planner.DateLayout)
	sess := h.Reg.Create(today)

	var snap models.Itinerary
	sess.With(func(s *planner.Store) { snap = s.Snapshot() })

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"sessionid": sess.ID,
		"itinerary": snap,
	})
}

// GET /api/journey/sessions/:sessionid
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var snap models.Itinerary
	sess.With(func(s *planner.Store) { snap = s.Snapshot() })

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"itinerary": snap,
		"progress":  checklist.CategoryProgress(snap.Checklist),
	})
}

// PUT /api/journey/sessions/:sessionid/trip
func (h *Handlers) SetTripDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var input struct {
		Name      string `json:"name"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var (
		snap models.Itinerary
		err  error
	)
	sess.With(func(s *planner.Store) {
		err = s.SetTripDetails(input.Name, input.StartDate, input.EndDate)
		snap = s.Snapshot()
	})
	if err != nil {
		if errors.Is(err, planner.ErrInvalidRange) {
			utils.RespondWithError(w, http.StatusBadRequest, "End date must be after start date")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	broadcast(sess.ID, sessionEvent{Action: "trip_updated"})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"itinerary": snap})
}

// POST /api/journey/sessions/:sessionid/visits
func (h *Handlers) AddVisit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var input struct {
		AttractionID string `json:"attractionId"`
		Date         string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	attraction, found := h.Catalog.Attraction(input.AttractionID)
	if !found {
		utils.RespondWithError(w, http.StatusNotFound, "Attraction not found")
		return
	}

	var (
		visit models.ScheduledVisit
		err   error
	)
	sess.With(func(s *planner.Store) {
		visit, err = s.AddVisit(attraction, input.Date)
	})
	if err != nil {
		if errors.Is(err, planner.ErrAlreadyScheduled) {
			utils.RespondWithError(w, http.StatusConflict, "This attraction is already in your itinerary for this date")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	broadcast(sess.ID, sessionEvent{Action: "visit_added", Date: input.Date})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"visit": visit})
}

// DELETE /api/journey/sessions/:sessionid/visits/:attractionid/:date
func (h *Handlers) RemoveVisit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	attractionID := ps.ByName("attractionid")
	date := ps.ByName("date")

	var removed bool
	sess.With(func(s *planner.Store) {
		removed = s.RemoveVisit(attractionID, date)
	})

	if removed {
		broadcast(sess.ID, sessionEvent{Action: "visit_removed", Date: date})
	}
	// A miss is benign; report it without failing the request.
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"removed": removed})
}

// POST /api/journey/sessions/:sessionid/checklist
func (h *Handlers) AddChecklistItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var input struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	var (
		items []models.ChecklistItem
		err   error
	)
	sess.With(func(s *planner.Store) {
		items, err = checklist.Add(s.Snapshot().Checklist, input.Name, input.Category, s.IDs())
		if err == nil {
			s.ReplaceChecklist(items)
		}
	})
	if err != nil {
		if errors.Is(err, checklist.ErrEmptyName) {
			utils.RespondWithError(w, http.StatusBadRequest, "Please enter an item name")
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	broadcast(sess.ID, sessionEvent{Action: "checklist_updated"})
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"checklist": items})
}

// PUT /api/journey/sessions/:sessionid/checklist/:itemid/toggle
func (h *Handlers) ToggleChecklistItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.updateChecklist(w, ps, func(items []models.ChecklistItem) ([]models.ChecklistItem, bool) {
		return checklist.Toggle(items, ps.ByName("itemid"))
	})
}

// DELETE /api/journey/sessions/:sessionid/checklist/:itemid
func (h *Handlers) RemoveChecklistItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.updateChecklist(w, ps, func(items []models.ChecklistItem) ([]models.ChecklistItem, bool) {
		return checklist.Remove(items, ps.ByName("itemid"))
	})
}

// POST /api/journey/sessions/:sessionid/checklist/reset
func (h *Handlers) ResetChecklist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var items []models.ChecklistItem
	sess.With(func(s *planner.Store) {
		items = checklist.Default(s.IDs())
		s.ReplaceChecklist(items)
	})

	broadcast(sess.ID, sessionEvent{Action: "checklist_updated"})
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"checklist": items})
}

func (h *Handlers) updateChecklist(w http.ResponseWriter, ps httprouter.Params, op func([]models.ChecklistItem) ([]models.ChecklistItem, bool)) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var (
		items []models.ChecklistItem
		found bool
	)
	sess.With(func(s *planner.Store) {
		items, found = op(s.Snapshot().Checklist)
		if found {
			s.ReplaceChecklist(items)
		}
	})

	if found {
		broadcast(sess.ID, sessionEvent{Action: "checklist_updated", ItemID: ps.ByName("itemid")})
	}
	// Missing ids are a soft no-op.
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"checklist": items, "found": found})
}

// GET /api/journey/sessions/:sessionid/export
func (h *Handlers) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, ok := h.Reg.Get(ps.ByName("sessionid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}

	var snap models.Itinerary
	sess.With(func(s *planner.Store) { snap = s.Snapshot() })

	doc := report.Compile(snap)
	pdfBytes, err := report.RenderPDF(doc, "itinerary:"+snap.ItineraryID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	filename := strings.ReplaceAll(snap.Name, " ", "_") + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
