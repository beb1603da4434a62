package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/domain"
)

// addExpense handles POST /api/trips/{id}/expenses.
func (s *Server) addExpense(w http.ResponseWriter, r *http.Request) {
	var exp domain.Expense
	if err := decodeJSON(r, &exp); err != nil {
		writeRequestError(w, "request body must be an expense object")
		return
	}

	trip, err := s.trips.AddExpense(r.Context(), chi.URLParam(r, "id"), exp)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// updateExpense handles PUT /api/trips/{id}/expenses/{expenseID}.
func (s *Server) updateExpense(w http.ResponseWriter, r *http.Request) {
	var exp domain.Expense
	if err := decodeJSON(r, &exp); err != nil {
		writeRequestError(w, "request body must be an expense object")
		return
	}
	exp.ID = chi.URLParam(r, "expenseID")

	trip, err := s.trips.UpdateExpense(r.Context(), chi.URLParam(r, "id"), exp)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// removeExpense handles DELETE /api/trips/{id}/expenses/{expenseID}.
func (s *Server) removeExpense(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveExpense(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "expenseID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// togglePaid handles POST /api/trips/{id}/paid/{itemID}.
func (s *Server) togglePaid(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.TogglePaid(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addPackingItem handles POST /api/trips/{id}/packing.
func (s *Server) addPackingItem(w http.ResponseWriter, r *http.Request) {
	var item domain.PackingItem
	if err := decodeJSON(r, &item); err != nil {
		writeRequestError(w, "request body must be a packing item")
		return
	}

	trip, err := s.trips.AddPackingItem(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// applyPackingTemplate handles POST /api/trips/{id}/packing/template with
// body {"template": "Weekend"|"Sun"|"Basic"}.
func (s *Server) applyPackingTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Template string `json:"template"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "request body must be {\"template\": ...}")
		return
	}

	trip, err := s.trips.ApplyPackingTemplate(r.Context(), chi.URLParam(r, "id"), body.Template)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// togglePacked handles POST /api/trips/{id}/packing/{itemID}/toggle.
func (s *Server) togglePacked(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.TogglePacked(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// removePackingItem handles DELETE /api/trips/{id}/packing/{itemID}.
func (s *Server) removePackingItem(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemovePackingItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addLink handles POST /api/trips/{id}/links.
func (s *Server) addLink(w http.ResponseWriter, r *http.Request) {
	var link domain.LinkItem
	if err := decodeJSON(r, &link); err != nil {
		writeRequestError(w, "request body must be a link object")
		return
	}

	trip, err := s.trips.AddLink(r.Context(), chi.URLParam(r, "id"), link)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// removeLink handles DELETE /api/trips/{id}/links/{linkID}.
func (s *Server) removeLink(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveLink(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "linkID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addTask handles POST /api/trips/{id}/tasks.
func (s *Server) addTask(w http.ResponseWriter, r *http.Request) {
	var task domain.AgencyTask
	if err := decodeJSON(r, &task); err != nil {
		writeRequestError(w, "request body must be a task object")
		return
	}

	trip, err := s.trips.AddTask(r.Context(), chi.URLParam(r, "id"), task)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// toggleTask handles POST /api/trips/{id}/tasks/{taskID}/toggle.
func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.ToggleTask(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// removeTask handles DELETE /api/trips/{id}/tasks/{taskID}.
func (s *Server) removeTask(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveTask(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "taskID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
