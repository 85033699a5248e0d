package adapthttp

import (
	"net/http"
	"time"

	"github.com/Zhouyuxin4/Scalor/internal/app"
	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

func (s *Server) handleShoppingLists(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.shopping.List(r.Context(), currentUserID(r))
		if err != nil {
			writeError(w, errStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		var body struct {
			Name    string `json:"name"`
			StoreID string `json:"storeId"`
			Items   []struct {
				Name     string `json:"name"`
				Quantity int    `json:"quantity"`
			} `json:"items"`
			PlannedFor *time.Time `json:"plannedFor"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		items := make([]domain.ShoppingItem, 0, len(body.Items))
		for _, it := range body.Items {
			items = append(items, domain.ShoppingItem{Name: it.Name, Quantity: it.Quantity})
		}
		list, err := s.shopping.CreateList(r.Context(), currentUserID(r), app.ShoppingListInput{
			Name:       body.Name,
			Items:      items,
			StoreID:    body.StoreID,
			PlannedFor: body.PlannedFor,
		})
		if err != nil {
			writeError(w, errStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"list": list})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleShoppingListGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	list, err := s.shopping.Get(r.Context(), currentUserID(r), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"list": list})
}

func (s *Server) handleShoppingListCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID    string `json:"id"`
		Index int    `json:"index"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := s.shopping.ToggleItem(r.Context(), currentUserID(r), body.ID, body.Index)
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"list": list})
}

func (s *Server) handleShoppingListDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.shopping.DeleteList(r.Context(), currentUserID(r), body.ID); err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
