package adapthttp

import (
	"net/http"

	"github.com/Zhouyuxin4/Scalor/internal/app"
)

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		items, err := s.products.List(r.Context(), currentUserID(r))
		if err != nil {
			writeError(w, errStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		// Direct create, without a purchase. Resolution is the same as for
		// a purchase, so posting the name of an existing product returns it
		// rather than making a duplicate.
		var body struct {
			Name       string `json:"name"`
			CatalogRef string `json:"catalogRef"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		product, created, err := s.products.Resolve(r.Context(), currentUserID(r), app.ProductCandidate{
			CatalogRef:   body.CatalogRef,
			FreeTextName: body.Name,
		})
		if err != nil {
			writeError(w, errStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"product": product, "created": created})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	limit := intQuery(r, "limit", 20)
	product, records, err := s.products.Get(r.Context(), currentUserID(r), r.URL.Query().Get("id"), limit)
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product, "records": records})
}

func (s *Server) handleProductRename(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.products.Rename(r.Context(), currentUserID(r), body.ID, body.Name); err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"renamed": true})
}

func (s *Server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := s.products.Delete(r.Context(), currentUserID(r), body.ID); err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleProductHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	limit := intQuery(r, "limit", 50)

	points, err := s.history.History(r.Context(), currentUserID(r), q.Get("id"), q.Get("unit"), limit)
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"points": points})
}
