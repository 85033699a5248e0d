package adapthttp

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Zhouyuxin4/Scalor/internal/app"
)

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleRecordCreate(w, r)
	case http.MethodGet:
		s.handleRecordList(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRecordCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductName string          `json:"productName"`
		CatalogRef  string          `json:"catalogRef"`
		StoreID     string          `json:"storeId"`
		Price       decimal.Decimal `json:"price"`
		Quantity    decimal.Decimal `json:"quantity"`
		Unit        string          `json:"unit"`
		PhotoURL    string          `json:"photoUrl"`
		Currency    string          `json:"currency"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, product, err := s.purchases.RecordPurchase(r.Context(), currentUserID(r), app.PurchaseInput{
		ProductName: body.ProductName,
		CatalogRef:  body.CatalogRef,
		StoreID:     body.StoreID,
		Price:       body.Price,
		Quantity:    body.Quantity,
		Unit:        body.Unit,
		PhotoURL:    body.PhotoURL,
		Currency:    body.Currency,
	})
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec, "product": product})
}

func (s *Server) handleRecordList(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "productId is required"})
		return
	}
	limit := intQuery(r, "limit", 20)

	items, err := s.purchases.ListRecords(r.Context(), currentUserID(r), productID, limit)
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleRecordGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := s.purchases.GetRecord(r.Context(), currentUserID(r), r.URL.Query().Get("id"))
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

func (s *Server) handleRecordEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID       string           `json:"id"`
		StoreID  *string          `json:"storeId"`
		PhotoURL *string          `json:"photoUrl"`
		Price    *decimal.Decimal `json:"price"`
		Quantity *decimal.Decimal `json:"quantity"`
		Unit     *string          `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rec, err := s.purchases.EditRecord(r.Context(), currentUserID(r), body.ID, app.RecordPatch{
		StoreID:  body.StoreID,
		PhotoURL: body.PhotoURL,
		Price:    body.Price,
		Quantity: body.Quantity,
		Unit:     body.Unit,
	})
	if err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

func (s *Server) handleRecordDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := s.purchases.DeleteRecord(r.Context(), currentUserID(r), body.ID); err != nil {
		writeError(w, errStatus(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}
