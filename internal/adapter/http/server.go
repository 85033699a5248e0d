package adapthttp

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Zhouyuxin4/Scalor/internal/app"
	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	authSvc   *app.AuthService
	purchases *app.PurchaseService
	products  *app.ProductService
	history   *app.HistoryService
	stores    *app.StoreService
	shopping  *app.ShoppingListService
	prefill   *app.PrefillService
	catalog   domain.Catalog
	log       *zap.Logger

	disableAuth bool
}

// New creates a Server wired to the given application services.
func New(authSvc *app.AuthService, purchases *app.PurchaseService, products *app.ProductService,
	history *app.HistoryService, stores *app.StoreService, shopping *app.ShoppingListService,
	prefill *app.PrefillService, catalog domain.Catalog, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		authSvc:   authSvc,
		purchases: purchases,
		products:  products,
		history:   history,
		stores:    stores,
		shopping:  shopping,
		prefill:   prefill,
		catalog:   catalog,
		log:       log,
	}
}

// WithoutAuth disables session validation. Requests run as a fixed test
// user. For tests only.
func (s *Server) WithoutAuth() *Server {
	s.disableAuth = true
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)
	api.HandleFunc("/auth/setup", s.handleSetupUser)

	protected := http.NewServeMux()
	protected.HandleFunc("/records", s.handleRecords)
	protected.HandleFunc("/records/get", s.handleRecordGet)
	protected.HandleFunc("/records/edit", s.handleRecordEdit)
	protected.HandleFunc("/records/delete", s.handleRecordDelete)

	protected.HandleFunc("/products", s.handleProducts)
	protected.HandleFunc("/products/get", s.handleProductGet)
	protected.HandleFunc("/products/rename", s.handleProductRename)
	protected.HandleFunc("/products/delete", s.handleProductDelete)
	protected.HandleFunc("/products/history", s.handleProductHistory)

	protected.HandleFunc("/stores", s.handleStores)
	protected.HandleFunc("/stores/get", s.handleStoreGet)

	protected.HandleFunc("/shopping-lists", s.handleShoppingLists)
	protected.HandleFunc("/shopping-lists/get", s.handleShoppingListGet)
	protected.HandleFunc("/shopping-lists/check", s.handleShoppingListCheck)
	protected.HandleFunc("/shopping-lists/delete", s.handleShoppingListDelete)

	protected.HandleFunc("/catalog", s.handleCatalog)
	protected.HandleFunc("/units", s.handleUnits)
	protected.HandleFunc("/prefill", s.handlePrefill)

	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(withNoCache(root))
}
