package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	appcart "github.com/farmchain/marketplace/internal/application/cart"
	appcatalog "github.com/farmchain/marketplace/internal/application/catalog"
	appcheckout "github.com/farmchain/marketplace/internal/application/checkout"
	appregistration "github.com/farmchain/marketplace/internal/application/registration"
	domcart "github.com/farmchain/marketplace/internal/domain/cart"
	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
	"github.com/farmchain/marketplace/internal/pkg/logging"
	"github.com/farmchain/marketplace/internal/pkg/money"
)

// Handler is the request gateway: it maps the HTTP surface onto the catalog,
// cart, checkout, and registration services and translates domain errors
// into the wire envelope.
type Handler struct {
	catalog      *appcatalog.Service
	carts        *appcart.Service
	checkout     *appcheckout.Service
	registration *appregistration.Service

	// confirmDelay simulates settlement latency before a purchase
	// confirmation reaches the core.
	confirmDelay time.Duration
	startedAt    time.Time
}

func NewHandler(
	catalog *appcatalog.Service,
	carts *appcart.Service,
	checkout *appcheckout.Service,
	registration *appregistration.Service,
	confirmDelay time.Duration,
) *Handler {
	return &Handler{
		catalog:      catalog,
		carts:        carts,
		checkout:     checkout,
		registration: registration,
		confirmDelay: confirmDelay,
		startedAt:    time.Now(),
	}
}

// Router assembles the chi router. Extra middleware (e.g. Observability) is
// mounted after request id assignment so it can pick the id up.
func (h *Handler) Router(extra ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID, chimiddleware.RealIP)
	for _, mw := range extra {
		r.Use(mw)
	}
	r.Use(chimiddleware.Timeout(15 * time.Second))

	r.Get("/health", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.handleListProducts)
		r.Get("/products/{id}", h.handleGetProduct)
		r.Get("/farmers", h.handleListFarmers)
		r.Get("/farmers/{id}", h.handleGetFarmer)
		r.Post("/create-product", h.handleCreateProduct)
		r.Post("/register-farmer", h.handleRegisterFarmer)

		r.Get("/cart/{userAddress}", h.handleGetCart)
		r.Get("/cart/{userAddress}/totals", h.handleCartTotals)
		r.Post("/cart/add", h.handleCartAdd)
		r.Post("/cart/remove", h.handleCartRemove)
		r.Post("/cart/update", h.handleCartUpdate)
		r.Post("/cart/clear", h.handleCartClear)

		r.Post("/verify-transaction", h.handleVerifyTransaction)

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeFailure(w, http.StatusNotFound, "API route not found")
		})
	})

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
	})
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domcatalog.ProductFilter{
		Category:   q.Get("category"),
		Search:     q.Get("search"),
		FarmerName: q.Get("farmer"),
	}
	if filter.Category == "all" {
		filter.Category = ""
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	payload := make([]productPayload, 0, len(products))
	for i := range products {
		payload = append(payload, toProductPayload(&products[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"products": payload,
		"total":    len(payload),
	})
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"product": toProductPayload(product),
	})
}

func (h *Handler) handleListFarmers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	farmers, err := h.catalog.ListFarmers(r.Context(), domcatalog.FarmerFilter{
		Location:  q.Get("location"),
		Specialty: q.Get("specialty"),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	payload := make([]farmerPayload, 0, len(farmers))
	for i := range farmers {
		payload = append(payload, toFarmerPayload(&farmers[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"farmers": payload,
		"total":   len(payload),
	})
}

func (h *Handler) handleGetFarmer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusNotFound, "Farmer not found")
		return
	}

	farmer, err := h.catalog.GetFarmer(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"farmer":  toFarmerPayload(farmer),
	})
}

type registerFarmerRequest struct {
	Name          string      `json:"name"`
	Location      string      `json:"location"`
	Bio           string      `json:"bio"`
	Specialty     string      `json:"specialty"`
	Experience    string      `json:"experience"`
	FarmSize      json.Number `json:"farmSize"`
	WalletAddress string      `json:"walletAddress"`
}

func (h *Handler) handleRegisterFarmer(w http.ResponseWriter, r *http.Request) {
	var req registerFarmerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	farmSize, _ := req.FarmSize.Float64()
	farmer, err := h.registration.RegisterFarmer(r.Context(), appregistration.FarmerSpec{
		Name:          req.Name,
		Location:      req.Location,
		Bio:           req.Bio,
		Specialty:     req.Specialty,
		Experience:    req.Experience,
		FarmSize:      farmSize,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Farmer registered successfully",
		"farmer":  toFarmerPayload(farmer),
	})
}

type createProductRequest struct {
	Name          string      `json:"name"`
	Price         string      `json:"price"`
	PriceETH      string      `json:"priceETH"`
	Category      string      `json:"category"`
	Description   string      `json:"description"`
	Quantity      json.Number `json:"quantity"`
	Unit          string      `json:"unit"`
	Image         string      `json:"image"`
	FarmerAddress string      `json:"farmerAddress"`
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quantity, _ := strconv.Atoi(req.Quantity.String())
	product, err := h.registration.RegisterProduct(r.Context(), appregistration.ProductSpec{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		PriceETH:      req.PriceETH,
		Quantity:      quantity,
		Unit:          req.Unit,
		Image:         req.Image,
		FarmerAddress: req.FarmerAddress,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Product created successfully",
		"product": toProductPayload(product),
	})
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.carts.GetCart(r.Context(), chi.URLParam(r, "userAddress"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"cart":    toCartPayload(items),
	})
}

func (h *Handler) handleCartTotals(w http.ResponseWriter, r *http.Request) {
	inr, eth, err := h.carts.Totals(r.Context(), chi.URLParam(r, "userAddress"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"total":    money.FormatINR(inr),
		"totalETH": money.FormatETH(eth),
	})
}

type cartMutationRequest struct {
	UserAddress string      `json:"userAddress"`
	ProductID   json.Number `json:"productId"`
	Quantity    json.Number `json:"quantity"`
}

func (h *Handler) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserAddress == "" || req.ProductID.String() == "" || req.Quantity.String() == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	productID, _ := req.ProductID.Int64()
	quantity, _ := strconv.Atoi(req.Quantity.String())
	c, err := h.carts.AddItem(r.Context(), req.UserAddress, productID, quantity)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Item added to cart",
		"cart":    toCartPayload(c.Items),
	})
}

func (h *Handler) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserAddress == "" || req.ProductID.String() == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	productID, _ := req.ProductID.Int64()
	c, err := h.carts.RemoveItem(r.Context(), req.UserAddress, productID)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Item removed from cart",
		"cart":    toCartPayload(c.Items),
	})
}

func (h *Handler) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserAddress == "" || req.ProductID.String() == "" || req.Quantity.String() == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	productID, _ := req.ProductID.Int64()
	quantity, _ := strconv.Atoi(req.Quantity.String())
	c, err := h.carts.UpdateQuantity(r.Context(), req.UserAddress, productID, quantity)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Cart updated",
		"cart":    toCartPayload(c.Items),
	})
}

func (h *Handler) handleCartClear(w http.ResponseWriter, r *http.Request) {
	var req cartMutationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserAddress == "" {
		writeFailure(w, http.StatusBadRequest, "Missing user address")
		return
	}

	c, err := h.carts.Clear(r.Context(), req.UserAddress)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Cart cleared",
		"cart":    toCartPayload(c.Items),
	})
}

type verifyTransactionRequest struct {
	TransactionHash string      `json:"transactionHash"`
	ProductID       json.Number `json:"productId"`
	BuyerAddress    string      `json:"buyerAddress"`
	Amount          string      `json:"amount"`
}

func (h *Handler) handleVerifyTransaction(w http.ResponseWriter, r *http.Request) {
	var req verifyTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TransactionHash == "" || req.ProductID.String() == "" || req.BuyerAddress == "" || req.Amount == "" {
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// Simulated settlement latency before the confirmation reaches the core.
	if h.confirmDelay > 0 {
		select {
		case <-time.After(h.confirmDelay):
		case <-r.Context().Done():
			return
		}
	}

	productID, _ := req.ProductID.Int64()
	result, err := h.checkout.ConfirmPurchase(r.Context(), appcheckout.ConfirmPurchaseInput{
		ProductID:    productID,
		BuyerAddress: req.BuyerAddress,
		TxHash:       req.TransactionHash,
		Amount:       req.Amount,
	})
	if err != nil {
		if errors.Is(err, domcatalog.ErrProductNotFound) || errors.Is(err, domcatalog.ErrInsufficientStock) {
			writeFailure(w, http.StatusBadRequest, "Product not available or out of stock")
			return
		}
		h.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Transaction verified successfully",
		"transaction": map[string]any{
			"hash":         result.Receipt.Hash,
			"productId":    result.Receipt.ProductID,
			"buyerAddress": result.Receipt.BuyerAddress,
			"amount":       result.Receipt.Amount,
			"timestamp":    result.Receipt.Timestamp.Format(time.RFC3339),
			"verified":     result.Receipt.Verified,
		},
	})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}

// writeDomainError maps the error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is treated as fatal to the request: logged and
// surfaced as a generic internal error.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domcatalog.ErrProductNotFound):
		writeFailure(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domcatalog.ErrFarmerNotFound):
		writeFailure(w, http.StatusNotFound, "Farmer not found")
	case errors.Is(err, domcart.ErrCartNotFound):
		writeFailure(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, domcart.ErrItemNotFound):
		writeFailure(w, http.StatusNotFound, "Item not found in cart")
	case errors.Is(err, appregistration.ErrMissingField):
		writeFailure(w, http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, appregistration.ErrInvalidField):
		writeFailure(w, http.StatusBadRequest, "Invalid field value")
	case errors.Is(err, appregistration.ErrUnknownFarmer):
		writeFailure(w, http.StatusBadRequest, "Farmer not found")
	case errors.Is(err, domcart.ErrInvalidQuantity):
		writeFailure(w, http.StatusBadRequest, "Quantity must be greater than zero")
	case errors.Is(err, domcatalog.ErrInsufficientStock):
		writeFailure(w, http.StatusBadRequest, "Product not available or out of stock")
	case errors.Is(err, domcatalog.ErrFarmerExists):
		writeFailure(w, http.StatusConflict, "Farmer already registered")
	default:
		logging.FromContext(r.Context()).Error("internal_error", zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
