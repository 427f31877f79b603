package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildboardhq/buildboard/backend/config"
	"github.com/buildboardhq/buildboard/backend/model"
	"github.com/buildboardhq/buildboard/backend/service"
	"github.com/gin-gonic/gin"
)

func shopRouter(store *service.Store, userID string) *gin.Engine {
	h := NewShopHandler(store)

	router := gin.New()
	asUser := func(fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", userID)
			fn(c)
		}
	}
	router.POST("/shops", asUser(h.Create))
	router.GET("/shops", h.List)
	router.GET("/shops/:id", h.Get)
	router.PUT("/shops/:id", asUser(h.Update))
	return router
}

func TestShopCreate(t *testing.T) {
	store := service.NewStore(&config.StoreConfig{})
	router := shopRouter(store, "user-1")

	w := postJSON(t, router, "/shops", ShopRequest{
		Name:        "Speed Garage",
		Location:    "Osaka",
		Specialties: []string{"drift", "turbo"},
		Instagram:   "@speedgarage",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var shop model.Shop
	if err := json.Unmarshal(w.Body.Bytes(), &shop); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if shop.OwnerID != "user-1" {
		t.Errorf("Expected ownerId user-1, got %s", shop.OwnerID)
	}
	if shop.Name != "Speed Garage" {
		t.Errorf("Expected name Speed Garage, got %s", shop.Name)
	}

	// Second shop for the same user is rejected
	w = postJSON(t, router, "/shops", ShopRequest{Name: "Second Garage"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for second shop, got %d", w.Code)
	}
}

func TestShopGetAndList(t *testing.T) {
	store := service.NewStore(&config.StoreConfig{})
	store.SaveShop(&model.Shop{ID: "shop-1", OwnerID: "user-1", Name: "Speed Garage", CreatedAt: time.Now()})
	router := shopRouter(store, "user-1")

	req := httptest.NewRequest("GET", "/shops/shop-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Get: expected 200, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/shops/missing", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Get missing: expected 404, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/shops", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("List: expected 200, got %d", w.Code)
	}
}

func TestShopUpdateOwnership(t *testing.T) {
	store := service.NewStore(&config.StoreConfig{})
	store.SaveShop(&model.Shop{ID: "shop-1", OwnerID: "user-1", Name: "Speed Garage", CreatedAt: time.Now()})

	// Owner can update
	w := postPut(t, shopRouter(store, "user-1"), "/shops/shop-1", ShopRequest{Name: "Speed Garage v2"})
	if w.Code != http.StatusOK {
		t.Errorf("Owner update: expected 200, got %d", w.Code)
	}
	if store.ShopByID("shop-1").Name != "Speed Garage v2" {
		t.Error("Expected shop name updated")
	}

	// Non-owner is rejected
	w = postPut(t, shopRouter(store, "user-2"), "/shops/shop-1", ShopRequest{Name: "Hijacked"})
	if w.Code != http.StatusForbidden {
		t.Errorf("Non-owner update: expected 403, got %d", w.Code)
	}
}

func postPut(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest("PUT", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
