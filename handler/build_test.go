package handler

import (
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

func buildStore() *service.Store {
	store := service.NewStore(&config.StoreConfig{})
	store.SaveShop(&model.Shop{ID: "shop-1", OwnerID: "user-1", Name: "Speed Garage", CreatedAt: time.Now()})
	return store
}

func buildRouter(store *service.Store, userID string) *gin.Engine {
	h := NewBuildHandler(store)

	router := gin.New()
	asUser := func(fn gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", userID)
			fn(c)
		}
	}
	router.POST("/shops/:id/builds", asUser(h.Create))
	router.GET("/shops/:id/builds", h.ListByShop)
	router.GET("/builds", h.List)
	router.GET("/builds/:id", h.Get)
	router.PUT("/builds/:id", asUser(h.Update))
	router.POST("/builds/:id/parts", asUser(h.AttachPart))
	router.GET("/builds/:id/parts", h.ListParts)
	return router
}

func TestBuildCreate(t *testing.T) {
	store := buildStore()
	router := buildRouter(store, "user-1")

	w := postJSON(t, router, "/shops/shop-1/builds", BuildRequest{
		Title:   "240SX drift build",
		Vehicle: model.Vehicle{Year: 1995, Make: "Nissan", Model: "240SX", Trim: "SE"},
		Tags:    []string{"drift", "jdm"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var build model.Build
	if err := json.Unmarshal(w.Body.Bytes(), &build); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if build.ShopID != "shop-1" {
		t.Errorf("Expected shopId shop-1, got %s", build.ShopID)
	}
	// Defaults applied
	if build.Status != model.BuildStatusInProgress {
		t.Errorf("Expected default status in-progress, got %s", build.Status)
	}
	if build.Visibility != model.VisibilityPublic {
		t.Errorf("Expected default visibility public, got %s", build.Visibility)
	}
}

func TestBuildCreateNonOwner(t *testing.T) {
	store := buildStore()
	router := buildRouter(store, "user-2")

	w := postJSON(t, router, "/shops/shop-1/builds", BuildRequest{
		Title:   "Hijacked build",
		Vehicle: model.Vehicle{Year: 2000, Make: "Honda", Model: "Civic"},
	})

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
}

func TestBuildCreateValidation(t *testing.T) {
	store := buildStore()
	router := buildRouter(store, "user-1")

	tests := []struct {
		name    string
		payload BuildRequest
	}{
		{"bad status", BuildRequest{Title: "b", Vehicle: model.Vehicle{Year: 1995, Make: "Nissan", Model: "240SX"}, Status: "done"}},
		{"bad visibility", BuildRequest{Title: "b", Vehicle: model.Vehicle{Year: 1995, Make: "Nissan", Model: "240SX"}, Visibility: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/shops/shop-1/builds", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestBuildListOnlyPublic(t *testing.T) {
	store := buildStore()
	store.SaveBuild(&model.Build{ID: "b1", ShopID: "shop-1", Title: "public", Visibility: model.VisibilityPublic, CreatedAt: time.Now()})
	store.SaveBuild(&model.Build{ID: "b2", ShopID: "shop-1", Title: "unlisted", Visibility: model.VisibilityUnlisted, CreatedAt: time.Now()})
	router := buildRouter(store, "user-1")

	req := httptest.NewRequest("GET", "/builds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string][]model.Build
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response["builds"]) != 1 {
		t.Errorf("Expected 1 public build, got %d", len(response["builds"]))
	}

	// Unlisted build still reachable directly
	req = httptest.NewRequest("GET", "/builds/b2", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected unlisted build via direct ID, got %d", w.Code)
	}
}

func TestBuildAttachPart(t *testing.T) {
	store := buildStore()
	store.SaveBuild(&model.Build{ID: "b1", ShopID: "shop-1", Visibility: model.VisibilityPublic, CreatedAt: time.Now()})
	store.SavePart(&model.Part{ID: "p1", Name: "Brembo pads", CreatedAt: time.Now()})
	router := buildRouter(store, "user-1")

	w := postJSON(t, router, "/builds/b1/parts", AttachPartRequest{
		PartID:     "p1",
		OrderIndex: 0,
		Notes:      "front axle",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	linked := store.BuildPartsByBuild("b1")
	if len(linked) != 1 {
		t.Fatalf("Expected 1 linked part, got %d", len(linked))
	}
	if linked[0].ShopID != "shop-1" {
		t.Errorf("Expected installing shop shop-1, got %s", linked[0].ShopID)
	}

	// Unknown part
	w = postJSON(t, router, "/builds/b1/parts", AttachPartRequest{PartID: "missing"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown part, got %d", w.Code)
	}
}
