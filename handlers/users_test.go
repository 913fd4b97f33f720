package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sociofeed/models"
)

func decodeFriends(t *testing.T, w *httptest.ResponseRecorder) []models.FriendSummary {
	t.Helper()
	var friends []models.FriendSummary
	if err := json.Unmarshal(w.Body.Bytes(), &friends); err != nil {
		t.Fatalf("decode friends: %v (body %s)", err, w.Body.String())
	}
	return friends
}

func TestGetUser(t *testing.T) {
	u := author()
	router, _, _ := setupRouter(u)

	w := doJSON(t, router, http.MethodGet, "/users/"+u.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got models.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if got.ID != u.ID || got.FirstName != "Ada" {
		t.Fatal("wrong user returned")
	}

	w = doJSON(t, router, http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user: expected 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/users/zzz", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: expected 400, got %d", w.Code)
	}
}

func TestAddRemoveFriend(t *testing.T) {
	ada := author()
	bob := models.User{ID: primitive.NewObjectID(), FirstName: "Bob", LastName: "Builder", Occupation: "Builder"}
	router, _, _ := setupRouter(ada, bob)

	// Add
	w := doJSON(t, router, http.MethodPatch, "/users/"+ada.ID.Hex()+"/"+bob.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	friends := decodeFriends(t, w)
	if len(friends) != 1 || friends[0].ID != bob.ID || friends[0].FirstName != "Bob" {
		t.Fatalf("expected bob in ada's friends, got %+v", friends)
	}

	// Friendship is symmetric
	w = doJSON(t, router, http.MethodGet, "/users/"+bob.ID.Hex()+"/friends", nil)
	if got := decodeFriends(t, w); len(got) != 1 || got[0].ID != ada.ID {
		t.Fatalf("expected ada in bob's friends, got %+v", got)
	}

	// Remove on second toggle, on both sides
	w = doJSON(t, router, http.MethodPatch, "/users/"+ada.ID.Hex()+"/"+bob.ID.Hex(), nil)
	if got := decodeFriends(t, w); len(got) != 0 {
		t.Fatalf("expected empty friends after removal, got %+v", got)
	}
	w = doJSON(t, router, http.MethodGet, "/users/"+bob.ID.Hex()+"/friends", nil)
	if got := decodeFriends(t, w); len(got) != 0 {
		t.Fatalf("removal must be symmetric, bob still has %+v", got)
	}
}

func TestAddFriendValidation(t *testing.T) {
	ada := author()
	router, _, _ := setupRouter(ada)

	w := doJSON(t, router, http.MethodPatch, "/users/"+ada.ID.Hex()+"/"+ada.ID.Hex(), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self-friend: expected 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPatch, "/users/"+ada.ID.Hex()+"/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown friend: expected 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPatch, "/users/"+ada.ID.Hex()+"/zzz", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed friend id: expected 400, got %d", w.Code)
	}
}
