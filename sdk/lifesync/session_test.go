package lifesync

import (
	"testing"
	"time"
)

func TestSessionStoreGetSetClear(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.Get(); ok {
		t.Error("new store should have no session")
	}

	store.Set(TokenPair{AccessToken: "a1", RefreshToken: "r1"})
	tokens, ok := store.Get()
	if !ok {
		t.Fatal("session should be active after Set")
	}
	if tokens.AccessToken != "a1" || tokens.RefreshToken != "r1" {
		t.Errorf("unexpected tokens %+v", tokens)
	}

	store.Clear()
	if _, ok := store.Get(); ok {
		t.Error("session should be gone after Clear")
	}
}

func TestSessionStoreSubscribe(t *testing.T) {
	store := NewSessionStore()
	ch := store.Subscribe()

	store.Set(TokenPair{AccessToken: "a1"})

	select {
	case tokens := <-ch:
		if tokens.AccessToken != "a1" {
			t.Errorf("AccessToken = %q", tokens.AccessToken)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive token change")
	}

	store.Clear()

	select {
	case tokens := <-ch:
		if tokens.AccessToken != "" {
			t.Errorf("expected zero pair on clear, got %+v", tokens)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive clear notification")
	}
}

func TestSessionStoreSlowSubscriberGetsLatest(t *testing.T) {
	store := NewSessionStore()
	ch := store.Subscribe()

	// Subscriber never drains between updates; only the latest value
	// should remain buffered.
	store.Set(TokenPair{AccessToken: "a1"})
	store.Set(TokenPair{AccessToken: "a2"})

	select {
	case tokens := <-ch:
		if tokens.AccessToken != "a2" {
			t.Errorf("AccessToken = %q, want latest", tokens.AccessToken)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive any update")
	}
}
