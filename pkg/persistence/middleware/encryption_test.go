package middleware_test

import (
	"context"
	"crypto/rand"
	"io"
	"testing"
	"time"

	"github.com/aretw0/tendril/pkg/domain"
	"github.com/aretw0/tendril/pkg/persistence/middleware"
)

func generateKey(t *testing.T) []byte {
	k := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, k); err != nil {
		t.Fatal(err)
	}
	return k
}

func sampleRun(id, input string) *domain.Run {
	return &domain.Run{
		ID: id,
		Result: domain.Result{
			Machine: "a_plus",
			Input:   input,
			Status:  domain.StatusAccepted,
			Trace: []domain.Configuration{
				{Left: "", State: "q0", Right: input},
			},
			Levels:   4,
			Explored: 5,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestEncryptionMiddleware_Roundtrip(t *testing.T) {
	// Setup
	underlyingStore := NewMockStore()
	key := generateKey(t)
	mw := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
	secureStore := mw(underlyingStore)

	ctx := context.Background()
	originalRun := sampleRun("run-1", "aaa")

	// 1. Save
	if err := secureStore.Save(ctx, "run-1", originalRun); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 2. Verify Underlying Store directly (Should be encrypted)
	storedRun, err := underlyingStore.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("Underlying load failed: %v", err)
	}
	if storedRun.Sealed == "" {
		t.Fatal("Expected sealed payload on stored run")
	}
	if storedRun.Result.Input != "" {
		t.Fatalf("Expected input to be hidden, found: %q", storedRun.Result.Input)
	}
	if len(storedRun.Result.Trace) != 0 {
		t.Fatal("Expected trace to be hidden")
	}
	if storedRun.Result.Status != domain.StatusAccepted {
		t.Fatal("Expected status to stay visible on the envelope")
	}

	// 3. Load via Middleware (Should be decrypted)
	loadedRun, err := secureStore.Load(ctx, "run-1")
	if err != nil {
		t.Fatalf("Load via middleware failed: %v", err)
	}
	if loadedRun.Result.Input != "aaa" {
		t.Errorf("Expected input 'aaa', got %q", loadedRun.Result.Input)
	}
	if len(loadedRun.Result.Trace) != 1 {
		t.Errorf("Expected the trace back, got %d entries", len(loadedRun.Result.Trace))
	}
	if loadedRun.Sealed != "" {
		t.Error("Expected decrypted run to carry no sealed payload")
	}
}

func TestEncryptionMiddleware_KeyRotation(t *testing.T) {
	// Setup
	underlyingStore := NewMockStore()
	oldKey := generateKey(t)
	newKey := generateKey(t)

	// Create middleware with OLD key to save initial run
	mwOld := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: oldKey})
	secureStoreOld := mwOld(underlyingStore)

	ctx := context.Background()
	originalRun := sampleRun("rotation-run", "ab")

	// 1. Save with OLD key
	if err := secureStoreOld.Save(ctx, "rotation-run", originalRun); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 2. Load with NEW key (Active) + OLD key (Fallback)
	mwNew := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
		ActiveKey:    newKey,
		FallbackKeys: [][]byte{oldKey},
	})
	secureStoreNew := mwNew(underlyingStore)

	loadedRun, err := secureStoreNew.Load(ctx, "rotation-run")
	if err != nil {
		t.Fatalf("Load with rotated key failed: %v", err)
	}

	if loadedRun.Result.Input != "ab" {
		t.Errorf("Decryption with fallback key failed")
	}

	// 3. Save again (Should now seal with NEW key)
	if err := secureStoreNew.Save(ctx, "rotation-run", loadedRun); err != nil {
		t.Fatalf("Save with new key failed: %v", err)
	}

	// 4. Verify we CANNOT load with just OLD key anymore
	_, err = secureStoreOld.Load(ctx, "rotation-run")
	if err == nil {
		t.Error("Expected failure when loading new-key encryption with old-key middleware")
	}
}

func TestEncryptionMiddleware_PlaintextRunFailsSecure(t *testing.T) {
	underlyingStore := NewMockStore()
	if err := underlyingStore.Save(context.Background(), "plain", sampleRun("plain", "a")); err != nil {
		t.Fatal(err)
	}

	mw := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	secureStore := mw(underlyingStore)

	if _, err := secureStore.Load(context.Background(), "plain"); err == nil {
		t.Error("Expected failure when loading a run without a sealed payload")
	}
}

func TestEncryptionMiddleware_InvalidKey(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for invalid key size")
		}
	}()
	middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: []byte("short-key")})
}
