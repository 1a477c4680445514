package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain ensures the shared Postgres container is removed even when the
// test run is interrupted with Ctrl+C.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Received interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	// Always cleanup when tests finish normally
	log.Println("✅ Tests completed, cleaning up Docker containers...")
	CleanupSharedContainer()

	os.Exit(code)
}
