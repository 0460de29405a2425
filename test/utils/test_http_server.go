package testutils

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// TestHttpServer stands in for the control API in tests.
type TestHttpServer struct {
	*http.ServeMux
}

func NewTestHttpServer() *TestHttpServer {
	return &TestHttpServer{http.NewServeMux()}
}

// HandleJSON serves body with the given status on path.
func (s *TestHttpServer) HandleJSON(path string, status int, body interface{}) {
	s.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	})
}

// Start listens on a free port until the test ends and returns the base URL.
func (s *TestHttpServer) Start(t *testing.T) string {
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("cannot start test server: %v", err)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	srv := http.Server{
		Addr:    addr,
		Handler: s,
	}

	t.Cleanup(func() {
		srv.Close()
	})

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			t.Errorf("cannot start test server: %v", err)
		}
	}()

	waitForServer(t, addr)
	return "http://" + addr
}

func waitForServer(t *testing.T, addr string) {
	backoff := 50 * time.Millisecond

	for i := 0; i < 10; i++ {
		conn, err := net.DialTimeout("tcp", addr, time.Second)
		if err != nil {
			time.Sleep(backoff)
			continue
		}
		if err := conn.Close(); err != nil {
			t.Fatal(err)
		}
		return
	}

	t.Fatalf("server on %s not up after 10 attempts", addr)
}
