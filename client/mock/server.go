package mock

import "net/http/httptest"

// HTTPTestServer runs a Service on an httptest.Server.
type HTTPTestServer struct {
	*Service
	Server *httptest.Server
	URL    string
}

// NewHTTPTestServer starts a mock clinic API; URL is the API base URL.
func NewHTTPTestServer(options ...Option) *HTTPTestServer {
	service := NewService(options...)
	server := &HTTPTestServer{Service: service}
	server.Server = httptest.NewServer(service.Handler())
	server.URL = server.Server.URL
	return server
}

func (s *HTTPTestServer) Close() {
	if s.Server != nil {
		s.Server.Close()
	}
	s.Server = nil
}
